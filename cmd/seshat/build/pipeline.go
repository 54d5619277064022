package build

import (
	"fmt"
	"os"

	"github.com/flarebyte/seshat-confmap/internal/collection"
	"github.com/flarebyte/seshat-confmap/internal/configmap"
	"github.com/flarebyte/seshat-confmap/internal/diag"
	"github.com/flarebyte/seshat-confmap/internal/frontmatter"
	"github.com/flarebyte/seshat-confmap/internal/luafilter"
)

// runBuild scans the collection, applies the optional filter, and renders
// the config map. Per-file failures are reported on stderr and skipped; the
// run itself only fails on an invalid directory, an unusable filter, or an
// unwritable output.
func runBuild(req request) error {
	if err := validateDir(req.dir); err != nil {
		return err
	}

	var pred *luafilter.Predicate
	if req.filter != "" {
		p, err := luafilter.Compile(req.filter)
		if err != nil {
			return err
		}
		pred = p
	}

	reporter := diag.NewReporter(os.Stderr)
	records, err := collection.Scan(req.dir, req.fields, collection.Options{
		UseGitignore: req.useGitignore,
		Reporter:     reporter,
	})
	if err != nil {
		return err
	}
	records = applyFilter(records, pred, reporter)

	if len(records) == 0 {
		fmt.Fprintln(os.Stdout, configmap.Notice)
		return nil
	}

	data, err := marshal(req, records)
	if err != nil {
		return err
	}
	return configmap.Write(req.out, data)
}

// applyFilter keeps the records the predicate accepts. A record whose
// evaluation fails is dropped and reported, matching how unreadable files
// are handled during the scan.
func applyFilter(records []frontmatter.Record, pred *luafilter.Predicate, reporter *diag.Reporter) []frontmatter.Record {
	if pred == nil {
		return records
	}
	kept := records[:0]
	for _, rec := range records {
		keep, err := pred.Keep(rec.File, rec.FieldMap())
		if err != nil {
			reporter.Errorf("filtering %s: %v", rec.File, err)
			continue
		}
		if keep {
			kept = append(kept, rec)
		}
	}
	return kept
}

func marshal(req request, records []frontmatter.Record) ([]byte, error) {
	if req.format == formatJSON {
		return configmap.MarshalJSON(req.key, records, req.pretty)
	}
	return configmap.MarshalYAML(req.key, records)
}
