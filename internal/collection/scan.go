package collection

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/flarebyte/seshat-confmap/internal/diag"
	"github.com/flarebyte/seshat-confmap/internal/frontmatter"
)

// Options controls a scan. The zero value enumerates every *.md entry and
// discards diagnostics.
type Options struct {
	// UseGitignore excludes candidates matched by <dir>/.gitignore.
	UseGitignore bool
	// Reporter receives one WARN/ERROR line per skipped file.
	Reporter *diag.Reporter
}

// Scan reads every *.md file directly inside dir (subdirectories are not
// descended into), extracts the requested frontmatter fields from each, and
// returns the non-empty records in ascending filename order. Per-file
// failures are diagnosed through the reporter and skipped; the returned
// error is non-nil only when dir itself cannot be enumerated.
func Scan(dir string, fields []string, opts Options) ([]frontmatter.Record, error) {
	names, err := listMarkdown(dir)
	if err != nil {
		return nil, err
	}
	if opts.UseGitignore {
		names = dropIgnored(dir, names)
	}

	var records []frontmatter.Record
	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			opts.Reporter.Errorf("reading %s: %v", name, err)
			continue
		}
		rec, err := frontmatter.Extract(content, fields)
		switch {
		case errors.Is(err, frontmatter.ErrMissingFrontmatter):
			opts.Reporter.Warnf("skipping %s: %v", name, err)
		case err != nil:
			opts.Reporter.Errorf("skipping %s: %v", name, err)
		case rec.Empty():
			// none of the requested fields present; not a diagnostic
		default:
			rec.File = name
			records = append(records, rec)
		}
	}
	return records, nil
}

// listMarkdown returns the sorted names of regular *.md entries directly
// inside dir. The sort keeps record order independent of filesystem
// enumeration order.
func listMarkdown(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	var names []string
	for _, ent := range entries {
		if ent.IsDir() {
			continue
		}
		if !strings.HasSuffix(ent.Name(), ".md") {
			continue
		}
		names = append(names, ent.Name())
	}
	sort.Strings(names)
	return names, nil
}
