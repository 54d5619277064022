package diagnose

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/flarebyte/seshat-confmap/internal/configmap"
	"github.com/flarebyte/seshat-confmap/internal/frontmatter"
	"github.com/spf13/cobra"
)

var (
	flagFile   string
	flagFields []string
)

// Cmd implements `seshat diagnose`, a single-file view of what build would
// extract.
var Cmd = &cobra.Command{
	Use:           "diagnose",
	Short:         "Inspect one file's frontmatter and report a verdict",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagFile == "" {
			return errors.New("missing required flag: --file")
		}
		return runDiagnose(os.Stdout, flagFile, flagFields)
	},
}

func init() {
	Cmd.Flags().StringVar(&flagFile, "file", "", "Markdown file to inspect (required)")
	Cmd.Flags().StringSliceVar(&flagFields, "fields", nil, "Fields to extract, comma separated")
}

const (
	statusOK      = "ok"
	statusMissing = "missing-frontmatter"
	statusInvalid = "invalid-frontmatter"
)

// verdict is the one-line JSON report for a single file.
type verdict struct {
	File   string         `json:"file"`
	Status string         `json:"status"`
	Reason string         `json:"reason,omitempty"`
	Keys   []string       `json:"keys,omitempty"`
	Fields map[string]any `json:"fields,omitempty"`
}

func runDiagnose(w io.Writer, path string, fields []string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	return printVerdictOneLine(w, inspect(path, content, fields))
}

// inspect classifies one file's frontmatter. On success the verdict lists
// every key of the block plus, when fields were requested, the subset build
// would pick up.
func inspect(path string, content []byte, fields []string) verdict {
	v := verdict{File: path, Status: statusOK}
	m, err := frontmatter.Parse(content)
	if errors.Is(err, frontmatter.ErrMissingFrontmatter) {
		v.Status = statusMissing
		v.Reason = err.Error()
		return v
	}
	if err != nil {
		v.Status = statusInvalid
		v.Reason = err.Error()
		return v
	}
	v.Keys = sortedKeys(m)
	if len(fields) > 0 {
		sub := make(map[string]any)
		for _, name := range fields {
			if val, ok := m[name]; ok {
				sub[name] = configmap.JSONSafe(val)
			}
		}
		if len(sub) > 0 {
			v.Fields = sub
		}
	}
	return v
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func printVerdictOneLine(w io.Writer, v verdict) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, string(b)); err != nil {
		return err
	}
	return nil
}
