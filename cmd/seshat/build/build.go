package build

import (
	"github.com/flarebyte/seshat-confmap/internal/configmap"
	"github.com/spf13/cobra"
)

var (
	flagConfig       string
	flagFilter       string
	flagFormat       string
	flagOut          string
	flagKey          string
	flagPretty       bool
	flagUseGitignore bool
)

// Cmd represents the `seshat build` command.
var Cmd = &cobra.Command{
	Use:           "build [dir] [field...]",
	Short:         "Scan a collection and emit the aggregated config map",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		req, err := resolveRequest(snapshotFlags(cmd), args)
		if err != nil {
			return err
		}
		return runBuild(req)
	},
}

func init() {
	Cmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Path to config file (.cue)")
	Cmd.Flags().StringVar(&flagFilter, "filter", "", "Inline Lua predicate deciding which records to keep")
	Cmd.Flags().StringVar(&flagFormat, "format", formatYAML, "Output format: yaml|json")
	Cmd.Flags().StringVar(&flagOut, "out", "-", "Output path, - for stdout")
	Cmd.Flags().StringVar(&flagKey, "key", configmap.DefaultKey, "Top-level key wrapping the records")
	Cmd.Flags().BoolVar(&flagPretty, "pretty", false, "Pretty JSON output")
	Cmd.Flags().BoolVar(&flagUseGitignore, "use-gitignore", false, "Skip collection files matched by the collection's .gitignore")
}
