package build

import (
	"errors"
	"fmt"

	"github.com/flarebyte/seshat-confmap/internal/config"
	"github.com/spf13/cobra"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// request is a fully resolved build invocation. Command-line arguments win
// over flags, flags the caller changed win over the config file, and the
// config file wins over flag defaults.
type request struct {
	dir          string
	fields       []string
	filter       string
	format       string
	out          string
	key          string
	pretty       bool
	useGitignore bool
}

// requestFlags snapshots the flag values together with whether the caller
// set them, so profile merging can tell defaults from explicit choices.
type requestFlags struct {
	config       string
	filter       string
	format       string
	out          string
	key          string
	pretty       bool
	useGitignore bool

	filterSet    bool
	formatSet    bool
	outSet       bool
	keySet       bool
	prettySet    bool
	gitignoreSet bool
}

func snapshotFlags(cmd *cobra.Command) requestFlags {
	return requestFlags{
		config:       flagConfig,
		filter:       flagFilter,
		format:       flagFormat,
		out:          flagOut,
		key:          flagKey,
		pretty:       flagPretty,
		useGitignore: flagUseGitignore,
		filterSet:    cmd.Flags().Changed("filter"),
		formatSet:    cmd.Flags().Changed("format"),
		outSet:       cmd.Flags().Changed("out"),
		keySet:       cmd.Flags().Changed("key"),
		prettySet:    cmd.Flags().Changed("pretty"),
		gitignoreSet: cmd.Flags().Changed("use-gitignore"),
	}
}

func resolveRequest(rf requestFlags, args []string) (request, error) {
	req := request{
		filter:       rf.filter,
		format:       rf.format,
		out:          rf.out,
		key:          rf.key,
		pretty:       rf.pretty,
		useGitignore: rf.useGitignore,
	}
	if len(args) > 0 {
		req.dir = args[0]
		req.fields = append([]string(nil), args[1:]...)
	}

	if rf.config != "" {
		prof, err := config.Load(rf.config)
		if err != nil {
			return request{}, err
		}
		applyProfile(&req, rf, prof)
	}

	if req.dir == "" {
		return request{}, errors.New("missing collection dir (pass a directory argument or set collection.dir)")
	}
	if len(req.fields) == 0 {
		return request{}, errors.New("missing fields (pass field arguments or set fields)")
	}
	if req.format != formatYAML && req.format != formatJSON {
		return request{}, fmt.Errorf("unsupported format: %q (supported: yaml, json)", req.format)
	}
	return req, nil
}

func applyProfile(req *request, rf requestFlags, prof config.Profile) {
	if req.dir == "" && prof.Collection.HasDir {
		req.dir = prof.Collection.Dir
	}
	if len(req.fields) == 0 && prof.HasFields {
		req.fields = append([]string(nil), prof.Fields...)
	}
	if !rf.filterSet && prof.Filter.HasInline {
		req.filter = prof.Filter.Inline
	}
	if !rf.gitignoreSet && prof.Collection.HasGitignore {
		req.useGitignore = prof.Collection.Gitignore
	}
	if !rf.formatSet && prof.Output.HasFormat {
		req.format = prof.Output.Format
	}
	if !rf.outSet && prof.Output.HasOut {
		req.out = prof.Output.Out
	}
	if !rf.keySet && prof.Output.HasKey {
		req.key = prof.Output.Key
	}
	if !rf.prettySet && prof.Output.HasPretty {
		req.pretty = prof.Output.Pretty
	}
}
