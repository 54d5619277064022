package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// compileCUE loads and compiles a CUE file at the given path.
func compileCUE(path string) (cue.Value, error) {
	if filepath.Ext(path) != ".cue" {
		return cue.Value{}, errors.New("unsupported config format: expected .cue")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cue.Value{}, fmt.Errorf("failed to read config: %w", err)
	}
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data)
	if err := v.Err(); err != nil {
		return cue.Value{}, fmt.Errorf("invalid config: %v", err)
	}
	return v, nil
}

func requireStringField(v cue.Value, name string) error {
	f := v.LookupPath(cue.ParsePath(name))
	if !f.Exists() {
		return fmt.Errorf("missing required field: %s", name)
	}
	if f.Kind() != cue.StringKind {
		return fmt.Errorf("invalid type for field: %s (expected string)", name)
	}
	return nil
}

// parseCollectionSection extracts optional collection.* fields.
func parseCollectionSection(v cue.Value) Collection {
	var c Collection
	cv := v.LookupPath(cue.ParsePath("collection"))
	if !cv.Exists() {
		return c
	}
	dv := cv.LookupPath(cue.ParsePath("dir"))
	if dv.Exists() && dv.Kind() == cue.StringKind {
		_ = dv.Decode(&c.Dir)
		c.HasDir = true
	}
	gv := cv.LookupPath(cue.ParsePath("gitignore"))
	if gv.Exists() && gv.Kind() == cue.BoolKind {
		_ = gv.Decode(&c.Gitignore)
		c.HasGitignore = true
	}
	return c
}

// parseFieldsList extracts the optional top-level fields list.
func parseFieldsList(v cue.Value, p *Profile) error {
	fv := v.LookupPath(cue.ParsePath("fields"))
	if !fv.Exists() || fv.Kind() != cue.ListKind {
		return nil
	}
	if err := fv.Decode(&p.Fields); err != nil {
		return fmt.Errorf("invalid value for fields: %v", err)
	}
	if len(p.Fields) > 0 {
		p.HasFields = true
	}
	return nil
}

// parseFilterSection extracts the optional filter.inline expression.
func parseFilterSection(v cue.Value) Filter {
	var f Filter
	fv := v.LookupPath(cue.ParsePath("filter"))
	if !fv.Exists() {
		return f
	}
	iv := fv.LookupPath(cue.ParsePath("inline"))
	if iv.Exists() && iv.Kind() == cue.StringKind {
		_ = iv.Decode(&f.Inline)
		f.HasInline = true
	}
	return f
}

// parseOutputSection extracts optional output.* fields.
func parseOutputSection(v cue.Value) Output {
	var o Output
	ov := v.LookupPath(cue.ParsePath("output"))
	if !ov.Exists() {
		return o
	}
	fv := ov.LookupPath(cue.ParsePath("format"))
	if fv.Exists() && fv.Kind() == cue.StringKind {
		_ = fv.Decode(&o.Format)
		o.HasFormat = true
	}
	outv := ov.LookupPath(cue.ParsePath("out"))
	if outv.Exists() && outv.Kind() == cue.StringKind {
		_ = outv.Decode(&o.Out)
		o.HasOut = true
	}
	kv := ov.LookupPath(cue.ParsePath("key"))
	if kv.Exists() && kv.Kind() == cue.StringKind {
		_ = kv.Decode(&o.Key)
		o.HasKey = true
	}
	pv := ov.LookupPath(cue.ParsePath("pretty"))
	if pv.Exists() && pv.Kind() == cue.BoolKind {
		_ = pv.Decode(&o.Pretty)
		o.HasPretty = true
	}
	return o
}
