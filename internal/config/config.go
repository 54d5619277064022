package config

import (
	"fmt"

	"cuelang.org/go/cue"
)

// Only one profile schema version exists so far.
const supportedConfigVersion = "1"

// Profile is a collection configuration loaded from a CUE file, so a
// directory, field list, filter, and output settings can be versioned next
// to the site instead of retyped on every invocation. Every section is
// optional; Has* flags record presence so CLI arguments can take precedence.
type Profile struct {
	ConfigVersion string
	Collection    Collection
	Fields        []string
	HasFields     bool
	Filter        Filter
	Output        Output
}

// Collection holds optional collection.* fields.
type Collection struct {
	Dir          string
	Gitignore    bool
	HasDir       bool
	HasGitignore bool
}

// Filter holds the optional filter.inline Lua predicate.
type Filter struct {
	Inline    string
	HasInline bool
}

// Output holds optional output.* fields.
type Output struct {
	Format    string
	Out       string
	Key       string
	Pretty    bool
	HasFormat bool
	HasOut    bool
	HasKey    bool
	HasPretty bool
}

// Load validates and extracts a profile from the CUE file at path.
func Load(path string) (Profile, error) {
	v, err := compileCUE(path)
	if err != nil {
		return Profile{}, err
	}
	if err := requireStringField(v, "configVersion"); err != nil {
		return Profile{}, err
	}
	var p Profile
	cv := v.LookupPath(cue.ParsePath("configVersion"))
	if err := cv.Decode(&p.ConfigVersion); err != nil {
		return Profile{}, fmt.Errorf("invalid value for configVersion: %v", err)
	}
	if p.ConfigVersion != supportedConfigVersion {
		return Profile{}, fmt.Errorf("unsupported configVersion: %q (supported: %s)", p.ConfigVersion, supportedConfigVersion)
	}
	p.Collection = parseCollectionSection(v)
	if err := parseFieldsList(v, &p); err != nil {
		return Profile{}, err
	}
	p.Filter = parseFilterSection(v)
	p.Output = parseOutputSection(v)
	return p, nil
}
