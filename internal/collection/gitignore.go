package collection

import (
	"os"
	"path/filepath"
	"strings"

	gitgitignore "github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// dropIgnored removes names matched by <dir>/.gitignore. Only the scanned
// directory's own ignore file is consulted; parent directories are out of
// scope for a flat collection.
func dropIgnored(dir string, names []string) []string {
	m := ignoreMatcher(dir)
	if m == nil {
		return names
	}
	kept := names[:0]
	for _, name := range names {
		if m.Match([]string{name}, false) {
			continue
		}
		kept = append(kept, name)
	}
	return kept
}

// ignoreMatcher builds a matcher from <dir>/.gitignore, or nil when the file
// is absent or holds no patterns.
func ignoreMatcher(dir string) gitgitignore.Matcher {
	b, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		return nil
	}
	var patterns []gitgitignore.Pattern
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitgitignore.ParsePattern(line, nil))
	}
	if len(patterns) == 0 {
		return nil
	}
	return gitgitignore.NewMatcher(patterns)
}
