// Package workspace discovers build outputs in a workspace directory and
// pairs uploaded bundles with their deobfuscation mapping files.
package workspace

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/ryanuber/go-glob"
)

// Resolver matches glob patterns against a workspace file tree.
type Resolver struct {
	// Root is the workspace directory patterns are resolved against.
	Root string
}

// Resolve walks the workspace and returns the relative (slash-separated)
// paths of all regular files matching the pattern, sorted
// lexicographically. The sort matters: mapping files are paired with
// bundles positionally, which relies on two independent Resolve calls
// returning correlated order on an unchanged tree.
//
// No matches is an empty slice, not an error; callers decide whether
// that is fatal.
func (r Resolver) Resolve(pattern string) ([]string, error) {
	var matches []string
	err := filepath.WalkDir(r.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(r.Root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if glob.Glob(pattern, rel) {
			matches = append(matches, rel)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", pattern, err)
	}
	sort.Strings(matches)
	return matches, nil
}
