// Package enumerate lists regular files under a root whose base names
// match a glob pattern, optionally restricted to files modified after
// a threshold. Results are deterministic for a fixed tree.
package enumerate

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// Enumerate walks root and returns the matching file paths in stable
// lexicographic order. pattern is matched against base names with
// filepath.Match semantics. A non-nil newerThan keeps only files whose
// modification time is strictly after it. Unreadable subtrees are
// skipped rather than aborting the walk.
func Enumerate(root, pattern string, newerThan *time.Time) ([]string, error) {
	// Validate pattern syntax up front.
	if _, err := filepath.Match(pattern, ""); err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Cause: err}
	}

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &RootMissingError{Root: root}
		}
		return nil, &StatError{Path: root, Cause: err}
	}
	if !info.IsDir() {
		return nil, &NotADirectoryError{Path: root}
	}

	var matches []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		ok, err := filepath.Match(pattern, d.Name())
		if err != nil || !ok {
			return nil
		}

		if newerThan != nil {
			fi, err := d.Info()
			if err != nil {
				return nil
			}
			if !fi.ModTime().After(*newerThan) {
				return nil
			}
		}

		matches = append(matches, path)
		return nil
	})
	if err != nil {
		return nil, &StatError{Path: root, Cause: err}
	}

	sort.Strings(matches)
	return matches, nil
}
