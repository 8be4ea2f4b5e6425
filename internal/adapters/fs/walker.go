// Package fs provides file system adapters for locating debug-symbol bundles.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"strings"
)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkSuffix yields every entry under root whose name ends with suffix, case-insensitively.
// Matching directories are not descended into. VCS metadata directories are skipped.
func (w *Walker) WalkSuffix(root, suffix string) iter.Seq2[string, error] {
	suffix = strings.ToLower(suffix)
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path == root {
				return nil
			}

			if d.IsDir() && isVCSDir(d.Name()) {
				return filepath.SkipDir
			}

			if !strings.HasSuffix(strings.ToLower(d.Name()), suffix) {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		})
		if err != nil {
			yield("", err)
		}
	}
}

func isVCSDir(name string) bool {
	return name == ".git" || name == ".jj" || name == ".svn"
}
