// Package doctree walks a documentation tree and yields the markdown files in it.
package doctree

import (
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// Extension is the suffix a file name must end with to be treated as a document.
const Extension = ".md"

// RootError represents a documentation root that is missing, unreadable or not a directory
type RootError struct {
	Root    string
	Message string
	Cause   error
}

func (e *RootError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("docs root error: %s: %s: %v", e.Message, e.Root, e.Cause)
	}
	return fmt.Sprintf("docs root error: %s: %s", e.Message, e.Root)
}

func (e *RootError) Unwrap() error {
	return e.Cause
}

// Walk lazily yields the path of every file under root whose name ends with
// Extension, descending into all subdirectories in lexical order. Paths are
// root joined with the file's relative path.
//
// A filesystem error ends the sequence after yielding it with an empty path.
// Symlinked directories are listed but not descended into.
func Walk(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		info, err := os.Stat(root)
		if err != nil {
			yield("", &RootError{Root: root, Message: "cannot access documentation root", Cause: err})
			return
		}
		if !info.IsDir() {
			yield("", &RootError{Root: root, Message: "documentation root is not a directory"})
			return
		}

		// WalkDir does not descend into a symlinked root, so walk its target and
		// report paths under root as given.
		walkRoot := root
		if resolved, err := filepath.EvalSymlinks(root); err == nil {
			walkRoot = resolved
		}

		stopped := false
		walkErr := filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if !strings.HasSuffix(d.Name(), Extension) {
				return nil
			}
			if d.Type()&fs.ModeSymlink != 0 {
				target, err := os.Stat(path)
				if err != nil {
					return err
				}
				if target.IsDir() {
					return nil
				}
			}
			if walkRoot != root {
				rel, err := filepath.Rel(walkRoot, path)
				if err != nil {
					return err
				}
				path = filepath.Join(root, rel)
			}
			if !yield(path, nil) {
				stopped = true
				return filepath.SkipAll
			}
			return nil
		})
		if walkErr != nil && !stopped {
			yield("", fmt.Errorf("walking %s: %w", root, walkErr))
		}
	}
}
