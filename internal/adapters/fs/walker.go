// Package fs provides file system adapters for walking, hashing and writing files.
package fs

import (
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// Walker walks directory trees in lexical order.
type Walker struct {
	open func(root string) fs.FS
}

// NewWalker creates a new Walker over the operating system's file system.
func NewWalker() *Walker {
	return NewWalkerFS(os.DirFS)
}

// NewWalkerFS creates a Walker that reads each tree through open(root).
func NewWalkerFS(open func(root string) fs.FS) *Walker {
	return &Walker{open: open}
}

// WalkFiles yields the slash-separated paths, relative to root, of the files
// whose name ends in ext. Symbolic links are followed when they resolve to a
// regular file. Hidden directories are skipped.
//
// A subdirectory that cannot be read is yielded as an error and skipped; the
// walk goes on with its siblings. When root itself cannot be read the error
// is yielded once and ends the sequence.
func (w *Walker) WalkFiles(root, ext string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		fsys := w.open(root)
		err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				if p == "." {
					return err
				}
				werr := zerr.With(zerr.Wrap(err, "failed to read directory"), "path", filepath.Join(root, filepath.FromSlash(p)))
				if !yield("", werr) {
					return fs.SkipAll
				}
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if p != "." && w.shouldSkipDir(d) {
					return fs.SkipDir
				}
				return nil
			}

			if !strings.HasSuffix(d.Name(), ext) || !w.isRegular(fsys, p, d) {
				return nil
			}
			if !yield(p, nil) {
				return fs.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", zerr.With(zerr.Wrap(err, "failed to walk directory"), "path", root))
		}
	}
}

// shouldSkipDir reports whether a directory is hidden (.git, .jj, .idea and the like).
func (w *Walker) shouldSkipDir(d fs.DirEntry) bool {
	return strings.HasPrefix(d.Name(), ".")
}

// isRegular reports whether d is a regular file or a link to one.
func (w *Walker) isRegular(fsys fs.FS, p string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := fs.Stat(fsys, p)
	return err == nil && info.Mode().IsRegular()
}
