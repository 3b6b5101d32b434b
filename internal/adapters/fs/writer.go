package fs

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactWriter = (*Writer)(nil)

// Writer persists artifacts atomically. Content goes to a temporary file in
// the destination directory that is renamed into place, so a reader never
// observes a partial artifact.
type Writer struct {
	hasher *Hasher
}

// NewWriter creates a new Writer.
func NewWriter(hasher *Hasher) *Writer {
	return &Writer{hasher: hasher}
}

// Write stores the artifact below root. It returns false without touching the
// file when the existing content already has the same digest. An artifact
// path that is absolute or climbs out of root is rejected.
func (w *Writer) Write(root string, artifact domain.Artifact) (bool, error) {
	rel := filepath.FromSlash(artifact.Path)
	if !filepath.IsLocal(rel) {
		return false, zerr.With(zerr.Wrap(domain.ErrInvalidRequest, "artifact path leaves the output directory"), "path", artifact.Path)
	}
	path := filepath.Join(root, rel)

	existing, err := w.hasher.ComputeFileHash(path)
	switch {
	case err == nil:
		if existing == xxhash.Sum64(artifact.Content) {
			return false, nil
		}
	case errors.Is(err, iofs.ErrNotExist):
	default:
		return false, err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to create output directory"), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to create temporary file"), "path", dir)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(artifact.Content); err != nil {
		_ = tmp.Close()
		return false, zerr.With(zerr.Wrap(err, "failed to write artifact"), "path", path)
	}
	if err := tmp.Chmod(domain.FilePerm); err != nil {
		_ = tmp.Close()
		return false, zerr.With(zerr.Wrap(err, "failed to set artifact permissions"), "path", path)
	}
	if err := tmp.Close(); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to close artifact"), "path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to move artifact into place"), "path", path)
	}
	committed = true
	return true, nil
}
