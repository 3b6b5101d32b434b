package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/syringe/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher provides xxhash digests of files and directory trees.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeTreeHash computes a digest over every matching file below root.
// Paths are hashed relative to root so the digest does not depend on where
// the tree lives. File contents are hashed in parallel; the digest combines
// them in walk order.
func (h *Hasher) ComputeTreeHash(root, ext string) (string, error) {
	var files []string
	for rel, err := range h.walker.WalkFiles(root, ext) {
		if err != nil {
			return "", err
		}
		files = append(files, rel)
	}

	sums := make([]uint64, len(files))
	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, rel := range files {
		g.Go(func() error {
			sum, err := h.ComputeFileHash(filepath.Join(root, filepath.FromSlash(rel)))
			if err != nil {
				return err
			}
			sums[i] = sum
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	hasher := xxhash.New()
	for i, rel := range files {
		_, _ = hasher.Write([]byte(rel))
		_, _ = hasher.Write([]byte{0})
		if err := binary.Write(hasher, binary.LittleEndian, sums[i]); err != nil {
			return "", zerr.Wrap(err, "failed to write hash to digest")
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}
