// Package classpath resolves the classpath of a build and opens its entries
// for reading class files.
package classpath

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ClasspathResolver = (*Resolver)(nil)

// Resolver implements ports.ClasspathResolver from the build directory layout.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveManifest reads the dependency list from the first line of the
// classpath manifest. Blank segments are skipped; order is preserved.
func (r *Resolver) ResolveManifest(layout domain.Layout) (domain.Classpath, error) {
	output, err := r.output(layout)
	if err != nil {
		return domain.Classpath{}, err
	}

	path := layout.ManifestPath()
	line, err := firstLine(path)
	if err != nil {
		return domain.Classpath{}, resolutionError("failed to read classpath manifest", path, err)
	}
	if strings.TrimSpace(line) == "" {
		return domain.Classpath{}, resolutionError("classpath manifest is empty", path, nil)
	}

	var deps []domain.ClasspathEntry
	for segment := range strings.SplitSeq(line, ";") {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		deps = append(deps, domain.NewClasspathEntry(segment))
	}
	return domain.NewClasspath(output, deps), nil
}

// ResolveLibDir lists the dependency archives of the lib directory in
// lexicographic order. An empty directory yields no dependencies.
func (r *Resolver) ResolveLibDir(layout domain.Layout) (domain.Classpath, error) {
	output, err := r.output(layout)
	if err != nil {
		return domain.Classpath{}, err
	}

	dir := layout.LibDir()
	info, err := os.Stat(dir)
	if err != nil {
		return domain.Classpath{}, resolutionError("failed to open dependency directory", dir, err)
	}
	if !info.IsDir() {
		return domain.Classpath{}, resolutionError("dependency path is not a directory", dir, nil)
	}

	pattern := filepath.Join(dir, "*"+domain.ArchiveExt)
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return domain.Classpath{}, zerr.With(zerr.Wrap(err, "failed to glob path"), "path", pattern)
	}
	sort.Strings(matches)

	deps := make([]domain.ClasspathEntry, 0, len(matches))
	for _, match := range matches {
		deps = append(deps, domain.NewClasspathEntry(match))
	}
	return domain.NewClasspath(output, deps), nil
}

func (r *Resolver) output(layout domain.Layout) (domain.ClasspathEntry, error) {
	dir := layout.ClassesDir()
	info, err := os.Stat(dir)
	if err != nil {
		return domain.ClasspathEntry{}, resolutionError("failed to open compiled output directory", dir, err)
	}
	if !info.IsDir() {
		return domain.ClasspathEntry{}, resolutionError("compiled output path is not a directory", dir, nil)
	}
	return domain.ClasspathEntry{Path: filepath.Clean(dir), Kind: domain.EntryDirectory}, nil
}

func firstLine(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is derived from the build layout
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck // Read-only file

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16<<20)
	if sc.Scan() {
		return sc.Text(), nil
	}
	return "", sc.Err()
}

func resolutionError(msg, path string, cause error) error {
	if cause != nil {
		msg += ": " + cause.Error()
	}
	return zerr.With(zerr.Wrap(domain.ErrResolution, msg), "path", path)
}
