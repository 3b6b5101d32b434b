package classpath

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/klauspost/compress/zip"
	"go.trai.ch/syringe/internal/adapters/classfile"
	"go.trai.ch/syringe/internal/adapters/fs"
	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceOpener = (*Opener)(nil)

// Opener opens classpath entries as class sources.
type Opener struct {
	walker *fs.Walker
}

// NewOpener creates a new Opener.
func NewOpener(walker *fs.Walker) *Opener {
	return &Opener{walker: walker}
}

// Open opens entry for reading. Archives are opened once and held until the
// source is closed.
func (o *Opener) Open(entry domain.ClasspathEntry) (ports.ClassSource, error) {
	switch entry.Kind {
	case domain.EntryArchive:
		return openArchive(entry)
	case domain.EntryDirectory:
		return o.openDir(entry)
	default:
		return nil, zerr.With(zerr.New("unknown classpath entry kind"), "kind", entry.Kind.String())
	}
}

func (o *Opener) openDir(entry domain.ClasspathEntry) (ports.ClassSource, error) {
	info, err := os.Stat(entry.Path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open classpath directory"), "path", entry.Path)
	}
	if !info.IsDir() {
		return nil, zerr.With(zerr.New("classpath entry is not a directory"), "path", entry.Path)
	}
	return &dirSource{entry: entry, walker: o.walker}, nil
}

type dirSource struct {
	entry  domain.ClasspathEntry
	walker *fs.Walker

	once      sync.Once
	resources []string
	skipped   error
}

func (s *dirSource) Entry() domain.ClasspathEntry {
	return s.entry
}

// Resources lists class files in lexical walk order. Subdirectories that
// cannot be read are left out and reported together in the error.
func (s *dirSource) Resources() ([]string, error) {
	s.once.Do(func() {
		var errs []error
		for rel, err := range s.walker.WalkFiles(s.entry.Path, domain.ClassExt) {
			if err != nil {
				errs = append(errs, err)
				continue
			}
			s.resources = append(s.resources, rel)
		}
		s.skipped = errors.Join(errs...)
	})
	return s.resources, s.skipped
}

func (s *dirSource) ReadClass(resource string) ([]byte, bool, error) {
	if !validResource(resource) {
		return nil, false, nil
	}
	path := filepath.Join(s.entry.Path, filepath.FromSlash(resource))
	f, err := os.Open(path) //nolint:gosec // Path is confined to the classpath entry
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, zerr.With(zerr.Wrap(err, "failed to open class file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Read-only file

	data, err := classfile.ReadBytes(f)
	if err != nil {
		return nil, true, zerr.With(err, "path", path)
	}
	return data, true, nil
}

func (s *dirSource) Close() error {
	return nil
}

type archiveSource struct {
	entry     domain.ClasspathEntry
	reader    *zip.ReadCloser
	files     map[string]*zip.File
	resources []string
}

func openArchive(entry domain.ClasspathEntry) (ports.ClassSource, error) {
	rc, err := zip.OpenReader(entry.Path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open archive"), "path", entry.Path)
	}

	s := &archiveSource{
		entry:  entry,
		reader: rc,
		files:  make(map[string]*zip.File, len(rc.File)),
	}
	// Central-directory order; the first occurrence of a duplicated name wins.
	for _, f := range rc.File {
		if f.FileInfo().IsDir() || !strings.HasSuffix(f.Name, domain.ClassExt) {
			continue
		}
		if _, dup := s.files[f.Name]; dup {
			continue
		}
		s.files[f.Name] = f
		s.resources = append(s.resources, f.Name)
	}
	return s, nil
}

func (s *archiveSource) Entry() domain.ClasspathEntry {
	return s.entry
}

func (s *archiveSource) Resources() ([]string, error) {
	return s.resources, nil
}

func (s *archiveSource) ReadClass(resource string) ([]byte, bool, error) {
	f, ok := s.files[resource]
	if !ok {
		return nil, false, nil
	}
	rc, err := f.Open()
	if err != nil {
		return nil, true, zerr.With(zerr.With(zerr.Wrap(err, "failed to open archive member"), "path", s.entry.Path), "member", resource)
	}
	defer rc.Close() //nolint:errcheck // Read-only member

	data, err := classfile.ReadBytes(rc)
	if err != nil {
		return nil, true, zerr.With(zerr.With(err, "path", s.entry.Path), "member", resource)
	}
	return data, true, nil
}

func (s *archiveSource) Close() error {
	if err := s.reader.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close archive"), "path", s.entry.Path)
	}
	return nil
}

// validResource rejects names that would escape the entry directory.
func validResource(resource string) bool {
	if resource == "" || strings.HasPrefix(resource, "/") {
		return false
	}
	for part := range strings.SplitSeq(resource, "/") {
		if part == ".." {
			return false
		}
	}
	return true
}
