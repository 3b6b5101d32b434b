// Package scanner discovers injectable types by reading class-file metadata.
// No type is loaded or linked while scanning.
package scanner

import (
	"context"
	"fmt"

	"go.trai.ch/syringe/internal/adapters/classfile"
	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Scanner = (*Scanner)(nil)

// Scanner implements ports.Scanner over class sources.
type Scanner struct {
	opener ports.SourceOpener
	logger ports.Logger
}

// New creates a new Scanner.
func New(opener ports.SourceOpener, logger ports.Logger) *Scanner {
	return &Scanner{opener: opener, logger: logger}
}

// scan holds the state of a single Scan call.
type scan struct {
	markers    domain.MarkerSpec
	defined    map[string]struct{}
	candidates []domain.CandidateType
	warnings   int
}

// Scan walks entries in order and returns every type carrying a marker.
//
// The first definition of a name shadows later ones, matching how a loading
// context built from the same entries resolves it. Class files that cannot be
// parsed are logged at debug level and treated as non-matches. Entries that
// cannot be opened, and directories inside an entry that cannot be read, are
// logged and skipped.
func (s *Scanner) Scan(
	ctx context.Context,
	entries []domain.ClasspathEntry,
	markers domain.MarkerSpec,
) ([]domain.CandidateType, error) {
	st := &scan{
		markers: markers,
		defined: make(map[string]struct{}),
	}

	for _, entry := range entries {
		src, err := s.opener.Open(entry)
		if err != nil {
			s.logger.Warn(fmt.Sprintf("skipping unreadable classpath entry %s: %v", entry.Path, err))
			continue
		}
		err = s.scanSource(ctx, src, st)
		if closeErr := src.Close(); closeErr != nil {
			s.logger.Debug("failed to close classpath entry", "path", entry.Path, "error", closeErr)
		}
		if err != nil {
			return nil, err
		}
	}

	s.logger.Debug("scan complete",
		"entries", len(entries),
		"candidates", len(st.candidates),
		"warnings", st.warnings,
	)
	return st.candidates, nil
}

func (s *Scanner) scanSource(ctx context.Context, src ports.ClassSource, st *scan) error {
	origin := src.Entry().Path
	resources, err := src.Resources()
	if err != nil {
		st.warnings++
		s.logger.Warn(fmt.Sprintf("skipping unreadable parts of classpath entry %s: %v", origin, err))
	}
	for _, resource := range resources {
		if err := ctx.Err(); err != nil {
			return zerr.Wrap(err, "scan cancelled")
		}
		if domain.IsMetadataResource(resource) {
			continue
		}
		name, ok := domain.NameFromResource(resource)
		if !ok {
			continue
		}
		if _, shadowed := st.defined[name]; shadowed {
			continue
		}
		st.defined[name] = struct{}{}

		candidate, err := s.inspect(src, resource, name, st.markers)
		if err != nil {
			st.warnings++
			s.logger.Debug(domain.ErrScanWarning.Error(),
				"type", name,
				"entry", origin,
				"error", err,
			)
			continue
		}
		if candidate != nil {
			candidate.Origin = origin
			st.candidates = append(st.candidates, *candidate)
		}
	}
	return nil
}

// inspect parses one class file and reports the marker it carries, or nil.
func (s *Scanner) inspect(
	src ports.ClassSource,
	resource, name string,
	markers domain.MarkerSpec,
) (*domain.CandidateType, error) {
	data, found, err := src.ReadClass(resource)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, zerr.With(zerr.Wrap(domain.ErrScanWarning, "listed class file disappeared"), "resource", resource)
	}

	cf, err := classfile.Parse(data)
	if err != nil {
		return nil, err
	}
	if cf.Name != name {
		err := zerr.Wrap(domain.ErrScanWarning, "declared name "+cf.Name+" does not match location")
		return nil, zerr.With(err, "resource", resource)
	}

	if cf.HasAnnotation(markers.TypeLevel) {
		return &domain.CandidateType{Name: name, Marker: domain.TypeLevelMarker}, nil
	}
	if field, ok := cf.FirstFieldWith(markers.FieldLevel); ok {
		return &domain.CandidateType{Name: name, Marker: domain.FieldLevelMarker, Field: field}, nil
	}
	return nil, nil //nolint:nilnil // Not injectable
}
