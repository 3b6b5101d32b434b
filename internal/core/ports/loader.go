package ports

import (
	"context"

	"go.trai.ch/syringe/internal/core/domain"
)

// Definer is the environment a loading context delegates to first.
// It defines the marker annotation types so their identity is shared by every context.
type Definer interface {
	Define(name string) (*domain.TypeHandle, bool)
}

// LoaderFactory opens isolated loading contexts.
//
//go:generate go run go.uber.org/mock/mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type LoaderFactory interface {
	// Open creates a context whose search path is exactly classpath.Entries(),
	// parented to parent.
	Open(classpath domain.Classpath, parent Definer) (LoadingContext, error)
}

// LoadingContext resolves type names to handles scoped to its own lifetime.
type LoadingContext interface {
	// ID returns the unique identifier of the context.
	ID() string

	// Materialize resolves every candidate. It fails without a partial result
	// if any candidate cannot be resolved.
	Materialize(ctx context.Context, candidates []domain.CandidateType) ([]domain.LoadedInjectable, error)

	// Lookup resolves a single type name.
	Lookup(name string) (*domain.TypeHandle, error)

	// Close releases the context and invalidates every handle it issued.
	Close() error
}
