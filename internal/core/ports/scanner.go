// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/syringe/internal/core/domain"
)

// Scanner discovers injectable types by reading class-file metadata without
// loading any type.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type Scanner interface {
	// Scan returns the candidates found under entries, in discovery order and
	// without duplicates.
	Scan(ctx context.Context, entries []domain.ClasspathEntry, markers domain.MarkerSpec) ([]domain.CandidateType, error)
}
