package ports

import (
	"context"

	"go.trai.ch/syringe/internal/core/domain"
)

// Telemetry records the progress of pipeline phases.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts a vertex for the named phase.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes the recording session.
	Close() error
}

// Vertex is a single recorded unit of work.
type Vertex interface {
	// Log records a message associated with the vertex.
	Log(level domain.LogLevel, msg string)

	// Complete marks the vertex finished, successfully when err is nil.
	Complete(err error)
}
