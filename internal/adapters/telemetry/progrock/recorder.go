// Package progrock records pipeline phases as progrock vertices.
package progrock

import (
	"context"
	"time"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/syringe/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry on a progrock tape. Phase durations are
// reported to the logger at debug level.
type Recorder struct {
	w      progrock.Writer
	rec    *progrock.Recorder
	logger ports.Logger
	now    func() time.Time
}

// New creates a Recorder writing to an in-memory tape.
func New(logger ports.Logger) *Recorder {
	return NewRecorder(progrock.NewTape(), logger)
}

// NewRecorder creates a Recorder with the given writer.
func NewRecorder(w progrock.Writer, logger ports.Logger) *Recorder {
	return &Recorder{
		w:      w,
		rec:    progrock.NewRecorder(w),
		logger: logger,
		now:    time.Now,
	}
}

// Record starts a vertex for a pipeline phase. Phases are keyed by name, so
// recording the same phase twice updates one vertex.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	return ctx, &Vertex{vertex: v, name: name, started: r.now(), recorder: r}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
