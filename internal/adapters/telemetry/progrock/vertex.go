package progrock

import (
	"fmt"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/syringe/internal/core/domain"
)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex   *progrock.VertexRecorder
	name     string
	started  time.Time
	recorder *Recorder
}

// Log records a message on the vertex's output stream. Warnings and errors go
// to stderr.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	w := v.vertex.Stdout()
	if level >= domain.LogLevelWarn {
		w = v.vertex.Stderr()
	}
	_, _ = fmt.Fprintf(w, "[%s] %s\n", level.String(), msg)
}

// Complete marks the vertex finished, failed when err is non-nil.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)

	elapsed := v.recorder.now().Sub(v.started)
	if err != nil {
		v.recorder.logger.Debug("phase failed", "phase", v.name, "elapsed", elapsed, "error", err)
		return
	}
	v.recorder.logger.Debug("phase done", "phase", v.name, "elapsed", elapsed)
}
