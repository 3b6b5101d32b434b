package logger

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the logger Graft node.
	NodeID graft.ID = "adapter.logger"
	// EnvLogLevel sets the initial level; --verbose still lowers it to debug.
	EnvLogLevel = "SYRINGE_LOG_LEVEL"
)

func init() {
	graft.Register(graft.Node[ports.Logger]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Logger, error) {
			return FromEnv(os.LookupEnv)
		},
	})
}

// FromEnv creates a Logger whose level is taken from EnvLogLevel when set.
func FromEnv(lookup func(string) (string, bool)) (*Logger, error) {
	l := New()
	if v, ok := lookup(EnvLogLevel); ok {
		level, err := domain.ParseLogLevel(v)
		if err != nil {
			return nil, err
		}
		l.SetLevel(level)
	}
	return l, nil
}
