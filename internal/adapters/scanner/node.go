package scanner

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/syringe/internal/adapters/classpath"
	"go.trai.ch/syringe/internal/adapters/logger"
	"go.trai.ch/syringe/internal/core/ports"
)

// NodeID is the unique identifier for the scanner Graft node.
const NodeID graft.ID = "adapter.scanner"

func init() {
	graft.Register(graft.Node[ports.Scanner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{classpath.OpenerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Scanner, error) {
			opener, err := graft.Dep[ports.SourceOpener](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(opener, log), nil
		},
	})
}
