package module

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/syringe/internal/adapters/logger"
	"go.trai.ch/syringe/internal/core/ports"
)

// NodeID is the unique identifier for the module producer Graft node.
const NodeID graft.ID = "adapter.producer.module"

func init() {
	graft.Register(graft.Node[*Producer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (*Producer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(log), nil
		},
	})
}
