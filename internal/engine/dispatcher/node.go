package dispatcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/syringe/internal/adapters/producer/instance"
	"go.trai.ch/syringe/internal/adapters/producer/module"
	"go.trai.ch/syringe/internal/adapters/producer/schema"
)

// NodeID is the unique identifier for the dispatcher Graft node.
const NodeID graft.ID = "engine.dispatcher"

func init() {
	graft.Register(graft.Node[*Dispatcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{schema.NodeID, module.NodeID, instance.NodeID},
		Run: func(ctx context.Context) (*Dispatcher, error) {
			schemaProducer, err := graft.Dep[*schema.Producer](ctx)
			if err != nil {
				return nil, err
			}
			moduleProducer, err := graft.Dep[*module.Producer](ctx)
			if err != nil {
				return nil, err
			}
			instanceProducer, err := graft.Dep[*instance.Producer](ctx)
			if err != nil {
				return nil, err
			}
			return New(schemaProducer, moduleProducer, instanceProducer), nil
		},
	})
}
