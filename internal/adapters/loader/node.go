package loader

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/syringe/internal/adapters/classpath"
	"go.trai.ch/syringe/internal/adapters/logger"
	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports"
)

const (
	// FactoryNodeID is the unique identifier for the loader factory Graft node.
	FactoryNodeID graft.ID = "adapter.loader.factory"
	// EnvironmentNodeID is the unique identifier for the marker environment Graft node.
	EnvironmentNodeID graft.ID = "adapter.loader.environment"
)

func init() {
	graft.Register(graft.Node[ports.LoaderFactory]{
		ID:        FactoryNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{classpath.OpenerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.LoaderFactory, error) {
			opener, err := graft.Dep[ports.SourceOpener](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactory(opener, log), nil
		},
	})

	graft.Register(graft.Node[ports.Definer]{
		ID:        EnvironmentNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Definer, error) {
			return NewMarkerEnvironment(domain.DefaultMarkers), nil
		},
	})
}
