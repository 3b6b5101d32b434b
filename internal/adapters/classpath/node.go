package classpath

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/syringe/internal/adapters/fs"
	"go.trai.ch/syringe/internal/core/ports"
)

const (
	ResolverNodeID graft.ID = "adapter.classpath.resolver"
	OpenerNodeID   graft.ID = "adapter.classpath.opener"
)

func init() {
	graft.Register(graft.Node[ports.ClasspathResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ClasspathResolver, error) {
			return NewResolver(), nil
		},
	})

	graft.Register(graft.Node[ports.SourceOpener]{
		ID:        OpenerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID},
		Run: func(ctx context.Context) (ports.SourceOpener, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewOpener(walker), nil
		},
	})
}
