package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/syringe/internal/adapters/classpath"          //nolint:depguard // Wired in app layer
	"go.trai.ch/syringe/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/syringe/internal/adapters/fs"                 //nolint:depguard // Wired in app layer
	"go.trai.ch/syringe/internal/adapters/loader"             //nolint:depguard // Wired in app layer
	"go.trai.ch/syringe/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/syringe/internal/adapters/scanner"            //nolint:depguard // Wired in app layer
	"go.trai.ch/syringe/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/syringe/internal/core/ports"
	"go.trai.ch/syringe/internal/engine/dispatcher"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			classpath.ResolverNodeID,
			scanner.NodeID,
			loader.FactoryNodeID,
			loader.EnvironmentNodeID,
			dispatcher.NodeID,
			fs.WriterNodeID,
			fs.HasherNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	resolver, err := graft.Dep[ports.ClasspathResolver](ctx)
	if err != nil {
		return nil, err
	}

	scan, err := graft.Dep[ports.Scanner](ctx)
	if err != nil {
		return nil, err
	}

	factory, err := graft.Dep[ports.LoaderFactory](ctx)
	if err != nil {
		return nil, err
	}

	parent, err := graft.Dep[ports.Definer](ctx)
	if err != nil {
		return nil, err
	}

	d, err := graft.Dep[*dispatcher.Dispatcher](ctx)
	if err != nil {
		return nil, err
	}

	writer, err := graft.Dep[ports.ArtifactWriter](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return New(resolver, scan, factory, parent, d, writer, hasher, log, telemetry), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, log, configLoader, telemetry), nil
}
