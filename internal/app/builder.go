package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/syringe/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App          *App
	Logger       ports.Logger
	ConfigLoader ports.ConfigLoader
	Telemetry    ports.Telemetry
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, loader ports.ConfigLoader, telemetry ports.Telemetry) *Components {
	return &Components{
		App:          app,
		Logger:       logger,
		ConfigLoader: loader,
		Telemetry:    telemetry,
	}
}

// NewApp resolves the registered Graft nodes into a ready Components value.
func NewApp(ctx context.Context) (*Components, error) {
	components, _, err := graft.ExecuteFor[*Components](ctx)
	return components, err
}
