// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/syringe/internal/adapters/classpath"
	_ "go.trai.ch/syringe/internal/adapters/config"
	_ "go.trai.ch/syringe/internal/adapters/fs"
	_ "go.trai.ch/syringe/internal/adapters/loader"
	_ "go.trai.ch/syringe/internal/adapters/logger"
	_ "go.trai.ch/syringe/internal/adapters/producer/instance"
	_ "go.trai.ch/syringe/internal/adapters/producer/module"
	_ "go.trai.ch/syringe/internal/adapters/producer/schema"
	_ "go.trai.ch/syringe/internal/adapters/scanner"
	_ "go.trai.ch/syringe/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/syringe/internal/app"
	_ "go.trai.ch/syringe/internal/engine/dispatcher"
)
