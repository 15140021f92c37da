// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stay/internal/adapters/config"
	_ "go.trai.ch/stay/internal/adapters/fs"
	_ "go.trai.ch/stay/internal/adapters/logger"
	_ "go.trai.ch/stay/internal/adapters/telemetry"
	_ "go.trai.ch/stay/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/stay/internal/app"
	_ "go.trai.ch/stay/internal/engine/positions"
)
