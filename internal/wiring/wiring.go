// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/macroscope/internal/adapters/config"
	_ "go.trai.ch/macroscope/internal/adapters/logger"
	_ "go.trai.ch/macroscope/internal/adapters/manifest"
	_ "go.trai.ch/macroscope/internal/adapters/telemetry"
	_ "go.trai.ch/macroscope/internal/adapters/watcher"
	// Register app nodes.
	_ "go.trai.ch/macroscope/internal/app"
)
