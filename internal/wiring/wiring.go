// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/cask/internal/adapters/caskroom"
	_ "go.trai.ch/cask/internal/adapters/host"
	_ "go.trai.ch/cask/internal/adapters/logger"
	_ "go.trai.ch/cask/internal/adapters/manifest"
	_ "go.trai.ch/cask/internal/adapters/store"
	_ "go.trai.ch/cask/internal/adapters/tap"
	_ "go.trai.ch/cask/internal/adapters/telemetry"
	_ "go.trai.ch/cask/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/cask/internal/app"
	_ "go.trai.ch/cask/internal/engine/receipt"
)
