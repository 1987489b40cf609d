// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/box/internal/adapters/config"
	_ "go.trai.ch/box/internal/adapters/logger"
	_ "go.trai.ch/box/internal/adapters/probe"
	_ "go.trai.ch/box/internal/adapters/shell"
	// Register app nodes.
	_ "go.trai.ch/box/internal/app"
)
