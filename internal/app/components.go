package app

import "go.trai.ch/box/internal/core/ports"

// Components holds the wired application and the logger main reports errors with.
type Components struct {
	App    *App
	Logger ports.Logger
}
