// Package detector provides environment detection for output mode selection.
package detector

import (
	"io"
	"os"

	"go.trai.ch/box/internal/core/domain"
	"golang.org/x/term"
)

// fder is implemented by writers backed by a file descriptor, such as *os.File.
type fder interface {
	Fd() uintptr
}

// IsInteractive reports whether w is attached to a terminal and the CI
// environment variable is not set.
func IsInteractive(w io.Writer) bool {
	f, ok := w.(fder)
	if !ok {
		return false
	}

	ci := os.Getenv("CI")
	if ci == "true" || ci == "1" {
		return false
	}

	return term.IsTerminal(int(f.Fd())) //nolint:gosec // file descriptors fit in int
}

// ResolveMode applies the user's mode to auto-detection and returns either
// domain.OutputModeAnimated or domain.OutputModePlain.
// mode is a value returned by domain.ParseOutputMode, or empty.
func ResolveMode(interactive bool, mode domain.OutputMode) domain.OutputMode {
	switch mode {
	case domain.OutputModeAnimated:
		return domain.OutputModeAnimated
	case domain.OutputModePlain:
		return domain.OutputModePlain
	default:
		if interactive {
			return domain.OutputModeAnimated
		}
		return domain.OutputModePlain
	}
}
