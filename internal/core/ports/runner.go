// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/box/internal/core/domain"
)

// LineFunc receives one reassembled output line, trailing newline included
// unless it is the final unterminated line of the stream.
type LineFunc func(line string)

// Runner spawns a subprocess and streams its merged output line by line.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Run executes cmd, delivering every output line to onLine in order, and
	// returns the exit code once the process has terminated and its output
	// has been drained. The error is non-nil only when the process could not
	// be started or reaped; a non-zero exit is reported through the code.
	Run(ctx context.Context, cmd domain.Command, onLine LineFunc) (int, error)
}
