package ports

import (
	"context"

	"go.trai.ch/box/internal/core/domain"
)

// ProbeResult is the outcome of a connectivity wait.
type ProbeResult struct {
	// Reachable is true when a connection was established.
	Reachable bool
	// Attempts is the number of connection attempts made.
	Attempts int
	// LastErr is the error of the final failed attempt, if any.
	LastErr error
}

// Prober waits for a freshly created machine to accept connections.
//
//go:generate mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type Prober interface {
	// Wait polls host until it is reachable or the attempt budget is spent.
	// Exhaustion is reported in the result, never as a panic or abort.
	// Zero fields of settings fall back to the defaults.
	Wait(ctx context.Context, host string, settings domain.ProbeSettings) ProbeResult
}
