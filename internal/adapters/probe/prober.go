// Package probe waits for a remote host to accept TCP connections.
package probe

import (
	"context"
	"errors"
	"net"
	"strconv"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/box/internal/core/domain"
	"go.trai.ch/box/internal/core/ports"
	"go.trai.ch/zerr"
)

// DialFunc opens a connection to addr. It matches net.Dialer.DialContext.
type DialFunc func(ctx context.Context, network, addr string) (net.Conn, error)

// Prober implements ports.Prober with a bounded retry loop.
type Prober struct {
	logger ports.Logger
	clock  clockwork.Clock
	dial   DialFunc
}

// Option configures a Prober.
type Option func(*Prober)

// WithClock sets the clock used to wait between attempts.
func WithClock(c clockwork.Clock) Option {
	return func(p *Prober) { p.clock = c }
}

// WithDialFunc overrides TCP dialing, mainly for tests.
func WithDialFunc(d DialFunc) Option {
	return func(p *Prober) { p.dial = d }
}

// New creates a Prober that dials over TCP.
func New(logger ports.Logger, opts ...Option) *Prober {
	p := &Prober{
		logger: logger,
		clock:  clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.dial == nil {
		p.dial = (&net.Dialer{}).DialContext
	}
	return p
}

// Wait dials host until a connection succeeds, the budget is spent or ctx is done.
func (p *Prober) Wait(ctx context.Context, host string, settings domain.ProbeSettings) ports.ProbeResult {
	settings = withDefaults(settings)
	addr := net.JoinHostPort(host, strconv.Itoa(settings.Port))

	var result ports.ProbeResult
	for attempt := 1; attempt <= settings.Attempts; attempt++ {
		result.Attempts = attempt

		err := p.tryOnce(ctx, addr, settings.DialTimeout)
		if err == nil {
			result.Reachable = true
			result.LastErr = nil
			return result
		}
		result.LastErr = err

		if ctx.Err() != nil {
			result.LastErr = ctx.Err()
			return result
		}

		if !isRefused(err) {
			p.logger.Warn(zerr.With(zerr.Wrap(err, "connection attempt failed"), "address", addr).Error())
		}

		if attempt == settings.Attempts {
			break
		}

		select {
		case <-ctx.Done():
			result.LastErr = ctx.Err()
			return result
		case <-p.clock.After(settings.Delay):
		}
	}

	return result
}

func withDefaults(s domain.ProbeSettings) domain.ProbeSettings {
	if s.Attempts <= 0 {
		s.Attempts = domain.DefaultProbeAttempts
	}
	if s.Delay <= 0 {
		s.Delay = domain.DefaultProbeDelay
	}
	if s.Port <= 0 {
		s.Port = domain.DefaultProbePort
	}
	if s.DialTimeout <= 0 {
		s.DialTimeout = domain.DefaultProbeDialTimeout
	}
	return s
}

func (p *Prober) tryOnce(ctx context.Context, addr string, timeout time.Duration) error {
	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := p.dial(dialCtx, "tcp", addr)
	if err != nil {
		return err
	}
	_ = conn.Close()
	return nil
}

// isRefused reports whether the host actively rejected the connection,
// which is expected while a machine is still booting.
func isRefused(err error) bool {
	return errors.Is(err, syscall.ECONNREFUSED)
}
