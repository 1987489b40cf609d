// Package tui provides the animated status renderer for interactive terminals.
package tui

import (
	"io"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/muesli/termenv"
	"go.trai.ch/box/internal/core/domain"
	"go.trai.ch/box/internal/ui/output"
)

// DefaultInterval is the refresh period of the elapsed-time counter.
const DefaultInterval = time.Second

// Renderer implements ports.StatusRenderer by rewriting the current
// terminal line in place while a task runs.
//
// Show starts a tick goroutine; Clear stops it and waits for it to exit
// before erasing the line, so nothing is written once Clear returns.
type Renderer struct {
	out      *termenv.Output
	clock    clockwork.Clock
	interval time.Duration

	// mu guards the tick lifecycle, wmu serializes terminal writes.
	mu   sync.Mutex
	wmu  sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClock sets the clock driving the ticker.
func WithClock(c clockwork.Clock) Option {
	return func(r *Renderer) { r.clock = c }
}

// WithInterval sets the refresh period.
func WithInterval(d time.Duration) Option {
	return func(r *Renderer) {
		if d > 0 {
			r.interval = d
		}
	}
}

// NewRenderer creates an animated Renderer writing to w.
func NewRenderer(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{
		out:      output.New(w),
		clock:    clockwork.NewRealClock(),
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Show prints label without a trailing newline and keeps the elapsed time
// since startedAt updated on the same line. A status that is still shown
// is cleared first.
func (r *Renderer) Show(label string, startedAt time.Time) {
	r.Clear()

	r.mu.Lock()
	defer r.mu.Unlock()

	r.write(label)

	ticker := r.clock.NewTicker(r.interval)
	stop := make(chan struct{})
	done := make(chan struct{})
	r.stop, r.done = stop, done

	go r.tick(ticker, label, startedAt, stop, done)
}

// Clear stops the ticker, waits for the tick goroutine and erases the line.
// It is a no-op when nothing is shown.
func (r *Renderer) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stop == nil {
		return
	}

	close(r.stop)
	<-r.done
	r.stop, r.done = nil, nil

	r.write("")
}

func (r *Renderer) tick(ticker clockwork.Ticker, label string, startedAt time.Time, stop, done chan struct{}) {
	defer close(done)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			r.write(label + " (" + domain.FormatElapsed(r.clock.Since(startedAt)) + ")")
		}
	}
}

// write replaces the current line with s.
func (r *Renderer) write(s string) {
	r.wmu.Lock()
	defer r.wmu.Unlock()

	r.out.ClearLine()
	_, _ = r.out.WriteString("\r" + s)
}
