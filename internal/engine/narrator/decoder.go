// Package narrator hosts the task-stream state machine: it serializes
// incoming lines, prints the narration and drives the status renderer.
package narrator

import (
	"io"
	"strings"
	"sync"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/box/internal/core/ports"
	"go.trai.ch/box/internal/engine/protocol"
)

// Decoder converts a task stream into narration written to its output.
// Lines are processed one at a time in delivery order.
type Decoder struct {
	proto    protocol.Protocol
	out      io.Writer
	status   ports.StatusRenderer
	observer ports.TaskObserver
	clock    clockwork.Clock

	mu    sync.Mutex
	state protocol.State
	// shown is true while the status renderer owns the current line.
	shown bool
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithObserver registers a task lifecycle observer.
func WithObserver(o ports.TaskObserver) Option {
	return func(d *Decoder) { d.observer = o }
}

// WithClock sets the clock used to timestamp tasks.
func WithClock(c clockwork.Clock) Option {
	return func(d *Decoder) { d.clock = c }
}

// New creates a Decoder for proto writing narration to out and status
// lines through status.
func New(proto protocol.Protocol, out io.Writer, status ports.StatusRenderer, opts ...Option) *Decoder {
	d := &Decoder{
		proto:  proto,
		out:    out,
		status: status,
		clock:  clockwork.NewRealClock(),
		state:  protocol.Initial(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// HandleLine processes one reassembled line.
func (d *Decoder) HandleLine(line string) {
	d.apply(protocol.LineEvent(line))
}

// HandleEnd processes the end of stream. The status renderer is always
// released, whatever state the decoder was in.
func (d *Decoder) HandleEnd(success bool) {
	d.apply(protocol.EndEvent(success))

	d.mu.Lock()
	defer d.mu.Unlock()
	d.release()
}

// Callback adapts the decoder to the host callback contract: a non-nil
// line is a reassembled line, a nil line is the end of stream.
func (d *Decoder) Callback() func(line *string, success bool) {
	return func(line *string, success bool) {
		if line == nil {
			d.HandleEnd(success)
			return
		}
		d.HandleLine(*line)
	}
}

// State returns a snapshot of the current decoder state.
func (d *Decoder) State() protocol.State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *Decoder) apply(ev protocol.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	next, outputs := d.proto.Transition(d.state, ev, d.clock.Now())
	d.state = next

	for _, o := range outputs {
		d.emit(o)
	}
}

func (d *Decoder) emit(o protocol.Output) {
	switch o.Kind {
	case protocol.OutputText:
		d.release()
		text := o.Text
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		_, _ = io.WriteString(d.out, text)
	case protocol.OutputTaskStarted, protocol.OutputTaskResumed:
		d.release()
		if o.Kind == protocol.OutputTaskStarted && d.observer != nil {
			d.observer.TaskStarted(o.Task, o.At)
		}
		d.status.Show(o.Text, o.At)
		d.shown = true
	case protocol.OutputTaskErrored:
		if d.observer != nil {
			d.observer.TaskErrored(o.Task, o.Message, o.At)
		}
	case protocol.OutputTaskEnded:
		if d.observer != nil {
			d.observer.TaskEnded(o.Task, o.At, o.HadError, o.Failed)
		}
	}
}

// release hands the current line back from the status renderer.
func (d *Decoder) release() {
	if d.shown {
		d.status.Clear()
		d.shown = false
	}
}
