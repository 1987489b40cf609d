package protocol

import (
	"strings"
	"time"

	"go.trai.ch/box/internal/core/domain"
)

const indent = "    "

// Protocol parameterizes the state machine with its directive prefix and
// narration markers.
type Protocol struct {
	Prefix string
	Glyphs Glyphs
}

// New returns a Protocol for prefix with the default markers.
func New(prefix string) Protocol {
	return Protocol{Prefix: prefix, Glyphs: DefaultGlyphs()}
}

// Transition applies ev to s at time now and returns the next state along
// with the outputs to emit, in order. It is total over every phase and
// event. The visible fields of s are left untouched, but the returned
// state may share the task buffer's backing array, so s must not be
// passed to Transition again.
func (p Protocol) Transition(s State, ev Event, now time.Time) (State, []Output) {
	switch s.Phase {
	case PhaseNoTask:
		if ev.EOS {
			return p.endNoTask(s, ev.Success)
		}
		return p.lineNoTask(s, domain.ParseDirective(p.Prefix, ev.Line), now)
	case PhaseInTask:
		if ev.EOS {
			return p.endInTask(s, ev.Success, now)
		}
		return p.lineInTask(s, domain.ParseDirective(p.Prefix, ev.Line), now)
	default:
		return s, nil
	}
}

func (p Protocol) lineNoTask(s State, d domain.Directive, now time.Time) (State, []Output) {
	switch d.Kind {
	case domain.DirectiveStart:
		return p.start(d.Text, now, nil)
	case domain.DirectiveError:
		s.PreludeShown = true
		return s, []Output{Text(p.Glyphs.Error + " " + d.Text)}
	case domain.DirectiveFinish:
		s.PreludeShown = true
		return s, []Output{Text(p.Glyphs.Unexpected + " Unexpected task completion event")}
	default:
		var out []Output
		if !s.PreludeShown {
			s.PreludeShown = true
			out = append(out, Text(p.Glyphs.Banner+" Now receiving streamed logs"))
		}
		return s, append(out, Text(d.Text))
	}
}

func (p Protocol) lineInTask(s State, d domain.Directive, now time.Time) (State, []Output) {
	switch d.Kind {
	case domain.DirectiveStart:
		out := p.complete(s.Task, now)
		return p.start(d.Text, now, out)
	case domain.DirectiveError:
		task := s.Task
		out := make([]Output, 0, len(task.Buffer)+3)
		for _, line := range task.Buffer {
			out = append(out, Text(indent+trimEOL(line)))
		}
		out = append(out,
			Text(indent+p.Glyphs.Error+" "+d.Text),
			Output{Kind: OutputTaskErrored, Task: task.Name, At: now, Message: d.Text},
			Output{Kind: OutputTaskResumed, Text: p.statusLabel(task.Name), Task: task.Name, At: task.StartedAt},
		)
		task.Buffer = nil
		task.HadError = true
		return State{Phase: PhaseInTask, PreludeShown: true, Task: task}, out
	case domain.DirectiveFinish:
		return State{Phase: PhaseNoTask, PreludeShown: true}, p.complete(s.Task, now)
	default:
		task := s.Task
		task.Buffer = append(task.Buffer, d.Text)
		return State{Phase: PhaseInTask, PreludeShown: true, Task: task}, nil
	}
}

func (p Protocol) endNoTask(s State, success bool) (State, []Output) {
	closed := State{Phase: PhaseClosed, PreludeShown: s.PreludeShown}
	if success {
		return closed, nil
	}
	return closed, []Output{Text(p.Glyphs.Error + " Failed: process failure")}
}

func (p Protocol) endInTask(s State, success bool, now time.Time) (State, []Output) {
	closed := State{Phase: PhaseClosed, PreludeShown: true}
	if success {
		return closed, p.complete(s.Task, now)
	}

	task := s.Task
	out := make([]Output, 0, len(task.Buffer)+2)
	for _, line := range task.Buffer {
		out = append(out, Text(line))
	}
	out = append(out,
		Text(p.Glyphs.Error+" Failed: "+task.Name),
		Output{Kind: OutputTaskEnded, Task: task.Name, At: now, HadError: task.HadError, Failed: true},
	)
	return closed, out
}

// start enters InTask for name. Once a directive is seen the banner stays
// suppressed, so PreludeShown is set unconditionally.
func (p Protocol) start(name string, now time.Time, out []Output) (State, []Output) {
	task := Task{Name: name, StartedAt: now}
	out = append(out, Output{Kind: OutputTaskStarted, Text: p.statusLabel(name), Task: name, At: now})
	return State{Phase: PhaseInTask, PreludeShown: true, Task: task}, out
}

// complete narrates the successful end of task. Buffered data is dropped.
func (p Protocol) complete(task Task, now time.Time) []Output {
	marker := p.Glyphs.Done
	suffix := ""
	if task.HadError {
		marker = p.Glyphs.DoneErrors
		suffix = " with errors"
	}

	line := marker + " Completed: " + task.Name + " (" + domain.FormatElapsed(now.Sub(task.StartedAt)) + ")" + suffix
	return []Output{
		Text(line),
		{Kind: OutputTaskEnded, Task: task.Name, At: now, HadError: task.HadError},
	}
}

func (p Protocol) statusLabel(name string) string {
	return p.Glyphs.Running + " Currently: " + name
}

func trimEOL(line string) string {
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
}
