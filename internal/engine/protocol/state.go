// Package protocol implements the task-stream state machine that turns
// directive and data lines into progress narration.
package protocol

import "time"

// Phase tags the active variant of a State.
type Phase int

const (
	// PhaseNoTask means no task is running.
	PhaseNoTask Phase = iota
	// PhaseInTask means a task is running and data lines are buffered.
	PhaseInTask
	// PhaseClosed is reached at end of stream; further events are ignored.
	PhaseClosed
)

// String returns the string representation of the Phase.
func (p Phase) String() string {
	switch p {
	case PhaseInTask:
		return "in-task"
	case PhaseClosed:
		return "closed"
	default:
		return "no-task"
	}
}

// Task is the payload of the InTask variant.
type Task struct {
	Name      string
	StartedAt time.Time
	HadError  bool
	// Buffer holds the data lines seen while the task runs, verbatim.
	Buffer []string
}

// State is the decoder state. Phase selects the variant: Task is only
// meaningful in PhaseInTask, PreludeShown only outside of it (it is carried
// through a task so the banner stays suppressed afterwards).
type State struct {
	Phase        Phase
	PreludeShown bool
	Task         Task
}

// Initial returns the state a fresh decoder starts in.
func Initial() State {
	return State{Phase: PhaseNoTask}
}

// Event is one decoder input: a reassembled line or the end of stream.
type Event struct {
	Line    string
	EOS     bool
	Success bool
}

// LineEvent wraps a reassembled line.
func LineEvent(line string) Event {
	return Event{Line: line}
}

// EndEvent signals the end of stream with the overall outcome.
func EndEvent(success bool) Event {
	return Event{EOS: true, Success: success}
}

// OutputKind classifies an Output.
type OutputKind int

const (
	// OutputText is a line to print. A missing trailing newline is added.
	OutputText OutputKind = iota
	// OutputTaskStarted shows the status line of a newly started task.
	OutputTaskStarted
	// OutputTaskResumed shows the status line of the same task again.
	OutputTaskResumed
	// OutputTaskErrored records an error directive; it prints nothing.
	OutputTaskErrored
	// OutputTaskEnded records the end of a task instance; it prints nothing.
	OutputTaskEnded
)

// Output is one effect of a transition.
type Output struct {
	Kind OutputKind
	// Text is the printable line for OutputText and the status label for
	// OutputTaskStarted and OutputTaskResumed.
	Text string
	// Task identifies the task for every kind except OutputText.
	Task string
	// At is the task start time for status outputs and the event time otherwise.
	At time.Time
	// Message is the error message for OutputTaskErrored.
	Message string
	// HadError and Failed describe the outcome for OutputTaskEnded.
	HadError bool
	Failed   bool
}

// Text builds a printable output.
func Text(s string) Output {
	return Output{Kind: OutputText, Text: s}
}
