package ports

import "time"

// StatusRenderer draws the "Currently" line of the running task.
//
// Show is called when a task starts (or resumes after an error report).
// Clear is called before any other output is written while a status is
// shown, and once more at end of stream. After Clear returns the renderer
// must not write until the next Show.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type StatusRenderer interface {
	Show(label string, startedAt time.Time)
	Clear()
}
