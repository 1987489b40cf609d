package ports

import "time"

// TaskObserver receives lifecycle notifications for decoded remote tasks.
//
//go:generate mockgen -source=observer.go -destination=mocks/mock_observer.go -package=mocks
type TaskObserver interface {
	TaskStarted(name string, at time.Time)
	TaskErrored(name, message string, at time.Time)
	// TaskEnded is called once per task instance. failed is true when the
	// stream ended unsuccessfully while the task was running.
	TaskEnded(name string, at time.Time, hadError, failed bool)
}
