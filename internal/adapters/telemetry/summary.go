package telemetry

import (
	"fmt"
	"sync"
	"time"

	"go.trai.ch/box/internal/core/domain"
)

// TaskRecord is the outcome of one remote task.
type TaskRecord struct {
	Name     string
	Started  time.Time
	Ended    time.Time
	Errors   int
	HadError bool
	Failed   bool
}

// Elapsed returns how long the task ran.
func (r TaskRecord) Elapsed() time.Duration {
	return r.Ended.Sub(r.Started)
}

// String renders the record as one summary line.
func (r TaskRecord) String() string {
	status := "ok"
	switch {
	case r.Failed:
		status = "failed"
	case r.Errors == 1:
		status = "1 error"
	case r.Errors > 1:
		status = fmt.Sprintf("%d errors", r.Errors)
	case r.HadError:
		status = "errors"
	}
	return fmt.Sprintf("%s: %s in %s", r.Name, status, domain.FormatElapsed(r.Elapsed()))
}

// Summary accumulates task records in completion order.
type Summary struct {
	mu      sync.Mutex
	records []TaskRecord
}

// NewSummary creates an empty Summary.
func NewSummary() *Summary {
	return &Summary{}
}

func (s *Summary) add(r TaskRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
}

// Records returns a copy of the collected records.
func (s *Summary) Records() []TaskRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]TaskRecord(nil), s.records...)
}

// Lines renders every record with String.
func (s *Summary) Lines() []string {
	records := s.Records()
	lines := make([]string, 0, len(records))
	for _, r := range records {
		lines = append(lines, r.String())
	}
	return lines
}
