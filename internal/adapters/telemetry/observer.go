// Package telemetry records decoded remote tasks as OpenTelemetry spans.
package telemetry

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Span attribute and event names.
const (
	AttrTaskName     = attribute.Key("task.name")
	AttrTaskHadError = attribute.Key("task.had_error")
	AttrErrorMessage = attribute.Key("task.error.message")
	EventTaskError   = "task.error"
)

// Observer implements ports.TaskObserver by opening one span per task.
type Observer struct {
	tracer trace.Tracer
	parent context.Context

	mu      sync.Mutex
	current trace.Span
}

// NewObserver creates an Observer whose spans are children of the span in ctx, if any.
func NewObserver(ctx context.Context, tracer trace.Tracer) *Observer {
	return &Observer{tracer: tracer, parent: ctx}
}

// TaskStarted opens the span for name.
func (o *Observer) TaskStarted(name string, at time.Time) {
	o.mu.Lock()
	defer o.mu.Unlock()

	_, span := o.tracer.Start(o.parent, name,
		trace.WithTimestamp(at),
		trace.WithAttributes(AttrTaskName.String(name)),
	)
	o.current = span
}

// TaskErrored records a task.error event on the open span.
func (o *Observer) TaskErrored(_, message string, at time.Time) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current == nil {
		return
	}
	o.current.AddEvent(EventTaskError,
		trace.WithTimestamp(at),
		trace.WithAttributes(AttrErrorMessage.String(message)),
	)
}

// TaskEnded closes the open span. A failed task gets an error status.
func (o *Observer) TaskEnded(_ string, at time.Time, hadError, failed bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.current == nil {
		return
	}
	o.current.SetAttributes(AttrTaskHadError.Bool(hadError))
	if failed {
		o.current.SetStatus(codes.Error, "process failure")
	}
	o.current.End(trace.WithTimestamp(at))
	o.current = nil
}
