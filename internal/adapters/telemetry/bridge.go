package telemetry

import (
	"context"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Bridge implements sdktrace.SpanProcessor to collect task spans into a Summary.
type Bridge struct {
	summary *Summary
}

// NewBridge returns a new Bridge feeding summary.
func NewBridge(summary *Summary) *Bridge {
	return &Bridge{summary: summary}
}

// OnStart does nothing; tasks are recorded once they end.
func (b *Bridge) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (b *Bridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if b.summary == nil || !s.SpanContext().IsValid() {
		return
	}

	errs := 0
	for _, ev := range s.Events() {
		if ev.Name == EventTaskError {
			errs++
		}
	}

	hadError := errs > 0
	for _, kv := range s.Attributes() {
		if kv.Key == AttrTaskHadError {
			hadError = hadError || kv.Value.AsBool()
		}
	}

	b.summary.add(TaskRecord{
		Name:     s.Name(),
		Started:  s.StartTime(),
		Ended:    s.EndTime(),
		Errors:   errs,
		HadError: hadError,
		Failed:   s.Status().Code == codes.Error,
	})
}

// ForceFlush does nothing.
func (b *Bridge) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (b *Bridge) Shutdown(_ context.Context) error {
	return nil
}
