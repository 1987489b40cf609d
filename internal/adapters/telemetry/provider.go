package telemetry

import (
	"context"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// InstrumentationName identifies box spans.
const InstrumentationName = "go.trai.ch/box"

// Session wires a tracer provider to a Summary for one invocation.
type Session struct {
	provider *sdktrace.TracerProvider
	summary  *Summary
}

// NewSession creates a Session. Extra processors, such as exporters, receive the same spans.
func NewSession(processors ...sdktrace.SpanProcessor) *Session {
	summary := NewSummary()
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSpanProcessor(NewBridge(summary)),
	}
	for _, p := range processors {
		opts = append(opts, sdktrace.WithSpanProcessor(p))
	}
	return &Session{
		provider: sdktrace.NewTracerProvider(opts...),
		summary:  summary,
	}
}

// Observer returns a task observer recording into this session.
func (s *Session) Observer(ctx context.Context) *Observer {
	return NewObserver(ctx, s.provider.Tracer(InstrumentationName))
}

// Summary returns the records collected so far.
func (s *Session) Summary() *Summary {
	return s.summary
}

// Shutdown flushes and stops the provider.
func (s *Session) Shutdown(ctx context.Context) error {
	return s.provider.Shutdown(ctx)
}
