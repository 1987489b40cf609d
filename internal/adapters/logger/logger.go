// Package logger implements the notification sink on top of log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

// messager is an error that reports its own message without the wrapped chain.
// zerr errors implement it.
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu       sync.RWMutex
	logger   *slog.Logger
	output   io.Writer
	jsonMode bool
	level    slog.Level
}

// Option configures a Logger.
type Option func(*Logger)

// WithOutput sets the destination. Nil selects os.Stderr.
func WithOutput(w io.Writer) Option {
	return func(l *Logger) { l.output = w }
}

// WithJSON selects JSON records instead of the pretty handler.
func WithJSON(enable bool) Option {
	return func(l *Logger) { l.jsonMode = enable }
}

// WithLevel sets the minimum level that is emitted.
func WithLevel(level slog.Level) Option {
	return func(l *Logger) { l.level = level }
}

// New creates a Logger writing pretty records to stderr unless configured otherwise.
func New(opts ...Option) *Logger {
	l := &Logger{level: slog.LevelInfo}
	for _, opt := range opts {
		opt(l)
	}
	l.rebuild()
	return l
}

// SetOutput redirects the logger while keeping its mode.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
	l.rebuild()
}

// SetJSON toggles JSON records while keeping the destination.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.jsonMode = enable
	l.rebuild()
}

// rebuild replaces the slog handler. Callers hold mu, except New.
func (l *Logger) rebuild() {
	if l.output == nil {
		l.output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: l.level}

	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(l.output, opts)
	} else {
		handler = NewPrettyHandler(l.output, opts)
	}
	l.logger = slog.New(handler)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs err. In pretty mode the wrapped chain is rendered as a
// "Caused by" list, one entry per zerr layer.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err)
		return
	}

	l.logger.Error(formatErrorEntries(collectErrorEntries(err)))
}

// collectErrorEntries walks err and returns one message per layer.
// Joined errors are expanded in order. A non-zerr error ends its branch
// with its full text.
func collectErrorEntries(err error) []string {
	var entries []string

	for err != nil {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, e := range joined.Unwrap() {
				entries = append(entries, collectErrorEntries(e)...)
			}
			return entries
		}

		m, ok := err.(messager)
		if !ok {
			return append(entries, err.Error())
		}
		entries = append(entries, m.Message())
		err = errors.Unwrap(err)
	}

	return entries
}

// formatErrorEntries lays out entries as a headline followed by its causes.
func formatErrorEntries(entries []string) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	for i, entry := range entries {
		first, rest, _ := strings.Cut(entry, "\n")
		var lead, indent string
		switch i {
		case 0:
			lead, indent = "Error: ", "       "
		case 1:
			b.WriteString("\n\n  Caused by:")
			fallthrough
		default:
			lead, indent = "    → ", "      "
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(lead + first)
		for _, line := range strings.Split(rest, "\n") {
			if line == "" {
				continue
			}
			b.WriteString("\n" + indent + line)
		}
	}
	return b.String()
}
