// Package linear provides the status renderer for CI and other
// non-interactive outputs.
package linear

import (
	"io"
	"os"
	"sync"
	"time"
)

// Renderer implements ports.StatusRenderer for non-interactive outputs.
// Every status line is printed once, newline terminated, and never rewritten.
type Renderer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewRenderer creates a new linear Renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	return &Renderer{out: w}
}

// Show prints the status label.
func (r *Renderer) Show(label string, _ time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = io.WriteString(r.out, label+"\n")
}

// Clear is a no-op; linear output is never rewritten.
func (r *Renderer) Clear() {}
