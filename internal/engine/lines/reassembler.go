// Package lines reassembles newline-terminated lines from chunked byte streams.
package lines

import (
	"bytes"
	"sync"
)

// Reassembler accumulates raw chunks and emits every complete line, newline
// included, to its consumer in arrival order. It implements io.WriteCloser
// and is safe for concurrent use, so several sources (for example the stdout
// and stderr of one process) can share it. Lines from different sources are
// ordered by arrival only.
type Reassembler struct {
	mu     sync.Mutex
	emit   func(line string)
	carry  []byte
	closed bool
}

// New creates a Reassembler that delivers lines to emit.
func New(emit func(line string)) *Reassembler {
	return &Reassembler{emit: emit}
}

// Write appends p to the carry buffer and emits every line it completes.
// Writes after Close are discarded.
func (r *Reassembler) Write(p []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return len(p), nil
	}

	r.carry = append(r.carry, p...)

	for {
		i := bytes.IndexByte(r.carry, '\n')
		if i < 0 {
			break
		}

		line := string(r.carry[:i+1])
		r.carry = r.carry[i+1:]
		r.emit(line)
	}

	// Reclaim the consumed prefix once the carry is drained.
	if len(r.carry) == 0 {
		r.carry = nil
	}

	return len(p), nil
}

// Close emits the unterminated remainder, if any, as a final line.
// Closing more than once is a no-op.
func (r *Reassembler) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	if len(r.carry) > 0 {
		line := string(r.carry)
		r.carry = nil
		r.emit(line)
	}
	return nil
}
