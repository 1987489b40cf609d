// Package output builds the termenv outputs that narration and log
// records are written through.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorProfile returns the profile for the current environment.
// NO_COLOR selects Ascii, which drops colours but keeps cursor control.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates an output for w using ColorProfile. Nil selects os.Stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	return NewWithProfile(w, ColorProfile, opts...)
}

// NewWithProfile creates an output for w with the profile chosen by profileFn.
// The output always assumes a terminal: sequences such as ClearLine are
// written even to pipes, and callers decide whether to use them.
func NewWithProfile(w io.Writer, profileFn func() termenv.Profile, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	base := []termenv.OutputOption{
		termenv.WithProfile(profileFn()),
		termenv.WithTTY(true),
	}
	return termenv.NewOutput(w, append(base, opts...)...)
}
