package protocol

import "go.trai.ch/box/internal/ui/style"

// Glyphs are the markers that decorate narration lines.
type Glyphs struct {
	Banner     string
	Running    string
	Done       string
	DoneErrors string
	Error      string
	Unexpected string
}

// DefaultGlyphs returns the emoji markers used on capable terminals.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Banner:     style.Antenna,
		Running:    style.Hourglass,
		Done:       style.CheckMark,
		DoneErrors: style.Star,
		Error:      style.CrossMark,
		Unexpected: style.Interrobang,
	}
}
