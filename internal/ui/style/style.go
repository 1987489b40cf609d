// Package style provides shared UI styling primitives including brand colors
// and icons for consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Slate  = lipgloss.Color("#667085")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Cross   = "✗"
	Warning = "!"
)

// Narration markers for streamed remote tasks.
const (
	Antenna     = "📡"
	Hourglass   = "⏳"
	CheckMark   = "✅"
	Star        = "✴️"
	CrossMark   = "❌"
	Interrobang = "⁉️"
)
