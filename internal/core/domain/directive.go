package domain

import "strings"

// DirectiveKind classifies a single line of the task stream.
type DirectiveKind int

const (
	// DirectiveData is any line that is not a protocol directive.
	DirectiveData DirectiveKind = iota
	// DirectiveStart begins a named task.
	DirectiveStart
	// DirectiveError reports a non-fatal error for the active task.
	DirectiveError
	// DirectiveFinish successfully ends the active task.
	DirectiveFinish
)

// String returns the string representation of the DirectiveKind.
func (k DirectiveKind) String() string {
	switch k {
	case DirectiveStart:
		return "start"
	case DirectiveError:
		return "error"
	case DirectiveFinish:
		return "finish"
	default:
		return "data"
	}
}

// Directive is a parsed task stream line.
// Text holds the task name for Start, the message for Error, nothing for
// Finish and the raw line (trailing newline included) for Data.
type Directive struct {
	Kind DirectiveKind
	Text string
}

const (
	separator    = "::"
	startMarker  = "START" + separator
	errorMarker  = "ERROR" + separator
	finishMarker = "FINISH"
)

// ParseDirective classifies line against the given protocol prefix.
// The match is anchored at line start and runs to line end; the line
// terminator is not part of it.
func ParseDirective(prefix, line string) Directive {
	body := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")

	rest, ok := strings.CutPrefix(body, prefix+separator)
	if !ok || prefix == "" {
		return Directive{Kind: DirectiveData, Text: line}
	}

	switch {
	case rest == finishMarker:
		return Directive{Kind: DirectiveFinish}
	case strings.HasPrefix(rest, startMarker) && len(rest) > len(startMarker):
		return Directive{Kind: DirectiveStart, Text: rest[len(startMarker):]}
	case strings.HasPrefix(rest, errorMarker) && len(rest) > len(errorMarker):
		return Directive{Kind: DirectiveError, Text: rest[len(errorMarker):]}
	default:
		return Directive{Kind: DirectiveData, Text: line}
	}
}

// ValidPrefix reports whether prefix can serve as a protocol prefix.
func ValidPrefix(prefix string) bool {
	return prefix != "" &&
		!strings.Contains(prefix, separator) &&
		!strings.ContainsAny(prefix, "\r\n")
}
