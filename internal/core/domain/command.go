package domain

import "io"

// Command is a subprocess invocation handed to the stream runner.
type Command struct {
	// Args is the command vector; Args[0] is the program.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Environment overrides entries of the inherited environment.
	Environment map[string]string
	// Stdin, when set, is copied to the process standard input.
	Stdin io.Reader
	// PTY runs the process attached to a pseudo-terminal.
	PTY bool
}
