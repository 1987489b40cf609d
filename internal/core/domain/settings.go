package domain

import (
	"time"

	"go.trai.ch/zerr"
)

// OutputMode selects how task status lines are rendered.
type OutputMode string

const (
	// OutputModeAuto animates status lines only on an interactive terminal.
	OutputModeAuto OutputMode = "auto"
	// OutputModeAnimated always rewrites the status line in place.
	OutputModeAnimated OutputMode = "animated"
	// OutputModePlain prints each status line once, newline terminated.
	OutputModePlain OutputMode = "plain"
)

// ParseOutputMode validates raw as an output mode. "ci" is accepted as an
// alias for plain.
func ParseOutputMode(raw string) (OutputMode, error) {
	switch mode := OutputMode(raw); mode {
	case OutputModeAuto, OutputModeAnimated, OutputModePlain:
		return mode, nil
	case "ci":
		return OutputModePlain, nil
	default:
		return "", zerr.With(ErrInvalidOutputMode, "mode", raw)
	}
}

// Default settings values.
const (
	DefaultPrefix           = "TASK"
	DefaultProbeAttempts    = 20
	DefaultProbeDelay       = time.Second
	DefaultProbePort        = 22
	DefaultProbeDialTimeout = 3 * time.Second
	DefaultSSHUser          = "root"
)

// ProbeSettings configures the connectivity retry loop.
type ProbeSettings struct {
	Attempts    int
	Delay       time.Duration
	Port        int
	DialTimeout time.Duration
}

// SSHSettings configures how the provisioning script reaches the host.
type SSHSettings struct {
	User    string
	Options []string
}

// Settings is the resolved configuration of a box invocation.
type Settings struct {
	Prefix     string
	Probe      ProbeSettings
	OutputMode OutputMode
	UsePTY     bool
	SSH        SSHSettings
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() *Settings {
	return &Settings{
		Prefix: DefaultPrefix,
		Probe: ProbeSettings{
			Attempts:    DefaultProbeAttempts,
			Delay:       DefaultProbeDelay,
			Port:        DefaultProbePort,
			DialTimeout: DefaultProbeDialTimeout,
		},
		OutputMode: OutputModeAuto,
		SSH: SSHSettings{
			User:    DefaultSSHUser,
			Options: []string{"-o", "StrictHostKeyChecking=no", "-o", "BatchMode=yes"},
		},
	}
}
