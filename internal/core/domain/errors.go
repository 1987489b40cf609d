package domain

import "go.trai.ch/zerr"

var (
	// ErrEmptyCommand is returned when a command vector has no program to run.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrProcessStartFailed is returned when a subprocess cannot be started.
	ErrProcessStartFailed = zerr.New("failed to start process")

	// ErrProcessWaitFailed is returned when a started subprocess cannot be reaped.
	ErrProcessWaitFailed = zerr.New("failed to wait for process")

	// ErrRemoteCommandFailed is returned when a streamed command exits with a non-zero status.
	ErrRemoteCommandFailed = zerr.New("remote command failed")

	// ErrHostUnreachable is returned when the connectivity probe exhausts its attempts.
	ErrHostUnreachable = zerr.New("host is unreachable")

	// ErrMissingHost is returned when a command needs a target host and none was given.
	ErrMissingHost = zerr.New("no host specified")

	// ErrMissingScript is returned when provisioning is requested without a script.
	ErrMissingScript = zerr.New("no provisioning script specified")

	// ErrScriptReadFailed is returned when the provisioning script cannot be opened.
	ErrScriptReadFailed = zerr.New("failed to read provisioning script")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when an explicitly requested config file does not exist.
	ErrConfigNotFound = zerr.New("config file not found")

	// ErrInvalidPrefix is returned when the protocol prefix is empty or contains a separator.
	ErrInvalidPrefix = zerr.New("invalid protocol prefix")

	// ErrInvalidDuration is returned when a duration field cannot be parsed or is not positive.
	ErrInvalidDuration = zerr.New("invalid duration")

	// ErrInvalidAttempts is returned when the probe attempt budget is not positive.
	ErrInvalidAttempts = zerr.New("probe attempts must be positive")

	// ErrInvalidPort is returned when the probe port is outside 1..65535.
	ErrInvalidPort = zerr.New("probe port must be between 1 and 65535")

	// ErrInvalidOutputMode is returned when the output mode is not one of auto, animated, plain or ci.
	ErrInvalidOutputMode = zerr.New("invalid output mode, expected 'auto', 'animated', 'plain' or 'ci'")
)
