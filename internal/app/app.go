// Package app implements the application layer for box.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/box/internal/adapters/detector"
	"go.trai.ch/box/internal/adapters/linear"
	"go.trai.ch/box/internal/adapters/telemetry"
	"go.trai.ch/box/internal/adapters/tui"
	"go.trai.ch/box/internal/core/domain"
	"go.trai.ch/box/internal/core/ports"
	"go.trai.ch/box/internal/engine/narrator"
	"go.trai.ch/box/internal/engine/protocol"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	runner       ports.Runner
	prober       ports.Prober
	logger       ports.Logger

	stdout      io.Writer
	clock       clockwork.Clock
	interactive func(io.Writer) bool
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, runner ports.Runner, prober ports.Prober, log ports.Logger) *App {
	return &App{
		configLoader: loader,
		runner:       runner,
		prober:       prober,
		logger:       log,
		stdout:       os.Stdout,
		clock:        clockwork.NewRealClock(),
		interactive:  detector.IsInteractive,
	}
}

// WithOutput sets the writer narration goes to.
// This is primarily used for testing.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithClock sets the clock used for task timestamps and the status ticker.
// This is primarily used for testing.
func (a *App) WithClock(c clockwork.Clock) *App {
	a.clock = c
	return a
}

// WithInteractive overrides terminal detection.
func (a *App) WithInteractive(fn func(io.Writer) bool) *App {
	a.interactive = fn
	return a
}

// Options are the flags shared by every verb.
type Options struct {
	ConfigPath string
	OutputMode string
	Prefix     string
}

// StreamOptions configuration for the Stream method.
type StreamOptions struct {
	Options
	PTY bool
}

// WaitOptions configuration for the Wait method.
type WaitOptions struct {
	Options
	Port     int
	Attempts int
}

// ProvisionOptions configuration for the Provision method.
type ProvisionOptions struct {
	WaitOptions
	ScriptPath string
	User       string
	Summary    bool
}

// Stream runs a local command and narrates its task stream.
func (a *App) Stream(ctx context.Context, args []string, opts StreamOptions) error {
	if len(args) == 0 {
		return domain.ErrEmptyCommand
	}

	settings, err := a.settings(opts.Options)
	if err != nil {
		return err
	}

	cmd := domain.Command{Args: args, PTY: settings.UsePTY || opts.PTY}
	return a.narrate(ctx, settings, cmd)
}

// Wait blocks until host accepts connections or the probe budget is spent.
func (a *App) Wait(ctx context.Context, host string, opts WaitOptions) error {
	if host == "" {
		return domain.ErrMissingHost
	}

	settings, err := a.settings(opts.Options)
	if err != nil {
		return err
	}

	return a.wait(ctx, host, probeSettings(settings.Probe, opts))
}

// Provision waits for host and runs the script there over SSH, narrating its output.
func (a *App) Provision(ctx context.Context, host string, opts ProvisionOptions) error {
	if host == "" {
		return domain.ErrMissingHost
	}
	if opts.ScriptPath == "" {
		return domain.ErrMissingScript
	}

	settings, err := a.settings(opts.Options)
	if err != nil {
		return err
	}
	if opts.User != "" {
		settings.SSH.User = opts.User
	}

	script, err := os.Open(opts.ScriptPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrScriptReadFailed.Error()), "path", opts.ScriptPath)
	}
	defer func() { _ = script.Close() }()

	if err := a.wait(ctx, host, probeSettings(settings.Probe, opts.WaitOptions)); err != nil {
		return err
	}

	session := telemetry.NewSession()
	defer func() { _ = session.Shutdown(context.WithoutCancel(ctx)) }()

	cmd := domain.Command{
		Args:  sshArgs(settings.SSH, host),
		Stdin: script,
	}
	err = a.narrate(ctx, settings, cmd, narrator.WithObserver(session.Observer(ctx)))

	if opts.Summary {
		for _, line := range session.Summary().Lines() {
			a.logger.Info(line)
		}
	}
	return err
}

func (a *App) settings(opts Options) (*domain.Settings, error) {
	settings, err := a.configLoader.Load(opts.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if opts.OutputMode != "" {
		if settings.OutputMode, err = domain.ParseOutputMode(opts.OutputMode); err != nil {
			return nil, err
		}
	}
	if opts.Prefix != "" {
		if !domain.ValidPrefix(opts.Prefix) {
			return nil, zerr.With(domain.ErrInvalidPrefix, "prefix", opts.Prefix)
		}
		settings.Prefix = opts.Prefix
	}
	return settings, nil
}

func (a *App) wait(ctx context.Context, host string, settings domain.ProbeSettings) error {
	a.logger.Info(fmt.Sprintf("waiting for %s to accept connections", host))

	res := a.prober.Wait(ctx, host, settings)
	if !res.Reachable {
		return errors.Join(
			domain.ErrHostUnreachable,
			zerr.With(zerr.New("probe budget exhausted"), "attempts", strconv.Itoa(res.Attempts)),
			res.LastErr,
		)
	}

	a.logger.Info(fmt.Sprintf("%s is reachable after %d attempt(s)", host, res.Attempts))
	return nil
}

// narrate runs cmd through a fresh decoder and ends the stream with the
// process outcome.
func (a *App) narrate(ctx context.Context, settings *domain.Settings, cmd domain.Command, opts ...narrator.Option) error {
	status := a.statusRenderer(settings.OutputMode)
	opts = append([]narrator.Option{narrator.WithClock(a.clock)}, opts...)
	dec := narrator.New(protocol.New(settings.Prefix), a.stdout, status, opts...)

	code, err := a.runner.Run(ctx, cmd, dec.HandleLine)
	dec.HandleEnd(err == nil && code == 0)

	if err != nil {
		return err
	}
	if code != 0 {
		return errors.Join(domain.ErrRemoteCommandFailed, zerr.With(zerr.New("command exited with non-zero status"), "exit_code", strconv.Itoa(code)))
	}
	return nil
}

func (a *App) statusRenderer(mode domain.OutputMode) ports.StatusRenderer {
	if detector.ResolveMode(a.interactive(a.stdout), mode) == domain.OutputModeAnimated {
		return tui.NewRenderer(a.stdout, tui.WithClock(a.clock))
	}
	return linear.NewRenderer(a.stdout)
}

func probeSettings(base domain.ProbeSettings, opts WaitOptions) domain.ProbeSettings {
	if opts.Port > 0 {
		base.Port = opts.Port
	}
	if opts.Attempts > 0 {
		base.Attempts = opts.Attempts
	}
	return base
}

// sshArgs builds `ssh [options] user@host bash -s`, reading the script from stdin.
func sshArgs(s domain.SSHSettings, host string) []string {
	user := s.User
	if user == "" {
		user = domain.DefaultSSHUser
	}
	args := make([]string, 0, len(s.Options)+4)
	args = append(args, "ssh")
	args = append(args, s.Options...)
	return append(args, user+"@"+host, "bash", "-s")
}
