// Package config provides the settings loader for box.
package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"go.trai.ch/box/internal/core/domain"
	"go.trai.ch/box/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	appDirName     = "box"
	configFileName = "config.yaml"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger

	getenv  func(string) string
	homeDir func() (string, error)
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:  logger,
		getenv:  os.Getenv,
		homeDir: os.UserHomeDir,
	}
}

// Load reads settings from path, or from the default location when path is empty.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	explicit := path != ""
	if !explicit {
		var err error
		if path, err = l.DefaultPath(); err != nil {
			// Without a home directory there is no default file to read.
			return domain.DefaultSettings(), nil //nolint:nilerr // defaults apply
		}
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path is chosen by the user
	if errors.Is(err, fs.ErrNotExist) {
		if explicit {
			return nil, zerr.With(domain.ErrConfigNotFound, "path", path)
		}
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	settings, err := l.resolve(&file)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return settings, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/box/config.yaml, falling back to ~/.config.
func (l *Loader) DefaultPath() (string, error) {
	if dir := l.getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appDirName, configFileName), nil
	}
	home, err := l.homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appDirName, configFileName), nil
}

// resolve overlays file on the defaults and validates the result.
func (l *Loader) resolve(file *File) (*domain.Settings, error) {
	s := domain.DefaultSettings()

	if file.Protocol.Prefix != nil {
		if !domain.ValidPrefix(*file.Protocol.Prefix) {
			return nil, zerr.With(domain.ErrInvalidPrefix, "prefix", *file.Protocol.Prefix)
		}
		s.Prefix = *file.Protocol.Prefix
	}

	if p := file.Probe.Attempts; p != nil {
		if *p <= 0 {
			return nil, zerr.With(domain.ErrInvalidAttempts, "attempts", strconv.Itoa(*p))
		}
		s.Probe.Attempts = *p
	}

	if p := file.Probe.Port; p != nil {
		if *p < 1 || *p > 65535 {
			return nil, zerr.With(domain.ErrInvalidPort, "port", strconv.Itoa(*p))
		}
		s.Probe.Port = *p
	}

	var err error
	if s.Probe.Delay, err = parseDuration("probe.delay", file.Probe.Delay, s.Probe.Delay); err != nil {
		return nil, err
	}
	if s.Probe.DialTimeout, err = parseDuration("probe.dialTimeout", file.Probe.DialTimeout, s.Probe.DialTimeout); err != nil {
		return nil, err
	}

	if mode := file.Output.Mode; mode != "" {
		if s.OutputMode, err = domain.ParseOutputMode(mode); err != nil {
			return nil, err
		}
	}

	s.UsePTY = file.Shell.PTY

	if file.SSH.User != "" {
		s.SSH.User = file.SSH.User
	}
	if file.SSH.Options != nil {
		s.SSH.Options = file.SSH.Options
		if len(file.SSH.Options) == 0 {
			l.Logger.Warn("ssh.options is empty, host key prompts may block provisioning")
		}
	}

	return s, nil
}

func parseDuration(field, raw string, fallback time.Duration) (time.Duration, error) {
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrInvalidDuration.Error()), "field", field)
	}
	if d <= 0 {
		return 0, zerr.With(zerr.With(domain.ErrInvalidDuration, "field", field), "value", raw)
	}
	return d, nil
}
