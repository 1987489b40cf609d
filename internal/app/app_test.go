package app_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/box/internal/app"
	"go.trai.ch/box/internal/core/domain"
	"go.trai.ch/box/internal/core/ports"
	"go.trai.ch/box/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

type fixture struct {
	loader *mocks.MockConfigLoader
	runner *mocks.MockRunner
	prober *mocks.MockProber
	logger *mocks.MockLogger
	out    *bytes.Buffer
	app    *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader: mocks.NewMockConfigLoader(ctrl),
		runner: mocks.NewMockRunner(ctrl),
		prober: mocks.NewMockProber(ctrl),
		logger: mocks.NewMockLogger(ctrl),
		out:    &bytes.Buffer{},
	}
	f.app = app.New(f.loader, f.runner, f.prober, f.logger).
		WithOutput(f.out).
		WithClock(clockwork.NewFakeClockAt(t0)).
		WithInteractive(func(io.Writer) bool { return false })
	return f
}

// emitting returns a Run implementation that streams lines and exits with code.
func emitting(code int, lines ...string) func(context.Context, domain.Command, ports.LineFunc) (int, error) {
	return func(_ context.Context, _ domain.Command, onLine ports.LineFunc) (int, error) {
		for _, l := range lines {
			onLine(l)
		}
		return code, nil
	}
}

func TestApp_Stream(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.loader.EXPECT().Load("").Return(domain.DefaultSettings(), nil)
	f.runner.EXPECT().
		Run(gomock.Any(), domain.Command{Args: []string{"sh", "-c", "true"}}, gomock.Any()).
		DoAndReturn(emitting(0, "TASK::START::build\n", "compiling\n", "TASK::FINISH\n"))

	err := f.app.Stream(context.Background(), []string{"sh", "-c", "true"}, app.StreamOptions{})
	require.NoError(t, err)

	assert.Equal(t, "⏳ Currently: build\n✅ Completed: build (0s)\n", f.out.String())
}

func TestApp_StreamFlagsOverrideSettings(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.loader.EXPECT().Load("/etc/box.yaml").Return(domain.DefaultSettings(), nil)
	f.runner.EXPECT().
		Run(gomock.Any(), domain.Command{Args: []string{"make"}, PTY: true}, gomock.Any()).
		DoAndReturn(emitting(0, "STEP::START::lint\n", "TASK::START::ignored\n"))

	err := f.app.Stream(context.Background(), []string{"make"}, app.StreamOptions{
		Options: app.Options{ConfigPath: "/etc/box.yaml", Prefix: "STEP", OutputMode: "plain"},
		PTY:     true,
	})
	require.NoError(t, err)

	assert.Equal(t, "⏳ Currently: lint\n✅ Completed: lint (0s)\n", f.out.String())
}

func TestApp_StreamCIModeIsPlain(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.app.WithInteractive(func(io.Writer) bool { return true })

	f.loader.EXPECT().Load("").Return(domain.DefaultSettings(), nil)
	f.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(emitting(0, "TASK::START::build\n", "TASK::FINISH\n"))

	err := f.app.Stream(context.Background(), []string{"make"}, app.StreamOptions{
		Options: app.Options{OutputMode: "ci"},
	})
	require.NoError(t, err)

	assert.Equal(t, "⏳ Currently: build\n✅ Completed: build (0s)\n", f.out.String())
}

func TestApp_StreamNonZeroExit(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.loader.EXPECT().Load("").Return(domain.DefaultSettings(), nil)
	f.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(emitting(2, "TASK::START::deploy\n", "permission denied\n"))

	err := f.app.Stream(context.Background(), []string{"deploy"}, app.StreamOptions{})
	require.ErrorIs(t, err, domain.ErrRemoteCommandFailed)

	assert.Equal(t, "⏳ Currently: deploy\npermission denied\n❌ Failed: deploy\n", f.out.String())
}

func TestApp_StreamStartFailure(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.loader.EXPECT().Load("").Return(domain.DefaultSettings(), nil)
	f.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(-1, domain.ErrProcessStartFailed)

	err := f.app.Stream(context.Background(), []string{"missing"}, app.StreamOptions{})
	require.ErrorIs(t, err, domain.ErrProcessStartFailed)

	assert.Equal(t, "❌ Failed: process failure\n", f.out.String())
}

func TestApp_StreamValidation(t *testing.T) {
	t.Parallel()

	t.Run("empty command", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		require.ErrorIs(t, f.app.Stream(context.Background(), nil, app.StreamOptions{}), domain.ErrEmptyCommand)
	})

	t.Run("config error", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.loader.EXPECT().Load("bad.yaml").Return(nil, domain.ErrConfigParseFailed)

		err := f.app.Stream(context.Background(), []string{"x"}, app.StreamOptions{Options: app.Options{ConfigPath: "bad.yaml"}})
		require.ErrorContains(t, err, "failed to load configuration")
	})

	t.Run("invalid prefix flag", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.loader.EXPECT().Load("").Return(domain.DefaultSettings(), nil)

		err := f.app.Stream(context.Background(), []string{"x"}, app.StreamOptions{Options: app.Options{Prefix: "A::B"}})
		require.ErrorContains(t, err, domain.ErrInvalidPrefix.Error())
	})

	t.Run("unknown output mode", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.loader.EXPECT().Load("").Return(domain.DefaultSettings(), nil)

		err := f.app.Stream(context.Background(), []string{"x"}, app.StreamOptions{Options: app.Options{OutputMode: "bogus"}})
		require.ErrorContains(t, err, domain.ErrInvalidOutputMode.Error())
	})
}

func TestApp_Wait(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	want := domain.DefaultSettings().Probe
	want.Port = 2222

	f.loader.EXPECT().Load("").Return(domain.DefaultSettings(), nil)
	f.logger.EXPECT().Info("waiting for 203.0.113.7 to accept connections")
	f.logger.EXPECT().Info("203.0.113.7 is reachable after 4 attempt(s)")
	f.prober.EXPECT().Wait(gomock.Any(), "203.0.113.7", want).
		Return(ports.ProbeResult{Reachable: true, Attempts: 4})

	err := f.app.Wait(context.Background(), "203.0.113.7", app.WaitOptions{Port: 2222})
	require.NoError(t, err)
}

func TestApp_WaitUnreachable(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	lastErr := errors.New("connection refused")

	f.loader.EXPECT().Load("").Return(domain.DefaultSettings(), nil)
	f.logger.EXPECT().Info(gomock.Any())
	f.prober.EXPECT().Wait(gomock.Any(), "203.0.113.7", gomock.Any()).
		Return(ports.ProbeResult{Attempts: 20, LastErr: lastErr})

	err := f.app.Wait(context.Background(), "203.0.113.7", app.WaitOptions{})
	require.ErrorIs(t, err, domain.ErrHostUnreachable)
	require.ErrorIs(t, err, lastErr)
}

func TestApp_WaitMissingHost(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	require.ErrorIs(t, f.app.Wait(context.Background(), "", app.WaitOptions{}), domain.ErrMissingHost)
}

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "setup.sh")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestApp_Provision(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	script := writeScript(t, "echo TASK::START::frobulate\n")

	f.loader.EXPECT().Load("").Return(domain.DefaultSettings(), nil)
	f.logger.EXPECT().Info("waiting for 203.0.113.7 to accept connections")
	f.logger.EXPECT().Info("203.0.113.7 is reachable after 1 attempt(s)")
	f.logger.EXPECT().Info("frobulate: 1 error in 0s")
	f.prober.EXPECT().Wait(gomock.Any(), "203.0.113.7", gomock.Any()).
		Return(ports.ProbeResult{Reachable: true, Attempts: 1})

	f.runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cmd domain.Command, onLine ports.LineFunc) (int, error) {
			assert.Equal(t, []string{
				"ssh", "-o", "StrictHostKeyChecking=no", "-o", "BatchMode=yes",
				"admin@203.0.113.7", "bash", "-s",
			}, cmd.Args)
			assert.False(t, cmd.PTY)

			require.NotNil(t, cmd.Stdin)
			body, err := io.ReadAll(cmd.Stdin)
			require.NoError(t, err)
			assert.Equal(t, "echo TASK::START::frobulate\n", string(body))

			onLine("TASK::START::frobulate\n")
			onLine("TASK::ERROR::it broke\n")
			onLine("TASK::FINISH\n")
			return 0, nil
		})

	err := f.app.Provision(context.Background(), "203.0.113.7", app.ProvisionOptions{
		ScriptPath: script,
		User:       "admin",
		Summary:    true,
	})
	require.NoError(t, err)

	assert.Equal(t,
		"⏳ Currently: frobulate\n"+
			"    ❌ it broke\n"+
			"⏳ Currently: frobulate\n"+
			"✴️ Completed: frobulate (0s) with errors\n",
		f.out.String())
}

func TestApp_ProvisionUnreachableSkipsScript(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.loader.EXPECT().Load("").Return(domain.DefaultSettings(), nil)
	f.logger.EXPECT().Info(gomock.Any())
	f.prober.EXPECT().Wait(gomock.Any(), "203.0.113.7", gomock.Any()).
		Return(ports.ProbeResult{Attempts: 20})

	err := f.app.Provision(context.Background(), "203.0.113.7", app.ProvisionOptions{
		ScriptPath: writeScript(t, "true\n"),
	})
	require.ErrorIs(t, err, domain.ErrHostUnreachable)
	assert.Empty(t, f.out.String())
}

func TestApp_ProvisionValidation(t *testing.T) {
	t.Parallel()

	t.Run("missing host", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		err := f.app.Provision(context.Background(), "", app.ProvisionOptions{ScriptPath: "x"})
		require.ErrorIs(t, err, domain.ErrMissingHost)
	})

	t.Run("missing script flag", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		err := f.app.Provision(context.Background(), "203.0.113.7", app.ProvisionOptions{})
		require.ErrorIs(t, err, domain.ErrMissingScript)
	})

	t.Run("unreadable script", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.loader.EXPECT().Load("").Return(domain.DefaultSettings(), nil)

		err := f.app.Provision(context.Background(), "203.0.113.7", app.ProvisionOptions{
			ScriptPath: filepath.Join(t.TempDir(), "absent.sh"),
		})
		require.ErrorContains(t, err, domain.ErrScriptReadFailed.Error())
	})
}
