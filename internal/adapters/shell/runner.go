// Package shell provides the subprocess runner that streams merged output.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/creack/pty"
	"go.trai.ch/box/internal/core/domain"
	"go.trai.ch/box/internal/core/ports"
	"go.trai.ch/box/internal/engine/lines"
	"golang.org/x/sync/errgroup"
)

// drainDelay bounds how long output is still read after the command exits,
// for descendants that keep its descriptors open.
const drainDelay = 250 * time.Millisecond

// Runner implements ports.Runner using os/exec.
// Commands with PTY set run under a pseudo-terminal, which merges stdout
// and stderr at the source and makes remote tools behave as if interactive.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run executes cmd and streams its merged output to onLine.
// A trailing partial line is delivered before Run returns.
func (r *Runner) Run(ctx context.Context, cmd domain.Command, onLine ports.LineFunc) (int, error) {
	if len(cmd.Args) == 0 {
		return -1, domain.ErrEmptyCommand
	}

	c := r.command(ctx, cmd)

	if cmd.PTY {
		return r.runPTY(c, onLine)
	}
	return r.runPipes(c, onLine)
}

func (r *Runner) command(ctx context.Context, cmd domain.Command) *exec.Cmd {
	name := cmd.Args[0]
	env := resolveEnvironment(os.Environ(), cmd.Environment)

	// Resolve the executable against the merged environment's PATH.
	executable := name
	if !filepath.IsAbs(name) && !strings.ContainsRune(name, filepath.Separator) {
		if lp, err := lookPath(name, env); err == nil {
			executable = lp
		}
	}

	c := exec.CommandContext(ctx, executable, cmd.Args[1:]...) //nolint:gosec // user provided command

	// Keep the name as invoked in Args[0].
	c.Args[0] = name
	c.Dir = cmd.Dir
	c.Env = env
	c.Stdin = cmd.Stdin
	return c
}

// runPipes pumps stdout and stderr concurrently into one reassembler. Once
// the process is reaped the pumps get drainDelay to reach end of file.
func (r *Runner) runPipes(c *exec.Cmd, onLine ports.LineFunc) (int, error) {
	var readers, writers []*os.File
	defer func() { closeFiles(readers) }()
	for range 2 {
		pr, pw, err := os.Pipe()
		if err != nil {
			closeFiles(writers)
			return -1, errors.Join(domain.ErrProcessStartFailed, err)
		}
		readers = append(readers, pr)
		writers = append(writers, pw)
	}
	c.Stdout, c.Stderr = writers[0], writers[1]

	err := c.Start()
	// The child holds its own copies of the write ends.
	closeFiles(writers)
	if err != nil {
		return -1, errors.Join(domain.ErrProcessStartFailed, err)
	}

	merged := lines.New(onLine)

	var g errgroup.Group
	for _, src := range readers {
		g.Go(func() error {
			return pump(merged, src)
		})
	}

	waitErr := c.Wait()
	for _, src := range readers {
		_ = src.SetReadDeadline(time.Now().Add(drainDelay))
	}
	if err := g.Wait(); err != nil {
		r.logger.Warn("output stream interrupted: " + err.Error())
	}
	_ = merged.Close()

	return exitCode(waitErr)
}

// runPTY runs the command attached to a pseudo-terminal. The PTY merges
// both output descriptors and translates newlines to CRLF, which is undone
// here. A command Stdin stays a pipe; otherwise the terminal is the input.
func (r *Runner) runPTY(c *exec.Cmd, onLine ports.LineFunc) (int, error) {
	ptmx, err := pty.Start(c)
	if err != nil {
		return -1, errors.Join(domain.ErrProcessStartFailed, err)
	}
	defer func() { _ = ptmx.Close() }()

	merged := lines.New(func(line string) {
		if trimmed, ok := strings.CutSuffix(line, "\r\n"); ok {
			line = trimmed + "\n"
		}
		onLine(line)
	})

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		// Reading the PTY master fails with EIO once the child exits.
		_ = pump(merged, ptmx)
	}()

	waitErr := c.Wait()
	_ = ptmx.SetReadDeadline(time.Now().Add(drainDelay))
	<-ioDone
	_ = merged.Close()

	return exitCode(waitErr)
}

// pump copies src into dst until end of file or the drain deadline.
func pump(dst io.Writer, src *os.File) error {
	_, err := io.Copy(dst, src)
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return nil
	}
	return err
}

func closeFiles(files []*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}

// exitCode maps the result of Wait to an exit status. Only failures that
// prevent reading a status are returned as errors.
func exitCode(err error) (int, error) {
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			return 128 + int(status.Signal()), nil
		}
		return exitErr.ExitCode(), nil
	}

	return -1, errors.Join(domain.ErrProcessWaitFailed, err)
}

// resolveEnvironment merges overrides over the inherited system environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	order := make([]string, 0, len(sysEnv)+len(overrides))

	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	for k, v := range overrides {
		if _, seen := envMap[k]; !seen {
			order = append(order, k)
		}
		envMap[k] = v
	}

	result := make([]string, 0, len(order))
	for _, k := range order {
		result = append(result, k+"="+envMap[k])
	}
	return result
}

// lookPath searches for an executable in the directories named by the PATH environment variable.
func lookPath(file string, env []string) (string, error) {
	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		path := filepath.Join(dir, file)
		if err := findExecutable(path); err == nil {
			return path, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
