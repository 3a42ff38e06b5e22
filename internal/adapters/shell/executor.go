// Package shell provides the shell executor adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/rerun/internal/core/domain"
	"go.trai.ch/zerr"
)

// Executor implements ports.Executor by running commands through the
// platform shell with inherited standard streams.
type Executor struct {
	shell  string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// Option configures an Executor.
type Option func(*Executor)

// WithStdio replaces the streams handed to the child process.
func WithStdio(stdin io.Reader, stdout, stderr io.Writer) Option {
	return func(e *Executor) {
		e.stdin = stdin
		e.stdout = stdout
		e.stderr = stderr
	}
}

// WithShell replaces the command interpreter.
func WithShell(shell string) Option {
	return func(e *Executor) {
		e.shell = shell
	}
}

// NewExecutor creates a new Executor using the parent's own streams.
func NewExecutor(opts ...Option) *Executor {
	e := &Executor{
		shell:  defaultShell(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run joins command into one line, runs it through the shell and waits for
// it to exit. The child is not bound to ctx; once started it runs to
// completion.
func (e *Executor) Run(_ context.Context, command []string) (int, error) {
	if len(command) == 0 {
		return 0, domain.ErrNoCommand
	}

	line := strings.Join(command, " ")

	cmd := newCommand(e.shell, line)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// -1 when the child was killed by a signal.
		return exitErr.ExitCode(), nil
	}

	return 0, zerr.With(zerr.Wrap(err, domain.ErrCommandLaunchFailed.Error()), "command", line)
}
