package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// Runner runs external commands to completion.
type Runner interface {
	// Run executes name with args, streaming its output. A nonzero exit is
	// returned as *ExitError.
	Run(ctx context.Context, name string, args ...string) error

	// Output executes name with args and returns its captured stdout.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExitError reports an external command that exited with a nonzero status.
type ExitError struct {
	Cmd  string
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Cmd, e.Code)
}

// Exec runs commands with os/exec. The zero value streams to os.Stdout and
// os.Stderr and logs nothing.
type Exec struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger
}

// Run blocks until the child exits. There is no timeout; cancelling ctx
// kills the child and Run returns an error wrapping ctx.Err().
func (e *Exec) Run(ctx context.Context, name string, args ...string) error {
	cmd, err := e.command(ctx, name, args)
	if err != nil {
		return err
	}
	cmd.Stdout = e.stdout()
	cmd.Stderr = e.stderr()
	return e.wait(ctx, cmd, name, args)
}

// Output runs the command and returns stdout. Stderr is streamed.
func (e *Exec) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd, err := e.command(ctx, name, args)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = e.stderr()
	if err := e.wait(ctx, cmd, name, args); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (e *Exec) command(ctx context.Context, name string, args []string) (*exec.Cmd, error) {
	bin, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", name, err)
	}
	return exec.CommandContext(ctx, bin, args...), nil
}

func (e *Exec) wait(ctx context.Context, cmd *exec.Cmd, name string, args []string) error {
	line := CommandLine(name, args...)
	e.logger().Debug("running command", zap.String("cmd", line))

	err := cmd.Run()
	if err == nil {
		return nil
	}
	if ctx.Err() != nil {
		return fmt.Errorf("%s: %w", line, ctx.Err())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		e.logger().Debug("command failed", zap.String("cmd", line), zap.Int("code", exitErr.ExitCode()))
		return &ExitError{Cmd: line, Code: exitErr.ExitCode()}
	}
	return fmt.Errorf("executing %s: %w", line, err)
}

func (e *Exec) stdout() io.Writer {
	if e.Stdout == nil {
		return os.Stdout
	}
	return e.Stdout
}

func (e *Exec) stderr() io.Writer {
	if e.Stderr == nil {
		return os.Stderr
	}
	return e.Stderr
}

func (e *Exec) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

// CommandLine renders name and args as a single space-joined string for
// logs and error messages.
func CommandLine(name string, args ...string) string {
	return strings.Join(append([]string{name}, args...), " ")
}
