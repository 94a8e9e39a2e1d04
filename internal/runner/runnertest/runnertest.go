// Package runnertest provides a recording runner.Runner for tests.
package runnertest

import (
	"context"
	"strings"
	"sync"

	"github.com/beakerx-labs/beakerx-install/internal/runner"
)

// Call is one recorded invocation.
type Call struct {
	Name string
	Args []string
}

// Line returns the call as a space-joined command line.
func (c Call) Line() string { return runner.CommandLine(c.Name, c.Args...) }

// Recorder records every invocation instead of running it.
type Recorder struct {
	mu    sync.Mutex
	calls []Call

	// Hook runs during each call while the caller's state (temp dirs etc.)
	// is still live. Its error is returned from Run/Output.
	Hook func(ctx context.Context, c Call) error

	// Outputs maps a command-line prefix to the stdout returned by Output.
	Outputs map[string]string
}

var _ runner.Runner = (*Recorder)(nil)

func (r *Recorder) Run(ctx context.Context, name string, args ...string) error {
	return r.record(ctx, Call{Name: name, Args: append([]string(nil), args...)})
}

func (r *Recorder) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	c := Call{Name: name, Args: append([]string(nil), args...)}
	if err := r.record(ctx, c); err != nil {
		return nil, err
	}
	line := c.Line()
	for prefix, out := range r.Outputs {
		if strings.HasPrefix(line, prefix) {
			return []byte(out), nil
		}
	}
	return nil, nil
}

func (r *Recorder) record(ctx context.Context, c Call) error {
	r.mu.Lock()
	r.calls = append(r.calls, c)
	r.mu.Unlock()

	if r.Hook != nil {
		return r.Hook(ctx, c)
	}
	return nil
}

// Calls returns a copy of the recorded calls in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Lines returns the recorded calls as command lines.
func (r *Recorder) Lines() []string {
	var lines []string
	for _, c := range r.Calls() {
		lines = append(lines, c.Line())
	}
	return lines
}

// FailWhen returns a Hook that fails calls whose command line starts with
// prefix with a runner.ExitError carrying code.
func FailWhen(prefix string, code int) func(context.Context, Call) error {
	return func(_ context.Context, c Call) error {
		if strings.HasPrefix(c.Line(), prefix) {
			return &runner.ExitError{Cmd: c.Line(), Code: code}
		}
		return nil
	}
}
