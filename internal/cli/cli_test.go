package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/beakerx-labs/beakerx-install/internal/config"
	"github.com/beakerx-labs/beakerx-install/internal/runner"
	"github.com/beakerx-labs/beakerx-install/internal/runner/runnertest"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const template = `{"argv": ["java", "-cp", "__PATH__", "{connection_file}"], "display_name": "K", "language": "k"}`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

// newBundle lays out kernels {base, python3, scala} and the custom assets.
func newBundle(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "kernel", "base", "lib", "base.jar"), "")
	for _, k := range []string{"python3", "scala"} {
		writeFile(t, filepath.Join(root, "kernel", k, "kernel.json"), template)
		writeFile(t, filepath.Join(root, "kernel", k, "lib", k+".jar"), "")
	}
	writeFile(t, filepath.Join(root, "custom", "fonts", "Lato.woff"), "lato")
	writeFile(t, filepath.Join(root, "custom", "custom.css"), "css")
	return root
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func useRecorder(t *testing.T, rec *runnertest.Recorder) {
	t.Helper()
	orig := newRunner
	newRunner = func(_, _ io.Writer, _ *zap.Logger) runner.Runner { return rec }
	t.Cleanup(func() { newRunner = orig })
}

func executeCommand(ctx context.Context, t *testing.T, args ...string) (string, error) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	config.Reset()
	t.Cleanup(config.Reset)
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(ctx)
	return out.String(), err
}

func TestInstall_EndToEnd(t *testing.T) {
	res := newBundle(t)
	prefix := t.TempDir()
	rec := &runnertest.Recorder{}
	useRecorder(t, rec)

	out, err := executeCommand(context.Background(), t,
		"--resources", res, "--prefix", prefix, "--python-version", "3.11")
	if err != nil {
		t.Fatalf("install failed: %v\n%s", err, out)
	}
	if code := ExitCode(context.Background(), err); code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}

	lines := rec.Lines()
	if len(lines) != 4 {
		t.Fatalf("expected 4 commands, got %d:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	registered := 0
	for _, l := range lines {
		if strings.HasPrefix(l, "jupyter kernelspec install --sys-prefix --replace --name ") {
			registered++
		}
		if strings.Contains(l, "--name base") {
			t.Errorf("base registered: %s", l)
		}
	}
	if registered != 2 {
		t.Errorf("registered %d kernels, want 2", registered)
	}

	dest := filepath.Join(prefix, "lib", "python3.11", "site-packages", "notebook", "static", "custom")
	for _, p := range []string{filepath.Join(dest, "fonts", "Lato.woff"), filepath.Join(dest, "custom.css")} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("missing %s: %v", p, err)
		}
	}
	if !strings.Contains(out, "✓ kernel: scala") {
		t.Errorf("missing progress output:\n%s", out)
	}
}

func TestInstall_PrefixFromEnv(t *testing.T) {
	res := newBundle(t)
	prefix := t.TempDir()
	rec := &runnertest.Recorder{}
	useRecorder(t, rec)
	t.Setenv("BEAKERX_PREFIX", prefix)
	t.Setenv("BEAKERX_PYTHON_VERSION", "3.9")

	if out, err := executeCommand(context.Background(), t, "--resources", res); err != nil {
		t.Fatalf("install failed: %v\n%s", err, out)
	}
	css := filepath.Join(prefix, "lib", "python3.9", "site-packages", "notebook", "static", "custom", "custom.css")
	if _, err := os.Stat(css); err != nil {
		t.Errorf("stylesheet not installed under env prefix: %v", err)
	}
}

func TestInstall_ExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		failOn   string
		status   int
		wantCode int
	}{
		{"extension failure", "jupyter nbextension install", 1, 1},
		{"kernel failure propagates status", "jupyter kernelspec install", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := newBundle(t)
			prefix := t.TempDir()
			rec := &runnertest.Recorder{Hook: runnertest.FailWhen(tt.failOn, tt.status)}
			useRecorder(t, rec)

			_, err := executeCommand(context.Background(), t,
				"--resources", res, "--prefix", prefix, "--python-version", "3.11")
			if code := ExitCode(context.Background(), err); code != tt.wantCode {
				t.Errorf("exit code = %d, want %d (err: %v)", code, tt.wantCode, err)
			}
			if entries, _ := os.ReadDir(prefix); len(entries) != 0 {
				t.Error("assets installed after a failed step")
			}
		})
	}
}

func TestInstall_ExtensionFailureSkipsKernels(t *testing.T) {
	rec := &runnertest.Recorder{Hook: runnertest.FailWhen("jupyter nbextension", 1)}
	useRecorder(t, rec)

	_, err := executeCommand(context.Background(), t,
		"--resources", newBundle(t), "--prefix", t.TempDir(), "--python-version", "3.11")
	if err == nil {
		t.Fatal("expected error")
	}
	for _, l := range rec.Lines() {
		if strings.Contains(l, "kernelspec") {
			t.Errorf("kernel registered after extension failure: %s", l)
		}
	}
}

func TestInstall_Interrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var staging string
	rec := &runnertest.Recorder{Hook: func(ctx context.Context, c runnertest.Call) error {
		if strings.HasPrefix(c.Line(), "jupyter kernelspec install") {
			staging = c.Args[len(c.Args)-1]
			cancel()
			return fmt.Errorf("%s: %w", c.Line(), ctx.Err())
		}
		return nil
	}}
	useRecorder(t, rec)

	_, err := executeCommand(ctx, t,
		"--resources", newBundle(t), "--prefix", t.TempDir(), "--python-version", "3.11")
	if code := ExitCode(ctx, err); code != ExitInterrupted {
		t.Errorf("exit code = %d, want %d (err: %v)", code, ExitInterrupted, err)
	}
	if staging == "" {
		t.Fatal("kernel registration never ran")
	}
	if _, err := os.Stat(staging); !os.IsNotExist(err) {
		t.Errorf("staging dir %s survived the interrupt", staging)
	}
}

func TestInstall_MissingResources(t *testing.T) {
	useRecorder(t, &runnertest.Recorder{})

	_, err := executeCommand(context.Background(), t,
		"--resources", filepath.Join(t.TempDir(), "missing"), "--prefix", t.TempDir())
	if code := ExitCode(context.Background(), err); code != 1 {
		t.Errorf("exit code = %d, want 1 (err: %v)", code, err)
	}
}

func TestInstall_RejectsArgs(t *testing.T) {
	useRecorder(t, &runnertest.Recorder{})
	if _, err := executeCommand(context.Background(), t, "stray"); err == nil {
		t.Fatal("expected error for positional argument")
	}
}

func TestKernelsCommand(t *testing.T) {
	res := newBundle(t)
	rec := &runnertest.Recorder{}
	useRecorder(t, rec)

	out, err := executeCommand(context.Background(), t, "kernels", "--resources", res)
	if err != nil {
		t.Fatalf("kernels: %v", err)
	}
	for _, want := range []string{"python3", "scala", filepath.Join(res, "kernel", "base", "lib", "*")} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\nbase ") {
		t.Errorf("base listed as a kernel:\n%s", out)
	}
	if len(rec.Calls()) != 0 {
		t.Errorf("kernels must not run commands: %v", rec.Lines())
	}
}

func TestConfigSetGet(t *testing.T) {
	if _, err := executeCommand(context.Background(), t, "config", "set", "jupyter", "/opt/env/bin/jupyter"); err != nil {
		t.Fatalf("config set: %v", err)
	}
	if got := config.Get("jupyter"); got != "/opt/env/bin/jupyter" {
		t.Errorf("jupyter = %q", got)
	}
}

func TestVersionCommand(t *testing.T) {
	buildVersion, buildCommit, buildDate = "1.2.3", "abc123", "2026-01-01"
	out, err := executeCommand(context.Background(), t, "version", "--short")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) != "1.2.3" {
		t.Errorf("version --short = %q", out)
	}
}

func TestExitCode(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()
	bg := context.Background()

	tests := []struct {
		name string
		ctx  context.Context
		err  error
		want int
	}{
		{"success", bg, nil, 0},
		{"plain error", bg, errors.New("boom"), 1},
		{"command status", bg, fmt.Errorf("wrapped: %w", &runner.ExitError{Cmd: "jupyter", Code: 2}), 2},
		{"signaled child", bg, &runner.ExitError{Cmd: "jupyter", Code: -1}, 1},
		{"cancelled error", bg, fmt.Errorf("x: %w", context.Canceled), ExitInterrupted},
		{"cancelled context", cancelled, &runner.ExitError{Cmd: "jupyter", Code: -1}, ExitInterrupted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.ctx, tt.err); got != tt.want {
				t.Errorf("ExitCode = %d, want %d", got, tt.want)
			}
		})
	}
}
