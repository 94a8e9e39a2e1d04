package kernel

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/beakerx-labs/beakerx-install/internal/bundle"
	"github.com/beakerx-labs/beakerx-install/internal/runner"
	"go.uber.org/zap"
)

// Installer registers bundled kernels with jupyter.
type Installer struct {
	Resources bundle.Resources
	Runner    runner.Runner
	Jupyter   string // jupyter executable
	Logger    *zap.Logger

	// TempDir is the parent for per-kernel staging directories; empty means
	// os.TempDir().
	TempDir string
}

// InstallAll installs every bundled kernel in Names order. The first
// failure aborts the remaining kernels. done, if non-nil, is called after
// each kernel is registered.
func (in *Installer) InstallAll(ctx context.Context, done func(name string)) ([]string, error) {
	names, err := Names(in.Resources)
	if err != nil {
		return nil, err
	}

	var installed []string
	for _, name := range names {
		if err := in.Install(ctx, name); err != nil {
			return installed, fmt.Errorf("installing kernel %s: %w", name, err)
		}
		installed = append(installed, name)
		if done != nil {
			done(name)
		}
	}
	return installed, nil
}

// Install renders one kernel's descriptor into a temporary directory and
// registers it. The temporary directory is removed on every return path.
func (in *Installer) Install(ctx context.Context, name string) error {
	rendered, err := RenderSpec(in.Resources, name)
	if err != nil {
		return err
	}

	tmpdir, err := os.MkdirTemp(in.TempDir, "kernel-"+name+"-")
	if err != nil {
		return fmt.Errorf("creating staging directory: %w", err)
	}
	defer os.RemoveAll(tmpdir)

	if err := os.WriteFile(filepath.Join(tmpdir, SpecFile), []byte(rendered), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", SpecFile, err)
	}

	in.logger().Debug("registering kernel",
		zap.String("kernel", name),
		zap.String("classpath", Classpath(in.Resources, name)),
		zap.String("staging", tmpdir))

	return in.Runner.Run(ctx, in.jupyter(), InstallArgs(name, tmpdir)...)
}

// InstallArgs returns the `jupyter kernelspec install` arguments for a
// staged kernel directory.
func InstallArgs(name, dir string) []string {
	return []string{"kernelspec", "install", "--sys-prefix", "--replace", "--name", name, dir}
}

func (in *Installer) jupyter() string {
	if in.Jupyter == "" {
		return "jupyter"
	}
	return in.Jupyter
}

func (in *Installer) logger() *zap.Logger {
	if in.Logger == nil {
		return zap.NewNop()
	}
	return in.Logger
}
