// Package install runs the three installation steps in order: notebook
// extension, kernel specs, static assets. The first failing step aborts the
// run; nothing is rolled back.
package install

import (
	"context"
	"fmt"
	"io"

	"github.com/beakerx-labs/beakerx-install/internal/assets"
	"github.com/beakerx-labs/beakerx-install/internal/bundle"
	"github.com/beakerx-labs/beakerx-install/internal/config"
	"github.com/beakerx-labs/beakerx-install/internal/interp"
	"github.com/beakerx-labs/beakerx-install/internal/kernel"
	"github.com/beakerx-labs/beakerx-install/internal/nbextension"
	"github.com/beakerx-labs/beakerx-install/internal/runner"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Pipeline holds everything one installation run needs.
type Pipeline struct {
	Settings  config.Settings
	Resources bundle.Resources
	Runner    runner.Runner
	Out       io.Writer
	Logger    *zap.Logger
}

// Result summarizes a completed run.
type Result struct {
	Extension string
	Kernels   []string
	AssetDest string
}

// Run executes extension → kernels → assets.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	log := p.logger()
	res := &Result{Extension: p.Settings.Extension}

	log.Debug("registering nbextension", zap.String("extension", p.Settings.Extension))
	reg := &nbextension.Registrar{Runner: p.Runner, Jupyter: p.Settings.Jupyter, Name: p.Settings.Extension}
	if err := reg.Register(ctx); err != nil {
		return nil, err
	}
	fmt.Fprintf(p.Out, "  ✓ nbextension: %s\n", p.Settings.Extension)

	ki := &kernel.Installer{
		Resources: p.Resources,
		Runner:    p.Runner,
		Jupyter:   p.Settings.Jupyter,
		Logger:    log,
	}
	kernels, err := ki.InstallAll(ctx, func(name string) {
		fmt.Fprintf(p.Out, "  ✓ kernel: %s\n", name)
	})
	if err != nil {
		return nil, err
	}
	res.Kernels = kernels

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dest, err := p.AssetDest(ctx)
	if err != nil {
		return nil, err
	}
	log.Debug("installing assets", zap.String("dest", dest))
	if err := assets.Install(ctx, p.Resources, dest); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fmt.Fprintf(p.Out, "  ✓ assets: %s\n", dest)
	res.AssetDest = dest

	fmt.Fprintln(p.Out)
	printer.Fprintf(p.Out, "✓ Installed %d kernels and the %s extension.\n", len(res.Kernels), res.Extension)

	return res, nil
}

// AssetDest computes the static/custom destination. The interpreter is
// only probed for values the settings leave empty.
func (p *Pipeline) AssetDest(ctx context.Context) (string, error) {
	prefix := p.Settings.Prefix
	libDir := ""

	if p.Settings.PythonVersion != "" {
		v, err := interp.ParseVersion(p.Settings.PythonVersion)
		if err != nil {
			return "", err
		}
		libDir = interp.Interpreter{Version: v}.LibDir()
	}

	if prefix == "" || libDir == "" {
		in, err := interp.Detect(ctx, p.Runner, p.Settings.Python)
		if err != nil {
			return "", fmt.Errorf("resolving installation prefix: %w", err)
		}
		p.logger().Debug("detected interpreter",
			zap.String("prefix", in.Prefix),
			zap.String("version", in.Version.String()))
		if prefix == "" {
			prefix = in.Prefix
		}
		if libDir == "" {
			libDir = in.LibDir()
		}
	}

	return assets.Dest(prefix, libDir), nil
}

func (p *Pipeline) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}
