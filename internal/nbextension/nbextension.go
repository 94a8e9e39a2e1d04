// Package nbextension installs and enables the notebook's browser-side
// extension with `jupyter nbextension`, scoped to the environment prefix.
package nbextension

import (
	"context"
	"fmt"

	"github.com/beakerx-labs/beakerx-install/internal/runner"
)

// Registrar installs and enables one extension package.
type Registrar struct {
	Runner  runner.Runner
	Jupyter string
	Name    string
}

// Register runs install then enable. Enable is skipped when install fails.
func (r *Registrar) Register(ctx context.Context) error {
	for _, verb := range []string{"install", "enable"} {
		if err := r.Runner.Run(ctx, r.jupyter(), Args(verb, r.Name)...); err != nil {
			return fmt.Errorf("%s nbextension %s: %w", verb, r.Name, err)
		}
	}
	return nil
}

// Args returns the `jupyter nbextension <verb>` arguments for a Python
// package extension installed into the environment prefix.
func Args(verb, name string) []string {
	return []string{"nbextension", verb, name, "--py", "--sys-prefix"}
}

func (r *Registrar) jupyter() string {
	if r.Jupyter == "" {
		return "jupyter"
	}
	return r.Jupyter
}
