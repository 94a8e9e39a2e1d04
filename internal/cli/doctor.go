package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path"

	"github.com/beakerx-labs/beakerx-install/internal/bundle"
	"github.com/beakerx-labs/beakerx-install/internal/install"
	"github.com/beakerx-labs/beakerx-install/internal/kernel"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that an installation can run",
	Long: `Run the installer's pre-flight checks without changing anything: the jupyter
and python executables, the bundled resources, and the asset destination.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		problems := 0

		fmt.Fprintln(w, "Runtime check:")
		problems += checkBinary(w, settings.Jupyter)
		problems += checkBinary(w, settings.Python)

		fmt.Fprintln(w, "Bundle check:")
		res, err := bundle.Locate(settings.Resources)
		if err != nil {
			fmt.Fprintf(w, "  [FAIL] %v\n", err)
			problems++
		} else {
			fmt.Fprintf(w, "  [ OK ] resources at %s\n", res.Root)
			problems += checkBundle(w, res)
		}

		fmt.Fprintln(w, "Destination check:")
		p := &install.Pipeline{
			Settings: settings,
			Runner:   newRunner(io.Discard, cmd.ErrOrStderr(), logger),
			Logger:   logger,
		}
		dest, err := p.AssetDest(cmd.Context())
		if err != nil {
			fmt.Fprintf(w, "  [FAIL] %v\n", err)
			problems++
		} else {
			fmt.Fprintf(w, "  [ OK ] assets go to %s\n", dest)
		}

		if problems > 0 {
			return fmt.Errorf("doctor found %d problem(s)", problems)
		}
		return nil
	},
}

func checkBinary(w io.Writer, name string) int {
	p, err := exec.LookPath(name)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found\n", name)
		return 1
	}
	fmt.Fprintf(w, "  [ OK ] %s found at %s\n", name, p)
	return 0
}

// checkBundle renders and validates every kernel template and checks the
// custom assets exist. It returns the number of failures.
func checkBundle(w io.Writer, res bundle.Resources) int {
	problems := 0

	names, err := kernel.Names(res)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return 1
	}
	if _, err := os.Stat(res.Path(path.Join(bundle.KernelDir, bundle.BaseKernel))); err != nil {
		fmt.Fprintf(w, "  [FAIL] base kernel missing: %v\n", err)
		problems++
	}
	for _, name := range names {
		rendered, err := kernel.RenderSpec(res, name)
		if err == nil {
			err = kernel.Validate(rendered)
		}
		if err != nil {
			fmt.Fprintf(w, "  [FAIL] kernel %s: %v\n", name, err)
			problems++
			continue
		}
		fmt.Fprintf(w, "  [ OK ] kernel %s\n", name)
	}

	for _, name := range []string{bundle.FontsDir, bundle.Stylesheet} {
		if _, err := os.Stat(res.Path(name)); err != nil {
			fmt.Fprintf(w, "  [FAIL] %s missing\n", name)
			problems++
			continue
		}
		fmt.Fprintf(w, "  [ OK ] %s\n", name)
	}

	return problems
}
