package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/beakerx-labs/beakerx-install/internal/bundle"
	"github.com/beakerx-labs/beakerx-install/internal/kernel"
	"github.com/spf13/cobra"
)

var kernelsJSON bool

var kernelsCmd = &cobra.Command{
	Use:   "kernels",
	Short: "List bundled kernels",
	Long:  `List the bundled kernels and the classpath each would be installed with. Nothing is installed.`,
	Args:  cobra.NoArgs,
	RunE:  runKernels,
}

func init() {
	kernelsCmd.Flags().BoolVar(&kernelsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(kernelsCmd)
}

// kernelEntry represents a bundled kernel for display.
type kernelEntry struct {
	Name      string `json:"name"`
	Classpath string `json:"classpath"`
}

func runKernels(cmd *cobra.Command, args []string) error {
	res, err := bundle.Locate(settings.Resources)
	if err != nil {
		return err
	}

	names, err := kernel.Names(res)
	if err != nil {
		return err
	}

	if len(names) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No bundled kernels found.")
		return nil
	}

	entries := make([]kernelEntry, 0, len(names))
	for _, name := range names {
		entries = append(entries, kernelEntry{Name: name, Classpath: kernel.Classpath(res, name)})
	}

	if kernelsJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tCLASSPATH")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Classpath)
	}
	return w.Flush()
}
