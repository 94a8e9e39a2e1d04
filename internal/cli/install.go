package cli

import (
	"fmt"

	"github.com/beakerx-labs/beakerx-install/internal/bundle"
	"github.com/beakerx-labs/beakerx-install/internal/install"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func runInstall(cmd *cobra.Command, args []string) error {
	res, err := bundle.Locate(settings.Resources)
	if err != nil {
		return err
	}
	logger.Debug("using bundled resources", zap.String("root", res.Root))

	fmt.Fprintf(cmd.OutOrStdout(), "Installing %s...\n", settings.Extension)

	p := &install.Pipeline{
		Settings:  settings,
		Resources: res,
		Runner:    newRunner(cmd.OutOrStdout(), cmd.ErrOrStderr(), logger),
		Out:       cmd.OutOrStdout(),
		Logger:    logger,
	}
	_, err = p.Run(cmd.Context())
	return err
}
