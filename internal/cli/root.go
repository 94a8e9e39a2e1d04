package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/beakerx-labs/beakerx-install/internal/branding"
	"github.com/beakerx-labs/beakerx-install/internal/config"
	"github.com/beakerx-labs/beakerx-install/internal/runner"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ExitInterrupted is the exit status after SIGINT.
const ExitInterrupted = 130

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	logger   = zap.NewNop()
	settings config.Settings
)

// newRunner builds the command runner; tests replace it with a recorder.
var newRunner = func(stdout, stderr io.Writer, log *zap.Logger) runner.Runner {
	return &runner.Exec{Stdout: stdout, Stderr: stderr, Logger: log}
}

// flagKeys maps flag names to config keys for flags that differ.
var flagKeys = map[string]string{
	"prefix":         config.KeyPrefix,
	"resources":      config.KeyResources,
	"jupyter":        config.KeyJupyter,
	"python":         config.KeyPython,
	"python-version": config.KeyPythonVersion,
	"verbose":        config.KeyVerbose,
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` installer: registers and enables the ` + branding.ExtensionName() + ` notebook
extension, installs one Jupyter kernel spec per bundled kernel, and copies the
bundled fonts and stylesheet into the notebook's static/custom directory.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		if err := bindFlags(cmd); err != nil {
			return err
		}
		settings = config.Resolve()

		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if settings.Verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		l, err := cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runInstall,
}

func init() {
	rootCmd.Flags().String("prefix", "", "Location of the environment to install assets into (default: the python interpreter's sys.prefix)")
	rootCmd.Flags().String("python-version", "", "Python X.Y of the target environment (default: probed from the interpreter)")
	rootCmd.PersistentFlags().String("resources", "", "Directory holding the bundled kernel/ and custom/ resources")
	rootCmd.PersistentFlags().String("jupyter", "jupyter", "jupyter executable")
	rootCmd.PersistentFlags().String("python", "python3", "python executable used to locate the environment")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

// bindFlags binds the command's parsed flags into viper so they take
// precedence over env and config file.
func bindFlags(cmd *cobra.Command) error {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := viper.BindPFlag(key, f); err != nil {
			return fmt.Errorf("binding --%s: %w", name, err)
		}
	}
	return nil
}

// Execute runs the root command with build info injected via ldflags and
// returns the process exit status.
func Execute(version, commit, date string) int {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	code := ExitCode(ctx, err)
	if err != nil && code != ExitInterrupted {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return code
}

// ExitCode maps a run's error to the process exit status: 0 on success,
// 130 after an interrupt, the failing command's own status, or 1.
func ExitCode(ctx context.Context, err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, context.Canceled) || ctx.Err() != nil {
		return ExitInterrupted
	}
	var exitErr *runner.ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	return 1
}
