package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/craig5/range/internal/config"
)

// Execute runs the range-sync CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "range-sync",
		Short:   "Collect and merge range data",
		Version: a.version,
		Long: `range-sync runs the configured collector modules, merges their range
data fragments under the stage precedence rules (modules, then immutable
overrides, then post enhancers), and writes the merged dataset to the
output directory.`,
		PersistentPreRun: a.setupCommand,
		SilenceUsage:     true,
		SilenceErrors:    true,
	}

	rootCmd.PersistentFlags().StringVar(&a.flags.ConfigFile, "config", a.flags.ConfigFile,
		"run configuration file (default "+config.DefaultPath+")")
	rootCmd.PersistentFlags().BoolVar(&a.flags.Debug, "debug", false, "debug output")
	rootCmd.PersistentFlags().BoolVarP(&a.flags.Verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.flags.Quiet, "quiet", "q", false, "errors only")
	rootCmd.PersistentFlags().StringVar(&a.flags.LogLevel, "log-level", a.flags.LogLevel,
		"log level: trace, debug, info, warn, error (overrides --debug/-v/-q)")
	rootCmd.PersistentFlags().BoolVar(&a.flags.NoColor, "no-color", a.flags.NoColor, "disable colored output")
	rootCmd.MarkFlagsMutuallyExclusive("debug", "verbose", "quiet")

	rootCmd.SetVersionTemplate("range-sync {{.Version}}\n")

	rootCmd.AddCommand(a.NewSyncCommand())
	rootCmd.AddCommand(a.NewValidateCommand())
	rootCmd.AddCommand(a.NewPluginsCommand())

	return rootCmd
}

// setupCommand reinitializes the logger after cobra has parsed the global
// flags so verbosity flags take effect for every subcommand.
func (a *App) setupCommand(_ *cobra.Command, _ []string) {
	logger := NewLogger(a.flags)
	a.logger = &logger
}

// ExitOnError prints an error and exits with status 1. Meant for top-level
// error handling in main.go.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
