// Package cmd assembles the cobra commands of the library CLI.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/game-club/library/cmd/library/app"
)

// New creates the root command with all subcommands registered.
func New(a *app.App) *cobra.Command {
	config := a.Config()

	rootCmd := &cobra.Command{
		Use:     "library",
		Short:   "Game club library catalog builder",
		Version: a.Version(),
		Long: `Library maintains the game club's static game catalog. It reconciles
game submissions posted as GitHub discussions with Steam store metadata and
the previously persisted catalog, then writes the catalog JSON files the
site serves: a full summary, a newest slice, and one detail file per game.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		// Flags are bound to config below; rebuild the logger once they are
		// parsed so -v/-q/--log-level/--no-color actually apply.
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			a.SetupLogger()
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&config.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&config.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&config.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level: trace, debug, info, warn, error (overrides -v/-q)")
	rootCmd.PersistentFlags().StringVar(&config.RootDir, "root", config.RootDir, "repository root containing the api directory")

	rootCmd.SetVersionTemplate("library {{.Version}}\n")

	rootCmd.AddCommand(NewBuildCommand(a))
	rootCmd.AddCommand(NewServeCommand(a))

	return rootCmd
}
