// Package cmd provides Cobra CLI commands for keysetup.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/keysetup/internal/cli"
	"github.com/bnema/keysetup/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	configDir string
	rootCmd   = &cobra.Command{
		Use:   "keysetup",
		Short: "Keyboard bindings for Doom source ports",
		Long: `keysetup - keyboard configuration for Doom source ports.

Bind keys to game actions without ever creating a conflict: assigning a key
that is already used inside the same group (movement, menu, shortcuts, map)
unbinds the action that held it.

Bindings are stored as the integer variables the game reads (key_up,
key_fire, joybspeed, ...), either in a TOML file or in a SQLite database.

Examples:
  keysetup list                    # Show every binding by group
  keysetup bind fire               # Press a key to bind it to Fire
  keysetup bind use SPACE          # Bind by key name
  keysetup toggle always-run on    # Run permanently (joybspeed = 29)
  keysetup reset --all             # Restore the default layout`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{ConfigDir: configDir})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Keep config, bindings and database in this directory")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

// requireApp returns the app or an error when initialization was skipped.
func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}
