package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/hopcli/hop/internal/app"
	"github.com/hopcli/hop/internal/config"
	"github.com/hopcli/hop/internal/logging"
	"github.com/hopcli/hop/internal/storage"
	"github.com/hopcli/hop/internal/store"
)

// newRootCommand creates the main root command that shows help by default.
func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "hop",
		Short:         "Directory bookmark manager",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setup()
		},
	}

	rootCmd.AddCommand(
		newListCommand(),
		newAddCommand(),
		newEditCommand(),
		newRemoveCommand(),
		newGoCommand(),
		newDefaultsCommand(),
	)

	return rootCmd
}

// setup applies the optional settings file and routes logs to the data dir.
func setup() error {
	fs := afero.NewOsFs()
	settings, err := config.Load(fs, storage.New(fs).SettingsPath())
	if err != nil {
		// A broken settings file should not block shortcut operations.
		settings = config.Default()
	}

	color.NoColor = color.NoColor || !settings.ColorEnabled()

	if err := logging.Init(fs, settings.Level()); err != nil {
		logging.InitTest()
	}
	return nil
}

// newApp constructs the application service, failing only on a missing
// home directory.
func newApp() (*app.App, error) {
	a, err := app.New()
	if err != nil {
		return nil, fmt.Errorf("hop cannot run: %w", err)
	}
	return a, nil
}

// warn prints a yellow warning line to stderr.
func warn(format string, args ...any) {
	_, _ = color.New(color.FgYellow).Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}

// isNoOpError reports whether err describes a no-op outcome (duplicate,
// unknown name, vanished target) rather than a hard failure.
func isNoOpError(err error) bool {
	return errors.Is(err, store.ErrDuplicateName) ||
		errors.Is(err, store.ErrUnknownName) ||
		errors.Is(err, app.ErrUnknownShortcut) ||
		errors.Is(err, app.ErrTargetMissing)
}
