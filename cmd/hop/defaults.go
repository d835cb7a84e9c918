package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hopcli/hop/internal/prompt"
)

// newDefaultsCommand creates the defaults command.
func newDefaultsCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Replace all shortcuts with the default set",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !force {
				ok, err := prompt.Confirm("Overwrite all shortcuts with defaults?")
				if err != nil {
					return err
				}
				if !ok {
					_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted")
					return nil
				}
			}

			a, err := newApp()
			if err != nil {
				return err
			}

			m, err := a.CreateDefaults()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d default shortcuts\n", len(m))
			printShortcuts(cmd, m)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite without confirmation")
	return cmd
}
