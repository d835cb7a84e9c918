package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newEditCommand creates the edit command.
func newEditCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "edit NAME PATH",
		Short: "Point an existing shortcut at a new directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if _, err := a.EditShortcut(args[0], args[1]); err != nil {
				if isNoOpError(err) {
					warn("%v", err)
					return nil
				}
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", args[0])
			return nil
		},
	}
}
