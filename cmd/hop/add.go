package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newAddCommand creates the add command.
func newAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME PATH",
		Short: "Add a shortcut to a directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			if _, err := a.AddShortcut(args[0], args[1]); err != nil {
				if isNoOpError(err) {
					warn("%v", err)
					return nil
				}
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", args[0])
			return nil
		},
	}
}
