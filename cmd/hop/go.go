package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newGoCommand creates the go command. It prints the resolved path so a
// shell wrapper can cd into it:
//
//	hop() { local p; p="$(command hop go "$1")" && cd "$p"; }
func newGoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "go NAME",
		Short: "Print the path of a shortcut for the shell to cd into",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			path, err := a.NavigateTo(args[0])
			if err != nil {
				if isNoOpError(err) {
					warn("%v", err)
					// Nonzero exit keeps the shell wrapper from
					// cd'ing into an empty path.
					return errSilent
				}
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}
