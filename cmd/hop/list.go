package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hopcli/hop/internal/store"
)

// newListCommand creates the list command.
func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List all shortcuts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}

			shortcuts, err := a.GetShortcuts()
			if err != nil {
				var malformed *store.MalformedError
				if errors.As(err, &malformed) {
					warn("%v", malformed)
				} else {
					warn("%v", err)
				}
			}

			printShortcuts(cmd, shortcuts)
			return nil
		},
	}
}

// printShortcuts writes the table sorted by name.
func printShortcuts(cmd *cobra.Command, m store.Map) {
	names := m.Names()
	sort.Strings(names)

	nameColor := color.New(color.FgCyan)
	for _, name := range names {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", nameColor.Sprint(name), m[name])
	}
}
