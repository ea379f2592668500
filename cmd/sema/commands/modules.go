package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newModulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List configured snapshot databases and their modules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			listings, err := c.app.Modules(cmd.Context(), configDir(cmd))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, listing := range listings {
				if listing.Builtin {
					fmt.Fprintf(out, "%s (builtin)\n", listing.Path)
				} else {
					fmt.Fprintf(out, "%s\n", listing.Path)
				}
				for _, name := range listing.Modules {
					fmt.Fprintf(out, "  %s\n", name)
				}
			}
			return nil
		},
	}
}
