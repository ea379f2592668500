package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/sema/internal/app"
)

func (c *CLI) newMembersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "members <module>",
		Short: "Load a module and print its member names",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			includeHidden, _ := cmd.Flags().GetBool("hidden")
			includeDoc, _ := cmd.Flags().GetBool("doc")

			report, err := c.app.Members(cmd.Context(), configDir(cmd), args[0], app.MembersOptions{
				IncludeHidden: includeHidden,
				IncludeDoc:    includeDoc,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if includeDoc && report.Doc != "" {
				fmt.Fprintf(out, "%s\n\n", report.Doc)
			}
			for _, name := range report.Members {
				fmt.Fprintln(out, name)
			}
			for _, name := range report.Hidden {
				fmt.Fprintf(out, "%s (hidden)\n", name)
			}
			return nil
		},
	}
	cmd.Flags().Bool("hidden", false, "Include hidden members")
	cmd.Flags().Bool("doc", false, "Print module documentation")
	return cmd
}
