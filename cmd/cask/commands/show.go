package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cask/internal/app"
)

func (c *CLI) newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <token|path>",
		Short: "Show the install receipt for a cask",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			return c.app.Show(cmd.Context(), args[0], app.ShowOptions{
				JSON: jsonOut,
			})
		},
	}
	cmd.Flags().BoolP("json", "j", false, "Print the raw receipt document")
	return cmd
}
