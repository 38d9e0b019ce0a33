package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cask/internal/app"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed casks with their install receipts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			return c.app.List(cmd.Context(), app.ListOptions{
				JSON: jsonOut,
			})
		},
	}
	cmd.Flags().BoolP("json", "j", false, "Print receipts as JSON")
	return cmd
}
