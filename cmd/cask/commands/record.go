package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/cask/internal/app"
)

func (c *CLI) newRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record <definition>",
		Short: "Record the install receipt for a cask definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			onRequest, _ := cmd.Flags().GetBool("on-request")
			asDependency, _ := cmd.Flags().GetBool("as-dependency")
			return c.app.Record(cmd.Context(), args[0], app.RecordOptions{
				OnRequest:    onRequest,
				AsDependency: asDependency,
			})
		},
	}
	cmd.Flags().Bool("on-request", true, "Mark the install as requested by the user")
	cmd.Flags().Bool("as-dependency", false, "Mark the install as pulled in as a dependency")
	return cmd
}
