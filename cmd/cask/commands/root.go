// Package commands implements the CLI commands for the cask receipt tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/cask/internal/app"
	"go.trai.ch/cask/internal/build"
	"go.trai.ch/cask/internal/core/ports"
)

// CLI represents the command line interface for cask.
type CLI struct {
	app     *app.App
	rootCmd *cobra.Command
}

// loggerControls is implemented by loggers whose verbosity and output format
// can be adjusted after construction.
type loggerControls interface {
	SetVerbose(enable bool)
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app and logger.
func New(a *app.App, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cask",
		Short:         "Inspect and record cask install receipts",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		controls, ok := log.(loggerControls)
		if !ok {
			return
		}
		verbose, _ := cmd.Flags().GetBool("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		controls.SetVerbose(verbose)
		controls.SetJSON(jsonLogs)
	}

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newShowCmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newRecordCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
