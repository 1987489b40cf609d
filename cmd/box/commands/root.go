// Package commands implements the CLI commands for box.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/box/internal/app"
	"go.trai.ch/box/internal/build"
)

// CLI represents the command line interface for box.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Stream(ctx context.Context, args []string, opts app.StreamOptions) error
	Wait(ctx context.Context, host string, opts app.WaitOptions) error
	Provision(ctx context.Context, host string, opts app.ProvisionOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "box",
		Short:         "Provision short-lived machines and narrate their setup",
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

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the config file (default $XDG_CONFIG_HOME/box/config.yaml)")
	rootCmd.PersistentFlags().StringP("output-mode", "o", "", "Output mode: auto, animated, or plain")
	rootCmd.PersistentFlags().String("prefix", "", "Directive prefix recognised in the task stream (default TASK)")
	rootCmd.PersistentFlags().Bool("ci", false, "Use plain output (shorthand for --output-mode=plain)")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newStreamCmd())
	rootCmd.AddCommand(c.newWaitCmd())
	rootCmd.AddCommand(c.newProvisionCmd())
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

// commonOptions reads the persistent flags shared by every verb.
func commonOptions(cmd *cobra.Command) app.Options {
	configPath, _ := cmd.Flags().GetString("config")
	outputMode, _ := cmd.Flags().GetString("output-mode")
	prefix, _ := cmd.Flags().GetString("prefix")
	ci, _ := cmd.Flags().GetBool("ci")

	if ci {
		outputMode = "plain"
	}

	return app.Options{
		ConfigPath: configPath,
		OutputMode: outputMode,
		Prefix:     prefix,
	}
}
