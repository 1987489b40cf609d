package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/box/internal/app"
)

func (c *CLI) newStreamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stream -- command [args...]",
		Short: "Run a local command and narrate its task stream",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return nil
			}
			pty, _ := cmd.Flags().GetBool("pty")

			return c.app.Stream(cmd.Context(), args, app.StreamOptions{
				Options: commonOptions(cmd),
				PTY:     pty,
			})
		},
	}
	cmd.Flags().Bool("pty", false, "Run the command under a pseudo-terminal")
	// Flags after the command name belong to the command.
	cmd.Flags().SetInterspersed(false)
	return cmd
}
