package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/box/internal/app"
)

func (c *CLI) newWaitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wait host",
		Short: "Wait until a host accepts TCP connections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Wait(cmd.Context(), args[0], waitOptions(cmd))
		},
	}
	addProbeFlags(cmd)
	return cmd
}

func addProbeFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("port", "p", 0, "TCP port to probe (default 22)")
	cmd.Flags().Int("attempts", 0, "Number of connection attempts (default 20)")
}

func waitOptions(cmd *cobra.Command) app.WaitOptions {
	port, _ := cmd.Flags().GetInt("port")
	attempts, _ := cmd.Flags().GetInt("attempts")

	return app.WaitOptions{
		Options:  commonOptions(cmd),
		Port:     port,
		Attempts: attempts,
	}
}
