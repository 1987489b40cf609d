package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/box/internal/app"
)

func (c *CLI) newProvisionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provision host --script file",
		Short: "Wait for a host, then run a setup script on it over SSH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script, _ := cmd.Flags().GetString("script")
			user, _ := cmd.Flags().GetString("user")
			summary, _ := cmd.Flags().GetBool("summary")

			return c.app.Provision(cmd.Context(), args[0], app.ProvisionOptions{
				WaitOptions: waitOptions(cmd),
				ScriptPath:  script,
				User:        user,
				Summary:     summary,
			})
		},
	}
	addProbeFlags(cmd)
	cmd.Flags().StringP("script", "s", "", "Path to the script piped to the remote shell")
	cmd.Flags().StringP("user", "u", "", "Remote user (default root)")
	cmd.Flags().Bool("summary", false, "Print a per-task summary after the script ends")
	_ = cmd.MarkFlagRequired("script")
	return cmd
}
