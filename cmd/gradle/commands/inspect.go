package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [manifest]",
		Short: "Resolve the actions of every declared task type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest := "gradle.yaml"
			if len(args) > 0 {
				manifest = args[0]
			}
			return c.app.Inspect(cmd.Context(), manifest, cmd.OutOrStdout())
		},
	}
}
