package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dir>",
		Short: "Follow document deletes and renames until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Watch(cmd.Context(), args[0])
		},
	}
}
