package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/stay/internal/ui/style"
)

func (c *CLI) newPruneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Evict the oldest positions beyond the bound",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var limit *uint
			if cmd.Flags().Changed("max") {
				v, _ := cmd.Flags().GetUint("max")
				limit = &v
			}

			n, err := c.app.Prune(cmd.Context(), limit)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			p := style.NewPalette(w)
			_, _ = fmt.Fprintf(w, "%s pruned %d position(s)\n", p.Icon.Render(style.Check), n)
			return nil
		},
	}

	cmd.Flags().UintP("max", "m", 0, "Bound to apply instead of the configured maxPositions (0 keeps everything)")

	return cmd
}
