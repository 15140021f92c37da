package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/stay/internal/ui/style"
)

func (c *CLI) newForgetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forget <path>",
		Short: "Delete the saved positions of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.app.Forget(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			p := style.NewPalette(w)
			_, _ = fmt.Fprintf(w, "%s forgot %d position(s) of %s\n", p.Icon.Render(style.Check), n, p.Key.Render(args[0]))
			return nil
		},
	}
}
