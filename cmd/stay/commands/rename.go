package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/stay/internal/ui/style"
)

func (c *CLI) newRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "rename <old> <new>",
		Aliases: []string{"mv"},
		Short:   "Move the saved positions of a document to a new path",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.app.Rename(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			p := style.NewPalette(w)
			_, _ = fmt.Fprintf(w, "%s moved %d position(s) %s %s\n",
				p.Icon.Render(style.Check), n, p.Key.Render(args[0]+" "+style.Arrow), p.Key.Render(args[1]))
			return nil
		},
	}
}
