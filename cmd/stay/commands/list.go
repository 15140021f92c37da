package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.trai.ch/stay/internal/core/domain"
	"go.trai.ch/stay/internal/engine/positions"
	"go.trai.ch/stay/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List saved positions",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			entries := c.app.List(cmd.Context())
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			writeTable(cmd.OutOrStdout(), entries, c.now())
			return nil
		},
	}

	cmd.Flags().Bool("json", false, "Print the positions in the positions file format")

	return cmd
}

func writeJSON(w io.Writer, entries []positions.Entry) error {
	raw := make(map[domain.Key]domain.SavedPosition, len(entries))
	for _, e := range entries {
		raw[e.Key] = e.Position
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(raw); err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}
	return nil
}

func writeTable(w io.Writer, entries []positions.Entry, now time.Time) {
	p := style.NewPalette(w)

	if len(entries) == 0 {
		_, _ = fmt.Fprintln(w, p.Muted.Render("no saved positions"))
		return
	}

	width := 0
	for _, e := range entries {
		width = max(width, len(e.Key))
	}

	for _, e := range entries {
		var b strings.Builder
		b.WriteString(p.Key.Render(e.Key.String()))
		b.WriteString(strings.Repeat(" ", width-len(e.Key)))
		for _, field := range fields(e.Position) {
			b.WriteString("  ")
			b.WriteString(p.Label.Render(field[0] + "="))
			b.WriteString(field[1])
		}
		b.WriteString("  ")
		b.WriteString(p.Muted.Render(humanize.RelTime(time.UnixMilli(e.Position.Timestamp), now, "ago", "from now")))
		_, _ = fmt.Fprintln(w, b.String())
	}
}

func fields(pos domain.SavedPosition) [][2]string {
	var out [][2]string
	if pos.Scroll != nil {
		out = append(out, [2]string{"scroll", formatFloat(*pos.Scroll)})
	}
	if pos.ScrollTop != nil {
		out = append(out, [2]string{"scrollTop", formatFloat(*pos.ScrollTop)})
	}
	if pos.Cursor != nil {
		out = append(out, [2]string{"cursor", fmt.Sprintf("%d:%d-%d:%d",
			pos.Cursor.From.Line, pos.Cursor.From.Ch, pos.Cursor.To.Line, pos.Cursor.To.Ch)})
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
