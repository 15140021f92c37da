// Package style provides the shared colors and icons of the CLI.
package style

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/stay/internal/ui/output"
)

// Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "●"
)

// Palette holds the styles of the position listing, bound to one writer.
type Palette struct {
	Key   lipgloss.Style
	Label lipgloss.Style
	Muted lipgloss.Style
	Icon  lipgloss.Style
}

// NewPalette creates a Palette rendering for w with the shared color profile.
func NewPalette(w io.Writer) Palette {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(output.ColorProfile())

	return Palette{
		Key:   r.NewStyle().Foreground(Iris).Bold(true),
		Label: r.NewStyle().Foreground(Slate),
		Muted: r.NewStyle().Foreground(Slate).Faint(true),
		Icon:  r.NewStyle().Foreground(Green),
	}
}
