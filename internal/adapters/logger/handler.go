package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"go.trai.ch/stay/internal/ui/output"
	"go.trai.ch/stay/internal/ui/style"
)

// ConsoleHandler is a slog.Handler for terminals. Each record is one colored
// message line followed by its attributes, one faint "key: value" line each,
// so that error metadata such as the positions file path reads as a detail of
// the failure above it.
type ConsoleHandler struct {
	mu     *sync.Mutex
	out    *termenv.Output
	level  slog.Leveler
	prefix string
	lines  []string
}

// NewConsoleHandler creates a ConsoleHandler writing records at or above level
// to w. A nil w means stderr and a nil level means slog.LevelInfo.
func NewConsoleHandler(w io.Writer, level slog.Leveler) *ConsoleHandler {
	if w == nil {
		w = os.Stderr
	}
	if level == nil {
		level = slog.LevelInfo
	}
	return &ConsoleHandler{mu: &sync.Mutex{}, out: output.New(w), level: level}
}

// Enabled reports whether the handler handles records at the given level.
func (h *ConsoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle writes the record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *ConsoleHandler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	msg, color := headline(r.Level, r.Message)
	b.WriteString(h.out.String(msg).Foreground(color).String())
	b.WriteByte('\n')

	lines := slices.Clone(h.lines)
	r.Attrs(func(a slog.Attr) bool {
		lines = appendAttr(lines, h.prefix, a)
		return true
	})
	for _, line := range lines {
		b.WriteString(h.out.String(line).Faint().String())
		b.WriteByte('\n')
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.WriteString(b.String())
	return err
}

// WithAttrs returns a handler that prints attrs under every record.
func (h *ConsoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	c.lines = slices.Clone(h.lines)
	for _, a := range attrs {
		c.lines = appendAttr(c.lines, h.prefix, a)
	}
	return &c
}

// WithGroup returns a handler that qualifies later attributes with name.
func (h *ConsoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.prefix += name + "."
	return &c
}

func headline(level slog.Level, msg string) (string, termenv.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross + " " + msg, termenv.RGBColor(string(style.Red))
	case level >= slog.LevelWarn:
		return style.Warning + " " + msg, termenv.RGBColor(string(style.Yellow))
	default:
		return msg, termenv.RGBColor(string(style.Slate))
	}
}

// appendAttr renders a as detail lines, flattening groups into dotted keys.
func appendAttr(lines []string, prefix string, a slog.Attr) []string {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return lines
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			lines = appendAttr(lines, prefix, ga)
		}
		return lines
	}
	return append(lines, fmt.Sprintf("  %s%s: %s", prefix, a.Key, a.Value))
}
