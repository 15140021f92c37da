// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/stay/internal/core/ports"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	output   io.Writer
}

// New creates a new Logger writing pretty output to stderr.
func New() *Logger {
	return &Logger{
		logger: slog.New(newHandler(os.Stderr, false)),
		output: os.Stderr,
	}
}

// SetOutput updates the logger's output destination and keeps the current
// JSON mode. If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.logger = slog.New(newHandler(w, l.jsonMode))
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.jsonMode = enable
	l.logger = slog.New(newHandler(l.output, enable))
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its cause chain. Metadata attached with zerr.With
// anywhere in the chain is logged as attributes.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if err == nil {
		return
	}

	entries := collectErrorEntries(err)
	attrs := errorAttrs(entries)
	ctx := context.Background()

	if l.jsonMode {
		attrs = append([]slog.Attr{slog.String("error", err.Error())}, attrs...)
		l.logger.LogAttrs(ctx, slog.LevelError, "operation failed", attrs...)
		return
	}

	l.logger.LogAttrs(ctx, slog.LevelError, formatErrorEntries(entries), attrs...)
}

func newHandler(w io.Writer, jsonMode bool) slog.Handler {
	if w == nil {
		w = os.Stderr
	}
	if jsonMode {
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	return NewConsoleHandler(w, slog.LevelInfo)
}
