package cli

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger writing to w. verbose enables debug
// records.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
