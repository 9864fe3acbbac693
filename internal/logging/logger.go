// Package logging builds the structured logger used by the generator.
// It wraps Go's log/slog package; the debug toggle lowers the level so that
// per-pass element dumps and match explanations are emitted.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns a text logger writing to w. A nil w writes to stderr.
func New(w io.Writer, debug bool) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
