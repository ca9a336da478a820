// Package logging builds the diagnostic logger shared by the harness
// components. Report output goes to stdout through the ui package; the
// logger only ever writes to stderr.
package logging

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w (the command's stderr). Verbose
// enables debug records, one per compiler invocation; otherwise only
// warnings and errors show.
func New(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything, for tests
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
