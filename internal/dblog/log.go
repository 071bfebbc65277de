// Package dblog provides the structured logging used by the pager
// package to report best-effort failures: pre-extend failure,
// write failure during flush. It wraps log/slog the way this corpus's
// logging packages do — a single default logger, leveled helpers,
// nothing fancier.
package dblog

import (
	"log/slog"
	"os"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: slog.LevelInfo,
}))

// SetOutput redirects log output, mainly for tests that want to assert on
// warnings without polluting stderr.
func SetOutput(w *os.File) {
	logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// Warn reports a recoverable, best-effort failure: one to log and
// continue past, such as a pre-extend failure or a per-slot flush
// failure.
func Warn(msg string, args ...any) {
	logger.Warn(msg, args...)
}

// Error reports a failure the caller is about to propagate or abort on.
func Error(msg string, args ...any) {
	logger.Error(msg, args...)
}
