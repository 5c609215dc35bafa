// Package obslog configures the process-wide slog logger used by every
// command in this module, following storbeck-augustus/pkg/logging's
// Configure/ParseLevel split between a small set of levels and two output
// formats.
package obslog

import (
	"io"
	"log/slog"
	"os"
)

// Configure installs the global slog logger at level, rendering either
// "json" (for piping into log aggregation) or "text" (the default,
// human-readable on a terminal). A nil output defaults to stderr so normal
// program output on stdout stays uncluttered.
func Configure(level slog.Level, format string, output io.Writer) {
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		handler = slog.NewTextHandler(output, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// ParseLevel maps the config/flag level names to slog.Level, defaulting to
// Info for anything unrecognized.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
