// Package observability provides structured logging for the CLI.
package observability

import (
	"io"
	"log/slog"
	"os"
)

const attrService = "service"

// serviceName tags every log record.
const serviceName = "git-line-totals"

// NewLogger builds an [slog.Logger] writing to stderr with the given level
// (debug, info, warn, error) and format (text, json). Unknown values fall
// back to info and text.
func NewLogger(level, format string) *slog.Logger {
	return NewLoggerTo(os.Stderr, level, format)
}

// NewLoggerTo is NewLogger with an explicit sink, for tests.
func NewLoggerTo(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(slog.String(attrService, serviceName))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
