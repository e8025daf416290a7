// Package logging provides structured logger construction and context propagation
// using the standard library slog package.
//
// Logs always go to a caller-supplied writer (stderr in cmd/demo) so they
// never interleave with the demo output on stdout.
//
//	logger := logging.New("info", "text", os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(logging.Component("runner")))
//	logging.FromContext(ctx).InfoContext(ctx, "phase complete")
//
// Error logging convention:
//
//	logger.ErrorContext(ctx, "benchmark failed",
//	    slog.String("operation", "Benchmark"),
//	    slog.Int("size", size),
//	    slog.Any("error", err),
//	)
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// contextKey is the unexported key type for storing loggers in context.
type contextKey struct{}

// New creates a configured *slog.Logger.
//
// The level parameter sets the minimum log level. Valid values are "debug",
// "info", "warn", and "error". Unrecognized values default to info.
//
// The format parameter selects the output handler. "json" uses
// slog.NewJSONHandler; all other values (including "text") use
// slog.NewTextHandler.
//
// When level is "debug", source code location is included in log output.
func New(level, format string, w io.Writer) *slog.Logger {
	lvl := parseLevel(level)

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl == slog.LevelDebug,
		ReplaceAttr: newRedactAttr(),
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// Component returns the attribute that tags records with the emitting component.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// WithLogger returns a new context with the given logger stored in it.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext extracts a *slog.Logger from the context.
// If no logger is stored, it returns slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// parseLevel converts a level string to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
