package codec

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with codec-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// WithCodec adds a codec field to the logger.
func (l *Logger) WithCodec(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("codec", name),
	}
}

// LogEncode logs an encode operation.
func (l *Logger) LogEncode(ctx context.Context, dimension, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "encode failed",
			"dimension", dimension,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "encode completed",
		"dimension", dimension,
		"bytes", size,
	)
}

// LogDecode logs a decode operation. Malformed input is reported at warn
// level since it originates outside the process.
func (l *Logger) LogDecode(ctx context.Context, size, dimension int, err error) {
	if err != nil {
		l.WarnContext(ctx, "decode failed",
			"bytes", size,
			"error", err,
		)
		return
	}
	l.DebugContext(ctx, "decode completed",
		"bytes", size,
		"dimension", dimension,
	)
}
