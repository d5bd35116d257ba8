package xvec

import (
	"context"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with xvec-specific context.
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
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// This is the default for vectors.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithName adds a name field, useful to tell vectors apart in shared logs.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("vector", name),
	}
}

// LogReallocate logs a buffer replacement.
func (l *Logger) LogReallocate(oldCap, newCap, length int, reason string) {
	ctx := context.Background()
	if !l.Enabled(ctx, slog.LevelDebug) {
		return
	}
	l.DebugContext(ctx, "buffer reallocated",
		"old_cap", oldCap,
		"new_cap", newCap,
		"len", length,
		"reason", reason,
	)
}

// LogRollback logs an operation that failed and was undone.
func (l *Logger) LogRollback(op string, length int, err error) {
	ctx := context.Background()
	if !l.Enabled(ctx, slog.LevelWarn) {
		return
	}
	l.WarnContext(ctx, "operation rolled back",
		"op", op,
		"len", length,
		"error", err,
	)
}

// LogAllocFailure logs a buffer that could not be obtained.
func (l *Logger) LogAllocFailure(capacity int, err error) {
	ctx := context.Background()
	if !l.Enabled(ctx, slog.LevelWarn) {
		return
	}
	l.WarnContext(ctx, "allocation failed",
		"capacity", capacity,
		"error", err,
	)
}
