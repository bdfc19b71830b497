package keyspan

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with keyspan-specific context.
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
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithTable adds a table field to the logger (useful for tagging a diff).
func (l *Logger) WithTable(table string) *Logger {
	return &Logger{
		Logger: l.Logger.With("table", table),
	}
}

// WithCount adds a checkpoint-count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogPartition logs a range-partitioning operation.
func (l *Logger) LogPartition(ctx context.Context, start, end string, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "partition failed",
			"start", start,
			"end", end,
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "partition completed",
			"start", start,
			"end", end,
			"count", count,
		)
	}
}

// LogWalk logs a segment walk.
func (l *Logger) LogWalk(ctx context.Context, segments, parallelism int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "segment walk failed",
			"segments", segments,
			"parallelism", parallelism,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "segment walk completed",
			"segments", segments,
			"parallelism", parallelism,
		)
	}
}
