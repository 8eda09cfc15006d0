package markbook

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with markbook-specific context.
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

// WithKey adds the storage key field to the logger.
func (l *Logger) WithKey(key string) *Logger {
	return &Logger{
		Logger: l.Logger.With("key", key),
	}
}

// LogSort logs a fuzzy reorder of the book.
func (l *Logger) LogSort(ctx context.Context, query string, count int) {
	l.DebugContext(ctx, "sorted students",
		"query", query,
		"count", count,
	)
}

// LogRecordMarks logs a marks assignment to the top record.
func (l *Logger) LogRecordMarks(ctx context.Context, student string, id RecordID, err error) {
	if err != nil {
		l.ErrorContext(ctx, "failed recording marks",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "recorded marks",
			"student", student,
			"record_id", id,
		)
	}
}

// LogSave logs a snapshot save.
func (l *Logger) LogSave(ctx context.Context, key string, size int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "save failed",
			"key", key,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "snapshot saved",
			"key", key,
			"bytes", size,
		)
	}
}

// LogLoad logs a snapshot load.
func (l *Logger) LogLoad(ctx context.Context, key string, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "load failed",
			"key", key,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "snapshot loaded",
			"key", key,
			"records", count,
		)
	}
}

// LogClear logs a wholesale clear of the book.
func (l *Logger) LogClear(ctx context.Context, dropped int) {
	l.InfoContext(ctx, "cleared records",
		"dropped", dropped,
	)
}
