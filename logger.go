package seedselect

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with seedselect-specific context.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithName adds the selection context name to the logger.
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("name", name),
	}
}

// WithSeq adds a sequence number field to the logger.
func (l *Logger) WithSeq(seq uint64) *Logger {
	return &Logger{
		Logger: l.Logger.With("seq", seq),
	}
}

// LogSelect logs a completed selection. Failures are returned to the caller
// and not logged here.
func (l *Logger) LogSelect(ctx context.Context, candidates, n int, elapsed time.Duration) {
	l.DebugContext(ctx, "selection completed",
		"candidates", candidates,
		"n", n,
		"elapsed", elapsed,
	)
}
