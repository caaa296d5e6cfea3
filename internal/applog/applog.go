// Package applog provides the shared diagnostic logger. Persistence and
// audit failures are logged here and swallowed; they never reach the user.
package applog

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with a component attribute.
type Logger struct {
	*slog.Logger
}

// New creates a Logger writing text records to w at the given level.
func New(w io.Writer, level slog.Level) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{Logger: slog.New(handler)}
}

// Default returns a Logger writing to stderr at Info level.
func Default() *Logger {
	return New(os.Stderr, slog.LevelInfo)
}

// Discard returns a Logger that drops all records. Used in tests.
func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// WithComponent returns a Logger tagged with a component name.
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{Logger: l.Logger.With("component", component)}
}
