package logger

import (
	"log/slog"
	"os"
)

// Logger wraps slog with a Fatal helper.
type Logger struct {
	*slog.Logger
}

// New creates a Logger writing text logs to stdout at the given level.
func New(level slog.Level) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})),
	}
}

// Fatal is equivalent to Error followed by os.Exit(1).
func (l *Logger) Fatal(msg string, args ...any) {
	l.Logger.Error(msg, args...)
	os.Exit(1)
}
