// Package logging configures the application logger. Output goes to a log
// file when one is configured, otherwise to the given writer.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// New creates a text logger writing to w at the given level.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewFile creates a logger appending to the given file. The returned close
// function flushes and releases the file.
func NewFile(path string, level slog.Level) (*slog.Logger, func() error, error) {
	// G302: log files are append-only and readable by repository users
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return New(f, level), f.Close, nil
}
