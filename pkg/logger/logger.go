// Package logger builds the debug logger shared by the client packages.
//
// The terminal UI owns stdout, so logs never go there: they are written to a file chosen
// with --log-file, or discarded when none is set.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options selects where and how much to log.
type Options struct {
	Path  string
	Level string
}

// New constructs a text slog logger writing to opts.Path. The returned close function
// must be called on shutdown; it is a no-op when logging is discarded.
func New(opts Options) (*slog.Logger, func() error, error) {
	if strings.TrimSpace(opts.Path) == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}

	//nolint:gosec // Log path is chosen by the user on the command line
	file, err := os.OpenFile(opts.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	return NewWithWriter(file, opts.Level), file.Close, nil
}

// NewWithWriter constructs a text slog logger writing to w.
func NewWithWriter(w io.Writer, level string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	return slog.New(handler).With("service", "summarize")
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
