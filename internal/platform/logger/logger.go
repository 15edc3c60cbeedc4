// Package logger provides structured logging functionality for the application.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/cropsim/internal/config"
)

// ParseLevel converts a configured level name (case-insensitive) to a slog
// level. The second result is false for unknown names, in which case
// slog.LevelInfo is returned.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

// New creates a structured logger writing to out with the configured level
// and format. An invalid level falls back to info and logs a warning through
// the new logger.
func New(out io.Writer, cfg config.LogConfig) (*slog.Logger, error) {
	level, ok := ParseLevel(cfg.Level)

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "", "json":
		handler = slog.NewJSONHandler(out, opts)
	case "text":
		handler = slog.NewTextHandler(out, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	logger := slog.New(handler)
	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.Level,
			"default_level", "info")
	}

	return logger, nil
}

// Setup initializes the application's logging system. It creates a logger
// writing to out, normally stderr so stdout stays reserved for command
// output, and sets it as the default logger for the application. A nil out
// means os.Stderr.
func Setup(out io.Writer, cfg config.LogConfig) (*slog.Logger, error) {
	if out == nil {
		out = os.Stderr
	}

	logger, err := New(out, cfg)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(logger)

	return logger, nil
}
