// Package logger_test contains tests for the logger package
package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/phrazzld/cropsim/internal/config"
	"github.com/phrazzld/cropsim/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected slog.Level
		ok       bool
	}{
		{"debug", "debug", slog.LevelDebug, true},
		{"upper_case", "WARN", slog.LevelWarn, true},
		{"error", "error", slog.LevelError, true},
		{"info", "info", slog.LevelInfo, true},
		{"unknown_falls_back", "chatty", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, ok := logger.ParseLevel(tt.input)
			assert.Equal(t, tt.expected, level)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	t.Parallel()
	buf := &logger.TestLogBuffer{}

	log, err := logger.New(buf, config.LogConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown", "crop", "wheat")

	assert.NotContains(t, buf.String(), "hidden")
	logger.AssertLogField(t, buf, "msg", "shown")
	logger.AssertLogField(t, buf, "crop", "wheat")
}

func TestNew_TextFormat(t *testing.T) {
	t.Parallel()
	buf := &logger.TestLogBuffer{}

	log, err := logger.New(buf, config.LogConfig{Level: "info", Format: "text"})
	require.NoError(t, err)

	log.Info("catalog loaded", "crops", 6)
	logger.AssertLogContains(t, buf, "msg=\"catalog loaded\" crops=6")
}

func TestNew_InvalidLevelWarns(t *testing.T) {
	t.Parallel()
	buf := &logger.TestLogBuffer{}

	log, err := logger.New(buf, config.LogConfig{Level: "invalid_level", Format: "json"})
	require.NoError(t, err)
	require.NotNil(t, log)

	logger.AssertLogContains(t, buf, "invalid log level configured")
	logger.AssertLogField(t, buf, "configured_level", "invalid_level")
	logger.AssertLogField(t, buf, "default_level", "info")
}

func TestNew_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := logger.New(&logger.TestLogBuffer{}, config.LogConfig{Level: "info", Format: "xml"})
	assert.Error(t, err)
}

func TestSetup(t *testing.T) {
	original := slog.Default()
	defer slog.SetDefault(original)

	buf := &logger.TestLogBuffer{}
	log, err := logger.Setup(buf, config.LogConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)
	require.NotNil(t, log)
	assert.Equal(t, log, slog.Default())
	assert.True(t, log.Enabled(context.Background(), slog.LevelDebug))

	slog.Debug("routed through the default logger")
	logger.AssertLogContains(t, buf, "routed through the default logger")
}

func TestFromContextOrDefault(t *testing.T) {
	t.Parallel()
	defaultLogger := slog.Default()
	customLogger, _ := logger.GetTestLogger(t)

	tests := []struct {
		name     string
		ctx      context.Context
		expected *slog.Logger
	}{
		{
			name:     "nil_context_returns_default",
			ctx:      nil,
			expected: defaultLogger,
		},
		{
			name:     "context_without_logger_returns_default",
			ctx:      context.Background(),
			expected: defaultLogger,
		},
		{
			name:     "context_with_logger_returns_context_logger",
			ctx:      logger.WithLogger(context.Background(), customLogger),
			expected: customLogger,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := logger.FromContextOrDefault(tt.ctx, defaultLogger)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	t.Run("valid_logger", func(t *testing.T) {
		customLogger, _ := logger.GetTestLogger(t)
		ctx := logger.WithLogger(context.Background(), customLogger)
		assert.Equal(t, customLogger, logger.FromContext(ctx))
	})

	t.Run("nil_logger_panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.WithLogger(context.Background(), nil)
		})
	})
}

func TestTestLogBuffer_Entries(t *testing.T) {
	t.Parallel()
	log, buf := logger.GetTestLogger(t)

	log.Debug("first", "n", 1)
	log.Error("second")

	entries, err := buf.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "DEBUG", entries[0]["level"])
	assert.Equal(t, float64(1), entries[0]["n"])
	assert.Equal(t, "ERROR", entries[1]["level"])

	buf.Reset()
	assert.Empty(t, buf.String())
}
