package xlogger

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	logger := New(Config{Level: "info"})
	assert.NotNil(t, logger)
	assert.IsType(t, &slog.TextHandler{}, logger.Handler())
}

func TestNewWithWriter(t *testing.T) {
	t.Run("json handler", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(Config{Level: "debug", LogType: "json"}, &buf)
		assert.IsType(t, &slog.JSONHandler{}, logger.Handler())

		logger.Debug("subset search finished", "fit_count", 4)

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "subset search finished", record["msg"])
		assert.Equal(t, float64(4), record["fit_count"])
	})

	t.Run("text handler filters by level", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(Config{Level: "warn", LogType: "text"}, &buf)

		logger.Info("dropped")
		assert.Empty(t, buf.String())

		logger.Warn("kept", "file", "input.json")
		assert.Contains(t, buf.String(), "msg=kept")
		assert.Contains(t, buf.String(), "file=input.json")
	})

	t.Run("off discards everything", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewWithWriter(Config{Level: "off"}, &buf)

		logger.Error("dropped")
		assert.Empty(t, buf.String())
	})
}

func TestIsOff(t *testing.T) {
	assert.True(t, isOff("off"))
	assert.True(t, isOff("NONE"))
	assert.True(t, isOff("disabled"))
	assert.False(t, isOff("error"))
	assert.False(t, isOff(""))
}

func TestGetLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		expected slog.Level
	}{
		{
			name:     "Debug level",
			logLevel: "debug",
			expected: slog.LevelDebug,
		},
		{
			name:     "Info level",
			logLevel: "info",
			expected: slog.LevelInfo,
		},
		{
			name:     "Warn level",
			logLevel: "warn",
			expected: slog.LevelWarn,
		},
		{
			name:     "Error level",
			logLevel: "error",
			expected: slog.LevelError,
		},
		{
			name:     "Default level for unknown input",
			logLevel: "unknown",
			expected: slog.LevelInfo,
		},
		{
			name:     "Case insensitive level",
			logLevel: "DEBUG",
			expected: slog.LevelDebug,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, getLogLevel(tt.logLevel))
		})
	}
}

func TestGetHandler(t *testing.T) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	assert.IsType(t, &slog.JSONHandler{}, getHandler("json", io.Discard, opts))
	assert.IsType(t, &slog.TextHandler{}, getHandler("text", io.Discard, opts))
	assert.IsType(t, &slog.TextHandler{}, getHandler("unknown", io.Discard, opts))
}

func TestReplaceAttr(t *testing.T) {
	source := &slog.Source{
		File: "/home/build/go/src/github.com/vitalvas/secretfinder/shamir/search.go",
		Line: 42,
	}

	tests := []struct {
		name     string
		conf     Config
		attr     slog.Attr
		expected slog.Attr
	}{
		{
			name:     "Trim source path prefix",
			conf:     Config{SourcePath: "/home/build/go/src/github.com/vitalvas/secretfinder/"},
			attr:     slog.Any(slog.SourceKey, source),
			expected: slog.String(slog.SourceKey, "shamir/search.go:42"),
		},
		{
			name:     "Trim source path infix",
			conf:     Config{SourcePath: "github.com/vitalvas/secretfinder/"},
			attr:     slog.Any(slog.SourceKey, source),
			expected: slog.String(slog.SourceKey, "shamir/search.go:42"),
		},
		{
			name:     "Keep full path without source path",
			conf:     Config{},
			attr:     slog.Any(slog.SourceKey, source),
			expected: slog.String(slog.SourceKey, "/home/build/go/src/github.com/vitalvas/secretfinder/shamir/search.go:42"),
		},
		{
			name:     "Non-source attribute remains unchanged",
			conf:     Config{},
			attr:     slog.String("file", "input.json"),
			expected: slog.String("file", "input.json"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := replaceAttr(tt.conf)(nil, tt.attr)
			assert.True(t, tt.expected.Equal(result), "got %s", result)
		})
	}
}
