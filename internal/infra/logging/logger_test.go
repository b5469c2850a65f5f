package logging

import (
	"log/slog"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/runoshun/kipp/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogger_Info(t *testing.T) {
	// Setup
	dir := t.TempDir()
	logger := New(dir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	// Execute
	logger.Info("task", "added [T][ ] buy milk")

	// Verify
	content, err := os.ReadFile(domain.LogPath(dir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO]")
	assert.Contains(t, string(content), "[task]")
	assert.Contains(t, string(content), "added [T][ ] buy milk")
	assert.Equal(t, domain.LogPath(dir), logger.Path())
}

func TestLogger_LevelFiltering(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelWarn) // Only warn and above
	defer func() { _ = logger.Close() }()

	logger.Debug("command", "debug message")
	logger.Info("command", "info message")
	logger.Warn("storage", "warn message")
	logger.Error("storage", "error message")

	content, err := os.ReadFile(domain.LogPath(dir))
	require.NoError(t, err)
	assert.NotContains(t, string(content), "debug message")
	assert.NotContains(t, string(content), "info message")
	assert.Contains(t, string(content), "[WARN] [storage] warn message")
	assert.Contains(t, string(content), "[ERROR] [storage] error message")
}

func TestLogger_DisabledWhenEmptyDir(t *testing.T) {
	logger := New("", slog.LevelDebug)
	defer func() { _ = logger.Close() }()

	// Should not panic or create anything
	logger.Info("task", "test message")
	logger.Error("task", "error message")

	assert.Empty(t, logger.Path())
}

func TestLogger_NoFileUntilFirstEntry(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelError)
	defer func() { _ = logger.Close() }()

	logger.Info("task", "filtered")

	_, err := os.Stat(domain.LogPath(dir))
	assert.True(t, os.IsNotExist(err))
}

func TestLogger_LogFormat(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelInfo)
	defer func() { _ = logger.Close() }()

	logger.Info("storage", `saved 2 tasks to "kipp.json"`)
	logger.Warn("storage", "load failed")

	content, err := os.ReadFile(domain.LogPath(dir))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	require.Len(t, lines, 2)

	// [timestamp] [INFO] [storage] message
	pattern := regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] \[INFO\] \[storage\] saved 2 tasks to "kipp.json"$`)
	assert.Regexp(t, pattern, lines[0])
	assert.Contains(t, lines[1], "[WARN] [storage] load failed")
}

func TestLogger_CloseReopens(t *testing.T) {
	dir := t.TempDir()
	logger := New(dir, slog.LevelInfo)

	logger.Info("task", "first")
	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())
	logger.Info("task", "second")
	require.NoError(t, logger.Close())

	content, err := os.ReadFile(domain.LogPath(dir))
	require.NoError(t, err)
	assert.Contains(t, string(content), "first")
	assert.Contains(t, string(content), "second")
}
