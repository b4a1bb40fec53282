package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("info"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden too")
	logger.Warn("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestNewFile_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskgrid.log")

	logger, closeFn, err := NewFile(path, slog.LevelInfo)
	require.NoError(t, err)
	logger.Info("first run")
	require.NoError(t, closeFn())

	logger, closeFn, err = NewFile(path, slog.LevelInfo)
	require.NoError(t, err)
	logger.Info("second run")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "first run")
	assert.Contains(t, string(data), "second run")
}

func TestNewFile_BadPathFails(t *testing.T) {
	_, _, err := NewFile(filepath.Join(t.TempDir(), "missing", "taskgrid.log"), slog.LevelInfo)
	assert.Error(t, err)
}
