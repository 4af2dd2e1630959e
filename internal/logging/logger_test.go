package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesFileAndCapture(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	path := filepath.Join(t.TempDir(), "logs", "gauge.log")
	cleanup, err := Init(path, "debug")
	require.NoError(t, err)

	slog.Debug("debug only in file")
	slog.Info("Serial reader started", "port", "COM4")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "debug only in file")
	assert.Contains(t, string(data), "Serial reader started")

	last := Capture.LastLine()
	assert.Contains(t, last, "Serial reader started")
	assert.Contains(t, last, "port=COM4")
	assert.NotContains(t, last, "time=")
}

func TestInit_NoFile(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	cleanup, err := Init("", "info")
	require.NoError(t, err)
	defer cleanup()

	slog.Debug("hidden")
	slog.Warn("Skipping malformed line")
	assert.Contains(t, Capture.LastLine(), "Skipping malformed line")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("Error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}
