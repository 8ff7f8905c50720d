package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deskcalc/internal/config"
)

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo}, // defaults to info
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFromString(tt.in))
		})
	}
}

func TestNew_StderrWritesJSONAboveLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closer := New(config.LoggingConfig{Level: "warn", Output: config.OutputStderr}, &buf)
	defer closer.Close()

	logger.Info("hidden")
	logger.Warn("shown", slog.String("key", "C"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &rec))
	assert.Equal(t, "shown", rec["msg"])
	assert.Equal(t, "C", rec["key"])
}

func TestNew_FileOutputGoesThroughRotator(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "deskcalc.log")
	logger, closer := New(config.LoggingConfig{
		Level:    "debug",
		Output:   config.OutputFile,
		Filename: path,
		MaxSize:  1,
	}, nil)

	logger.Debug("evaluated", slog.String("expression", "2+2"))
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"expression":"2+2"`)
}

func TestNew_DiscardWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := New(config.LoggingConfig{Level: "debug", Output: config.OutputDiscard}, &buf)
	logger.Error("nothing")
	assert.Zero(t, buf.Len())
}
