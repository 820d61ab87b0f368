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
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelWarn},
		{"loud", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_TextLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, closeFn := New(&buf, Options{Level: "info"})
	defer func() { _ = closeFn() }()

	logger.Debug("hidden")
	logger.Info("shown", "segments", 2)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "segments=2")
}

func TestNew_Verbose(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := New(&buf, Options{Level: "error", Verbose: true})

	logger.Debug("rescanned")
	assert.Contains(t, buf.String(), "rescanned")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := New(&buf, Options{Level: "debug", Format: "json"})

	logger.Debug("script rescanned", "bytes", 10)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "script rescanned", rec["msg"])
	assert.Equal(t, float64(10), rec["bytes"])
}

func TestNew_File(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "sqlseg.log")

	logger, closeFn := New(&buf, Options{Level: "info", File: path})
	logger.With("file", "a.sql").Info("split done")
	require.NoError(t, closeFn())

	assert.Contains(t, buf.String(), "split done")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &rec))
	assert.Equal(t, "split done", rec["msg"])
	assert.Equal(t, "a.sql", rec["file"])
}
