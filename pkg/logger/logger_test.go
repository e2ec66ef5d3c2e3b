package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, WarnLevel, ParseLevel(" WARNING "))
	assert.Equal(t, ErrorLevel, ParseLevel("Error"))
	assert.Equal(t, InfoLevel, ParseLevel("verbose"))
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "warn")
	l.now = func() time.Time { return time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC) }

	l.Info("hidden %d", 1)
	l.Warn("shown %d", 2)
	l.Error("also shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[2025-01-15T09:00:00.000Z] WARN: shown 2")
	assert.Contains(t, out, "ERROR: also shown")
}

func TestLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	l, err := New(path, "info")
	require.NoError(t, err)
	l.Info("hello %s", "file")
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "INFO: hello file")
}
