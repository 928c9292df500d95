package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/abhisek/persona/internal/config"
)

func TestNew_NoFileIsNop(t *testing.T) {
	log, closeFn, err := New(config.LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zap.ErrorLevel))
	assert.NoError(t, closeFn())
}

func TestNew_WritesFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "logs", "persona.log")

	log, closeFn, err := New(config.LogConfig{File: p, Level: "info", Format: "console"})
	require.NoError(t, err)
	log.Info("answer recorded", zap.Int("page", 2))
	log.Debug("hidden")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Contains(t, string(data), "answer recorded")
	assert.NotContains(t, string(data), "hidden")
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := newWithWriter(config.LogConfig{Level: "debug", Format: "json"}, &buf)
	require.NoError(t, err)

	log.Debug("image loaded", zap.String("url", "https://example.com/a.png"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "image loaded", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "https://example.com/a.png", entry["url"])
}

func TestNewWithWriter_BadLevel(t *testing.T) {
	_, err := newWithWriter(config.LogConfig{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)
}
