package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "production", "info")

	l.Debug("hidden")
	l.Info("contact submission received", "field", "name")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "contact submission received", entry["msg"])
	assert.Equal(t, "name", entry["field"])
	assert.Equal(t, "portfolio-contact-backend", entry["service"])
}

func TestNew_DevelopmentWritesText(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "development", "debug")

	l.Debug("composing emails")

	assert.Contains(t, buf.String(), "msg=\"composing emails\"")
	assert.Contains(t, buf.String(), "level=DEBUG")
}
