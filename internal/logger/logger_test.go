package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Disabled(t *testing.T) {
	var out bytes.Buffer
	Init(Options{Enabled: false, Output: &out})
	Error("should not appear")
	assert.Empty(t, out.String())
}

func TestInit_TextLevel(t *testing.T) {
	var out bytes.Buffer
	Init(Options{Enabled: true, Level: slog.LevelWarn, Output: &out})
	t.Cleanup(func() { Init(Options{}) })

	Info("hidden")
	Warn("shown", "k", 1)
	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "shown")
	assert.Contains(t, out.String(), "k=1")
}

func TestInit_JSON(t *testing.T) {
	var out bytes.Buffer
	Init(Options{Enabled: true, Level: slog.LevelDebug, JSON: true, Output: &out})
	t.Cleanup(func() { Init(Options{}) })

	Debug("arena", "size", 64)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &rec))
	assert.Equal(t, "arena", rec["msg"])
	assert.InDelta(t, 64, rec["size"], 0)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseLevel("trace")
	assert.Error(t, err)
}
