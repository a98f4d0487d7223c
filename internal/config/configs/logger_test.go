package configs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARNING", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"info+2", slog.LevelInfo + 2},
		{"loud", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Logger{Level: tt.in}.SlogLevel(), tt.in)
	}
}

func TestLoggerHandler(t *testing.T) {
	var buf bytes.Buffer
	slog.New(Logger{Level: "warn", Format: "JSON"}.Handler(&buf)).Info("dropped")
	assert.Empty(t, buf.String())

	slog.New(Logger{Level: "warn", Format: "JSON"}.Handler(&buf)).Warn("kept", "k", 1)
	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	delete(rec, "time")
	assert.Equal(t, map[string]any{"level": "WARN", "msg": "kept", "k": 1.0}, rec)
}
