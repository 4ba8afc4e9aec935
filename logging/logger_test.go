package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		raw  string
		want slog.Level
	}{
		{raw: "debug", want: slog.LevelDebug},
		{raw: " WARN ", want: slog.LevelWarn},
		{raw: "warning", want: slog.LevelWarn},
		{raw: "error", want: slog.LevelError},
		{raw: "", want: slog.LevelInfo},
		{raw: "verbose", want: slog.LevelInfo},
	}

	for _, testCase := range tests {
		t.Run(testCase.raw, func(t *testing.T) {
			assert.Equal(t, testCase.want, ParseLevel(testCase.raw))
		})
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "visit-svc", Config{Level: "info", Format: "json"})

	logger.Debug("hidden")
	logger.Info("visit created", slog.Int("visit_id", 7))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visit created", entry["msg"])
	assert.Equal(t, "visit-svc", entry["service"])
	assert.EqualValues(t, 7, entry["visit_id"])
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "settlement-svc", Config{Format: "text"})

	logger.Warn("lagging")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "service=settlement-svc")
}
