package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/katalvlaran/querk/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level logging.Level
		want  string
	}{
		{logging.LevelDebug, "DEBUG"},
		{logging.LevelInfo, "INFO"},
		{logging.LevelWarn, "WARN"},
		{logging.LevelError, "ERROR"},
		{logging.Level(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]logging.Level{
		"debug":   logging.LevelDebug,
		"INFO":    logging.LevelInfo,
		"":        logging.LevelInfo,
		" warn ":  logging.LevelWarn,
		"warning": logging.LevelWarn,
		"Error":   logging.LevelError,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("verbose")
	assert.ErrorIs(t, err, logging.ErrUnknownLevel)
}

func TestNew_TextFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Config{Level: logging.LevelWarn, Output: &buf})

	log.Info("hidden")
	log.Warn("shown", "node", 7)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "node=7")
}

func TestNew_JSONWithService(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New(logging.Config{Level: logging.LevelDebug, JSON: true, Service: "querk", Output: &buf})
	log.Debug("batch", "nodes", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "batch", rec["msg"])
	assert.Equal(t, "querk", rec["service"])
	assert.Equal(t, float64(3), rec["nodes"])
}

func TestDiscard(t *testing.T) {
	log := logging.Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
	log.Error("dropped")
}
