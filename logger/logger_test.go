package logger

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "warn", Format: "json"}, &buf)
	require.NoError(t, err)

	log.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	log.Warn().Int("horizon", 0).Msg("rejected")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "warn", line["level"])
	assert.Equal(t, "rejected", line["message"])
	assert.EqualValues(t, 0, line["horizon"])
	assert.Contains(t, line, "time")
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "debug", Format: "console"}, &buf)
	require.NoError(t, err)

	log.Debug().Str("function", "predict").Msg("call")
	assert.Contains(t, buf.String(), "call")
	assert.Contains(t, buf.String(), "function=")
}

func TestNewInvalidLevel(t *testing.T) {
	_, err := New(Config{Level: "loud"}, &bytes.Buffer{})
	assert.Error(t, err)
}
