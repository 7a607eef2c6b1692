package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel_DefaultsToInfo(t *testing.T) {
	assert.Equal(t, "debug", parseLevel("debug").String())
	assert.Equal(t, "info", parseLevel("").String())
	assert.Equal(t, "info", parseLevel("verbose").String())
}

func TestNamed_AddsComponentField(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, "info").Named("api_client")

	l.Error().Str("endpoint", "planes/getPlanes").Msg("request failed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "api_client", entry["component"])
	assert.Equal(t, "planes/getPlanes", entry["endpoint"])
	assert.Equal(t, "error", entry["level"])
}

func TestLevelFiltersLowerEvents(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, "warn")

	l.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}
