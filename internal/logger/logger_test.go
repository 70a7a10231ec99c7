package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zerolog.InfoLevel, parseLevel("bogus"))
}

func TestNew_JSONCarriesComponent(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Format: "json", Component: "fetch", Writer: &buf})
	log.Info().Str("barcode", "123").Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "fetch", line["component"])
	assert.Equal(t, "123", line["barcode"])
	assert.Equal(t, "hello", line["message"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Format: "json", Level: "error", Writer: &buf})
	log.Info().Msg("dropped")
	assert.Empty(t, buf.String())
}
