package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductionWritesJSONAtInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("production", "", &buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("screen", "properties").Msg("loaded")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "loaded", entry["message"])
	assert.Equal(t, "properties", entry["screen"])
	assert.Equal(t, "estate-admin", entry["app"])
	assert.Equal(t, "production", entry["env"])
}

func TestDevelopmentConsole(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter("development", "", &buf)

	logger.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
	assert.Equal(t, zerolog.DebugLevel, logger.GetLevel())
}

func TestLevelOverride(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, NewWithWriter("development", "WARN", &bytes.Buffer{}).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, NewWithWriter("production", "nonsense", &bytes.Buffer{}).GetLevel())
}
