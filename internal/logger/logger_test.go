package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(" INFO "))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(""))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("chatty"))
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, "warn")

	l.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	l.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewFromFile_WritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "argonpass.log")
	l := NewFromFile(path, "info")
	l.Info().Int("length", 20).Msg("generated")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "argonpass", entry["role"])
	assert.Equal(t, "generated", entry["message"])
	assert.EqualValues(t, 20, entry["length"])
}

func TestNop(t *testing.T) {
	require.NotNil(t, Nop())
	Nop().Error().Msg("discarded")
}
