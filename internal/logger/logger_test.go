package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNew_WritesToFile verifies that New creates the log file inside the
// requested directory and appends JSON entries to it.
func TestNew_WritesToFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	l := New(dir, "shkolo.log", "debug")
	require.NotNil(t, l)

	l.Info().Msg("hello")

	data, err := os.ReadFile(filepath.Join(dir, "shkolo.log"))
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(data, &entry))
	assert.Equal(t, "hello", entry["message"])
}

// TestNew_RunIDField verifies that every entry carries the per-run id.
func TestNew_RunIDField(t *testing.T) {
	var buf bytes.Buffer
	l := New(t.TempDir(), "shkolo.log", "debug")
	l.Logger = l.Output(&buf)

	l.Info().Msg("run id check")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.NotEmpty(t, entry["run_id"])
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNew_LevelFiltering verifies the configured level suppresses lower
// levels and that unknown level names default to warn.
func TestNew_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(t.TempDir(), "shkolo.log", "warn")
	l.Logger = l.Output(&buf)

	l.Debug().Msg("hidden")
	l.Info().Msg("hidden too")
	assert.Empty(t, buf.String())

	l.Warn().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNew_UnknownLevelDefaultsToWarn(t *testing.T) {
	l := New(t.TempDir(), "shkolo.log", "chatty")
	assert.Equal(t, zerolog.WarnLevel, l.GetLevel())
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	require.NotNil(t, l)
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestFromContext_RoundTrip verifies that a logger attached via WithContext
// is returned by FromContext, and that an empty context still yields a
// usable logger.
func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	l := &Logger{zl}

	ctx := l.WithContext(context.Background())
	got := FromContext(ctx)
	require.NotNil(t, got)

	got.Info().Msg("from context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-value", entry["ctx-key"])

	assert.NotNil(t, FromContext(context.Background()))
}
