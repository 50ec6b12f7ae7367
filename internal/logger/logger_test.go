package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	old := slog.Default()
	defer slog.SetDefault(old)

	log := Setup(NewConfig("debug", "json", false), &buf)
	log.Debug("loot rolled", "item", "Rat tail")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "loot rolled", entry["msg"])
	assert.Equal(t, "Rat tail", entry["item"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	old := slog.Default()
	defer slog.SetDefault(old)

	log := Setup(NewConfig("warn", "text", false), &buf)
	log.Info("quiet")
	log.Warn("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestSessionIDContext(t *testing.T) {
	ctx := context.Background()

	_, ok := SessionIDFromContext(ctx)
	assert.False(t, ok)

	id := NewSessionID()
	ctx = WithSessionID(ctx, id)

	got, ok := SessionIDFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestFromContextCarriesSessionID(t *testing.T) {
	var buf bytes.Buffer
	old := slog.Default()
	defer slog.SetDefault(old)

	Setup(NewConfig("info", "json", false), &buf)
	ctx := WithSessionID(context.Background(), "abc-123")

	FromContext(ctx).Info("moved")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc-123", entry["session_id"])
}

func TestConfigDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
	assert.False(t, cfg.IsJSON())

	assert.Equal(t, slog.LevelDebug, NewConfig("DEBUG", "JSON", false).LogLevel())
	assert.True(t, NewConfig("info", "JSON", false).IsJSON())
	assert.Equal(t, slog.LevelInfo, NewConfig("bogus", "text", false).LogLevel())
}
