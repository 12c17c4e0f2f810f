package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggerFormatsMessages(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	log := NewFromZap(zap.New(core))

	log.Info("cart %s has %d items", "abc", 2)
	log.Warn("slow storage: %v", "redis")
	log.With("session", "abc").Error("failed: %v", "boom")

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "cart abc has 2 items", entries[0].Message)
	assert.Equal(t, zap.WarnLevel, entries[1].Level)
	assert.Equal(t, "failed: boom", entries[2].Message)
	assert.Equal(t, "abc", entries[2].ContextMap()["session"])
}

func TestParseLevel(t *testing.T) {
	lvl, err := parseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zap.InfoLevel, lvl)

	lvl, err = parseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, zap.WarnLevel, lvl)

	_, err = parseLevel("verbose")
	assert.Error(t, err)
}
