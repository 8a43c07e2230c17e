package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, ":5000", cfg.Addr)
	assert.Equal(t, 3, cfg.Trigger.MinUserTurns)
	assert.Equal(t, 5, cfg.Trigger.Interval)
	assert.Equal(t, 10, cfg.HistoryWindow)
	require.NoError(t, cfg.Validate())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SAGE_ADDR", ":8080")
	t.Setenv("SAGE_ANALYZE_MIN_TURNS", "2")
	t.Setenv("SAGE_ANALYZE_INTERVAL", "4")
	t.Setenv("SAGE_HISTORY_WINDOW", "20")
	t.Setenv("SAGE_DB", "/tmp/sage-test.db")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 2, cfg.Trigger.MinUserTurns)
	assert.Equal(t, 4, cfg.Trigger.Interval)
	assert.Equal(t, 20, cfg.HistoryWindow)
	assert.Equal(t, "/tmp/sage-test.db", cfg.DBPath)
}

func TestLoad_IgnoresMalformedInts(t *testing.T) {
	t.Setenv("SAGE_ANALYZE_INTERVAL", "often")

	cfg := Load()
	assert.Equal(t, 5, cfg.Trigger.Interval)
}

func TestValidate_RejectsBadTuning(t *testing.T) {
	cfg := Load()
	cfg.Trigger.Interval = 0
	assert.Error(t, cfg.Validate())

	cfg = Load()
	cfg.HistoryWindow = -1
	assert.Error(t, cfg.Validate())
}
