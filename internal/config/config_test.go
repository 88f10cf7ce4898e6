package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("API_KEYS", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, 10, cfg.DBMaxConns)
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "live_events", cfg.LiveEventsChannel)
	assert.Equal(t, 10, cfg.LiveLogCapacity)
	assert.Equal(t, "SOS", cfg.DefaultWorkflowCategory)
	assert.Equal(t, 3, cfg.DispatchMaxRetries)
	assert.Equal(t, time.Second, cfg.DispatchBaseDelay)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Nil(t, cfg.APIKeys)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("LIVE_LOG_CAPACITY", "25")
	t.Setenv("DEFAULT_WORKFLOW_CATEGORY", "medical")
	t.Setenv("DISPATCH_TIMEOUT", "2s")
	t.Setenv("API_KEYS", " key-1 , ,key-2")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, 25, cfg.LiveLogCapacity)
	assert.Equal(t, "MEDICAL", cfg.DefaultWorkflowCategory)
	assert.Equal(t, 2*time.Second, cfg.DispatchTimeout)
	assert.Equal(t, []string{"key-1", "key-2"}, cfg.APIKeys)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	t.Run("zero capacity", func(t *testing.T) {
		t.Setenv("LIVE_LOG_CAPACITY", "0")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "LIVE_LOG_CAPACITY")
	})

	t.Run("zero pool size", func(t *testing.T) {
		t.Setenv("DB_MAX_CONNS", "0")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "DB_MAX_CONNS")
	})

	t.Run("zero retries", func(t *testing.T) {
		t.Setenv("DISPATCH_MAX_RETRIES", "0")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, "DISPATCH_MAX_RETRIES")
	})
}
