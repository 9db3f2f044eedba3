package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeConfigDefaults(t *testing.T) {
	cfg, err := InitializeConfig()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Empty(t, cfg.Catalog.File)
	assert.Equal(t, 1000, cfg.Dedup.Capacity)
	assert.InDelta(t, 0.8, cfg.Dedup.CleanupThreshold, 0.001)
	assert.InDelta(t, 0.6, cfg.Dedup.RetentionFraction, 0.001)
	assert.True(t, cfg.Extraction.FilenameFallback)
	assert.Equal(t, 24, cfg.Extraction.FutureToleranceHours)
	assert.Equal(t, ",", cfg.CSV.Delimiter)
	assert.True(t, cfg.CSV.IncludeHeaders)
}

func TestInitializeConfigEnvOverride(t *testing.T) {
	t.Setenv("RECEIPT_LOG_LEVEL", "debug")
	t.Setenv("RECEIPT_DEDUP_CAPACITY", "250")

	cfg, err := InitializeConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 250, cfg.Dedup.Capacity)
}

func TestValidateConfig(t *testing.T) {
	base := func() *Config {
		cfg, err := InitializeConfig()
		require.NoError(t, err)
		return cfg
	}

	t.Run("Bad log level", func(t *testing.T) {
		cfg := base()
		cfg.Log.Level = "verbose"
		assert.Error(t, validateConfig(cfg))
	})

	t.Run("Bad log format", func(t *testing.T) {
		cfg := base()
		cfg.Log.Format = "xml"
		assert.Error(t, validateConfig(cfg))
	})

	t.Run("Retention must stay below cleanup threshold", func(t *testing.T) {
		cfg := base()
		cfg.Dedup.RetentionFraction = 0.9
		assert.Error(t, validateConfig(cfg))
	})

	t.Run("Delimiter must be one character", func(t *testing.T) {
		cfg := base()
		cfg.CSV.Delimiter = ";;"
		assert.Error(t, validateConfig(cfg))
	})
}

func TestGetEnv(t *testing.T) {
	t.Setenv("RECEIPT_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("RECEIPT_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("RECEIPT_MISSING_KEY", "fallback"))
}
