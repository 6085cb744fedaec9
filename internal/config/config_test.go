package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.True(t, cfg.UI.DarkMode)
	assert.Equal(t, 30*time.Second, cfg.GetAPITimeout())
	assert.Equal(t, time.Duration(0), cfg.GetRefreshInterval())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().API.BaseURL, cfg.API.BaseURL)
}

func TestLoadReadsYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("api:\n  base_url: https://crm.example.com\n  timeout: 5s\nlogging:\n  level: debug\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://crm.example.com", cfg.API.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.GetAPITimeout())
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api: [not a map"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("LEADCRM_API_URL overrides file value", func(t *testing.T) {
		t.Setenv("LEADCRM_API_URL", "http://10.0.0.5:9000")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "http://10.0.0.5:9000", cfg.API.BaseURL)
	})

	t.Run("LEADCRM_LOG_LEVEL overrides level", func(t *testing.T) {
		t.Setenv("LEADCRM_LOG_LEVEL", "debug")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("LEADCRM_DARK_MODE accepts 1 and true", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.UI.DarkMode = false

		t.Setenv("LEADCRM_DARK_MODE", "1")
		cfg.applyEnvOverrides()
		assert.True(t, cfg.UI.DarkMode)

		t.Setenv("LEADCRM_DARK_MODE", "false")
		cfg.applyEnvOverrides()
		assert.False(t, cfg.UI.DarkMode)
	})

	t.Run("empty env leaves config alone", func(t *testing.T) {
		t.Setenv("LEADCRM_API_URL", "")

		cfg := DefaultConfig()
		cfg.applyEnvOverrides()

		assert.Equal(t, "http://localhost:8000", cfg.API.BaseURL)
	})
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.API.BaseURL = "https://crm.internal"
	cfg.UI.RefreshInterval = "2m"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://crm.internal", loaded.API.BaseURL)
	assert.Equal(t, 2*time.Minute, loaded.GetRefreshInterval())
}

func TestBadDurationFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.API.Timeout = "soon"
	cfg.UI.RefreshInterval = "whenever"

	assert.Equal(t, 30*time.Second, cfg.GetAPITimeout())
	assert.Equal(t, time.Duration(0), cfg.GetRefreshInterval())
}
