package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all leadcrm configuration.
type Config struct {
	// API backend settings
	API APIConfig `yaml:"api"`

	// UI settings
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig configures the backend connection.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

// UIConfig configures the terminal UI.
type UIConfig struct {
	DarkMode bool `yaml:"dark_mode"`

	// How often the dashboard re-pulls data, "0" disables it.
	RefreshInterval string `yaml:"refresh_interval"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:8000",
			Timeout: "30s",
		},
		UI: UIConfig{
			DarkMode:        true,
			RefreshInterval: "0",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultDir returns the per-user leadcrm directory (~/.leadcrm).
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".leadcrm"
	}
	return filepath.Join(home, ".leadcrm")
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), "config.yaml")
}

// Load loads configuration from a YAML file. A missing file is not an
// error; defaults apply. A .env file in the working directory and
// LEADCRM_* environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// A missing .env is fine; it is optional.
	_ = godotenv.Load()

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies LEADCRM_* environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if url := os.Getenv("LEADCRM_API_URL"); url != "" {
		c.API.BaseURL = url
	}
	if timeout := os.Getenv("LEADCRM_API_TIMEOUT"); timeout != "" {
		c.API.Timeout = timeout
	}
	if level := os.Getenv("LEADCRM_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if file := os.Getenv("LEADCRM_LOG_FILE"); file != "" {
		c.Logging.File = file
	}
	if dark := os.Getenv("LEADCRM_DARK_MODE"); dark != "" {
		c.UI.DarkMode = dark == "1" || dark == "true"
	}
}

// GetAPITimeout returns the API request timeout as a duration.
func (c *Config) GetAPITimeout() time.Duration {
	d, err := time.ParseDuration(c.API.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// GetRefreshInterval returns the dashboard refresh interval, zero when
// auto refresh is disabled.
func (c *Config) GetRefreshInterval() time.Duration {
	d, err := time.ParseDuration(c.UI.RefreshInterval)
	if err != nil || d < 0 {
		return 0
	}
	return d
}
