package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat tradepost configuration.
type Config struct {
	Version string `json:"version"`
	// DataDir holds the price database. Empty means the default
	// ~/.tradepost directory.
	DataDir string `json:"data_dir,omitempty"`
	// WaitTimeoutSeconds bounds how long commands wait for the store to
	// open and for lookups to finish. Zero means the default.
	WaitTimeoutSeconds int `json:"wait_timeout_seconds,omitempty"`
	// NonSellable maps output names the market does not trade to their
	// nominal sell price.
	NonSellable map[string]int64 `json:"non_sellable,omitempty"`
}

// DefaultWaitTimeoutSeconds is applied when the config does not set one.
const DefaultWaitTimeoutSeconds = 10

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Version:            "1",
		WaitTimeoutSeconds: DefaultWaitTimeoutSeconds,
		NonSellable: map[string]int64{
			"Soul Lantern": 1,
		},
	}
}

// Load reads .tradepost/config.json from the specified directory.
// Returns error if no config found - caller should handle accordingly.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ".tradepost", "config.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.WaitTimeoutSeconds <= 0 {
		cfg.WaitTimeoutSeconds = DefaultWaitTimeoutSeconds
	}

	return &cfg, nil
}

// Save writes config.json to the directory.
func Save(dir string, cfg *Config) error {
	confDir := filepath.Join(dir, ".tradepost")
	if err := os.MkdirAll(confDir, 0755); err != nil {
		return fmt.Errorf("failed to create .tradepost dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(confDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DBPath returns the price database path for the given configuration.
func (c *Config) DBPath() (string, error) {
	dir := c.DataDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".tradepost")
	}
	return filepath.Join(dir, "prices.db"), nil
}
