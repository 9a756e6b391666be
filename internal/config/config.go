package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the runtime settings for mediar. The TMDB key can come
// from the config file or the TMDB_API_TOKEN environment variable; the
// loaded value is handed to the catalog client explicitly so that nothing
// deeper in the call tree touches process globals.
type Config struct {
	TMDBAPIKey       string  `json:"tmdb_api_key"`
	TMDBLanguage     string  `json:"tmdb_language"`
	MinPopularity    float64 `json:"min_popularity"`
	EnableLogging    bool    `json:"enable_logging"`
	LogRetentionDays int     `json:"log_retention_days"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		TMDBLanguage:     "en-US",
		MinPopularity:    1.0,
		EnableLogging:    true,
		LogRetentionDays: 30,
	}
}

// Path returns the path to the config file
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".mediar", "config.json"), nil
}

// Load reads the configuration from disk, falling back to defaults when
// no file exists, and applies the environment override for the API token.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Fill in any missing fields with defaults
	defaults := Default()
	if cfg.TMDBLanguage == "" {
		cfg.TMDBLanguage = defaults.TMDBLanguage
	}
	if cfg.MinPopularity == 0 {
		cfg.MinPopularity = defaults.MinPopularity
	}
	if cfg.LogRetentionDays == 0 {
		cfg.LogRetentionDays = defaults.LogRetentionDays
	}

	if token := os.Getenv("TMDB_API_TOKEN"); token != "" {
		cfg.TMDBAPIKey = token
	}

	return cfg, nil
}
