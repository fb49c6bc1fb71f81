// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Model backends.
const (
	BackendRules  = "rules"
	BackendGemini = "gemini"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Models
	Backend string `json:"backend,omitempty"` // rules or gemini
	APIKey  string `json:"api_key,omitempty"` // Gemini API key
	Profile string `json:"profile,omitempty"` // Path to YAML extraction profile

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Logging
	LogLevel  string `json:"log_level,omitempty"`
	LogFormat string `json:"log_format,omitempty"` // json or pretty

	// Behavior
	Parallelism   int    `json:"parallelism,omitempty"`    // Concurrent segment extractions (0 = sequential)
	DefaultRegion string `json:"default_region,omitempty"` // Region used to parse phone numbers without a country code
	Verbose       bool   `json:"verbose,omitempty"`        // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables.
// Unset variables leave the corresponding fields empty.
func FromEnv() Config {
	cfg := Config{
		Backend:       os.Getenv("RESUME_BACKEND"),
		APIKey:        os.Getenv("GEMINI_API_KEY"),
		Profile:       os.Getenv("RESUME_PROFILE"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		LogLevel:      os.Getenv("LOG_LEVEL"),
		LogFormat:     os.Getenv("LOG_FORMAT"),
		DefaultRegion: os.Getenv("RESUME_DEFAULT_REGION"),
	}
	if v := os.Getenv("RESUME_PARALLELISM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Parallelism = n
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	switch c.Backend {
	case "", BackendRules, BackendGemini:
	default:
		return fmt.Errorf("config error: unknown backend %q (want %q or %q)", c.Backend, BackendRules, BackendGemini)
	}

	switch c.LogFormat {
	case "", "json", "pretty":
	default:
		return fmt.Errorf("config error: 'log_format' must be json or pretty")
	}

	if c.Parallelism < 0 {
		return fmt.Errorf("config error: 'parallelism' must be non-negative")
	}

	if c.DefaultRegion != "" && len(c.DefaultRegion) != 2 {
		return fmt.Errorf("config error: 'default_region' must be a two-letter region code")
	}

	// Validate file paths exist (if specified)
	if c.Profile != "" {
		if _, err := os.Stat(c.Profile); os.IsNotExist(err) {
			return fmt.Errorf("config error: profile file not found: %s", c.Profile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file and environment values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Backend == "" {
		result.Backend = defaults.Backend
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Profile == "" {
		result.Profile = defaults.Profile
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.LogFormat == "" {
		result.LogFormat = defaults.LogFormat
	}
	if result.DefaultRegion == "" {
		result.DefaultRegion = defaults.DefaultRegion
	}
	if result.Parallelism == 0 {
		result.Parallelism = defaults.Parallelism
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// EffectiveBackend returns the configured backend, defaulting to rules.
func (c *Config) EffectiveBackend() string {
	if c.Backend == "" {
		return BackendRules
	}
	return c.Backend
}
