// Package config holds runtime configuration for the match agent. Values
// come from an optional JSON file, environment variables, and CLI flags;
// flags win over the file, the file wins over defaults.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
)

// Defaults.
const (
	DefaultTimeoutSeconds = 55
	DefaultPort           = 8080
)

// APIKeyEnv is the environment variable consulted when no API key is
// configured explicitly.
const APIKeyEnv = "GEMINI_API_KEY"

// Config is the resolved runtime configuration.
type Config struct {
	// Resume is the path to the resume text file.
	Resume string `json:"resume"`
	// Query is the job query string.
	Query string `json:"query"`
	// Catalog overrides the embedded job catalog with a file path.
	Catalog string `json:"catalog"`
	// StopTerms overrides the embedded stop-term table with a file path.
	StopTerms string `json:"stop_terms"`

	APIKey string `json:"api_key"`

	TimeoutSeconds int `json:"timeout_seconds" validate:"omitempty,min=1,max=300"`

	UseBrowser bool `json:"use_browser"`
	Verbose    bool `json:"verbose"`
	KeepDebug  bool `json:"keep_debug"`

	Port int `json:"port" validate:"omitempty,min=1,max=65535"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		TimeoutSeconds: DefaultTimeoutSeconds,
		Port:           DefaultPort,
	}
}

// Load reads a JSON config file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks range constraints.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// ResolveAPIKey returns the configured API key, falling back to the
// environment.
func (c *Config) ResolveAPIKey() string {
	if c.APIKey != "" {
		return c.APIKey
	}
	return os.Getenv(APIKeyEnv)
}

// Timeout returns the pipeline budget as a duration.
func (c *Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return DefaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
