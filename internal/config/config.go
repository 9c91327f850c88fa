// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Provider selects the LLM backend ("gemini" or "openai").
	Provider string `json:"provider,omitempty"`
	// Model overrides the standard-tier model for the selected provider.
	Model string `json:"model,omitempty"`
	// APIKey is the provider credential. Held in memory only; never written back.
	APIKey string `json:"api_key,omitempty"`

	// Port is the HTTP port for the serve command.
	Port int `json:"port,omitempty"`

	// Verbose prints detailed debug information.
	Verbose bool `json:"verbose,omitempty"`
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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	switch c.Provider {
	case "", "gemini", "openai":
	default:
		return fmt.Errorf("config error: unknown provider %q (expected \"gemini\" or \"openai\")", c.Provider)
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
