package main

import (
	"os"

	"github.com/jonathan/career-mentor/internal/config"
	"github.com/jonathan/career-mentor/internal/llm"
)

// envKeyVars lists the environment variables checked for a credential, in
// order of preference per provider.
var envKeyVars = map[string][]string{
	"gemini": {"GEMINI_API_KEY"},
	"openai": {"OPENAI_API_KEY"},
	"":       {"GEMINI_API_KEY", "OPENAI_API_KEY"},
}

// resolveAPIKey returns the credential from the flag value or the provider's
// environment variable, flag winning.
func resolveAPIKey(flagValue, provider string) string {
	if flagValue != "" {
		return flagValue
	}
	for _, name := range envKeyVars[provider] {
		if v := os.Getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// loadFileConfig loads and validates an optional JSON config file. An empty
// path returns an empty config.
func loadFileConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Config{}, nil
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return *cfg, nil
}

// buildLLMConfig constructs the provider config, applying an optional
// standard-tier model override.
func buildLLMConfig(provider, model string) *llm.Config {
	cfg := llm.ConfigForProvider(provider)
	if model != "" {
		cfg = cfg.WithModel(llm.TierStandard, model)
	}
	return cfg
}
