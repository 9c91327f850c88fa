package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/career-mentor/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveAPIKey(t *testing.T) {
	t.Run("flag wins over env", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "env-key")
		assert.Equal(t, "flag-key", resolveAPIKey("flag-key", "gemini"))
	})

	t.Run("falls back to provider env var", func(t *testing.T) {
		t.Setenv("OPENAI_API_KEY", "env-key")
		assert.Equal(t, "env-key", resolveAPIKey("", "openai"))
	})

	t.Run("empty when nothing is set", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		assert.Equal(t, "", resolveAPIKey("", "gemini"))
	})
}

func TestBuildLLMConfig(t *testing.T) {
	t.Run("selects provider defaults", func(t *testing.T) {
		cfg := buildLLMConfig("openai", "")
		assert.Equal(t, llm.ProviderOpenAI, cfg.Provider)
		assert.Equal(t, "gpt-4o", cfg.GetModel(llm.TierStandard))
	})

	t.Run("model flag overrides the standard tier", func(t *testing.T) {
		cfg := buildLLMConfig("gemini", "gemini-2.5-pro")
		assert.Equal(t, "gemini-2.5-pro", cfg.GetModel(llm.TierStandard))
	})
}

func TestLoadFileConfig(t *testing.T) {
	t.Run("empty path returns empty config", func(t *testing.T) {
		cfg, err := loadFileConfig("")
		require.NoError(t, err)
		assert.Equal(t, "", cfg.Provider)
	})

	t.Run("loads and validates", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"provider": "openai", "port": 9090}`), 0o600))

		cfg, err := loadFileConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "openai", cfg.Provider)
		assert.Equal(t, 9090, cfg.Port)
	})

	t.Run("rejects invalid provider", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"provider": "other"}`), 0o600))

		_, err := loadFileConfig(path)
		assert.Error(t, err)
	})
}
