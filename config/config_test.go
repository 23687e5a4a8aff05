package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		for _, key := range []string{"AI_PLUGIN", "GEMINI_API_KEY", "CATALOG_SOURCE", "WEATHER_SEED", "PORT", "LOG_LEVEL", "HOLIDAYS_ENABLED", "HOLIDAYS_SUBDIVISION"} {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}

		cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)

		assert.Equal(t, "gemini", cfg.AI.Plugin)
		assert.Equal(t, 20, cfg.AI.MaxSteps)
		assert.Equal(t, "qwen3:4b", cfg.AI.Ollama.Model)
		assert.Equal(t, "http://localhost:11434", cfg.AI.Ollama.BaseURL)
		assert.Equal(t, "gpt-4o-mini", cfg.AI.OpenAI.Model)
		assert.Equal(t, "builtin", cfg.Catalog.Source)
		assert.Equal(t, "AUD", cfg.Catalog.Currency)
		assert.Equal(t, int64(0), cfg.Weather.Seed)
		assert.Equal(t, "8000", cfg.Server.Port)
		assert.Equal(t, "info", cfg.Log.Level)
		assert.False(t, cfg.Holidays.Enabled)
		assert.Equal(t, "AU-NSW", cfg.Holidays.Subdivision)
	})

	t.Run("EnvironmentVariables", func(t *testing.T) {
		t.Setenv("AI_PLUGIN", "ollama")
		t.Setenv("GEMINI_API_KEY", "test-key")
		t.Setenv("CATALOG_SOURCE", "db")
		t.Setenv("WEATHER_SEED", "42")

		cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "ollama", cfg.AI.Plugin)
		assert.Equal(t, "test-key", cfg.AI.Gemini.APIKey)
		assert.Equal(t, "db", cfg.Catalog.Source)
		assert.Equal(t, int64(42), cfg.Weather.Seed)
	})

	t.Run("ConfigFile", func(t *testing.T) {
		t.Setenv("AI_PLUGIN", "")
		os.Unsetenv("AI_PLUGIN")
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := "ai:\n  plugin: openai\n  openai:\n    model: gpt-4.1-mini\ncatalog:\n  source: file\n  path: sydney.yaml\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := LoadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "openai", cfg.AI.Plugin)
		assert.Equal(t, "gpt-4.1-mini", cfg.AI.OpenAI.Model)
		assert.Equal(t, "file", cfg.Catalog.Source)
		assert.Equal(t, "sydney.yaml", cfg.Catalog.Path)
	})

	t.Run("UnsupportedPlugin", func(t *testing.T) {
		t.Setenv("AI_PLUGIN", "mystery")
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "AI_PLUGIN")
	})
}
