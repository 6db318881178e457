package llm

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("load from valid file", func(t *testing.T) {
		content := `
base_url: "https://api.example.com"
api_key: "test-api-key"
default_model: "gpt-4o-mini"
timeout: "30s"
max_retries: 3
log_level: "info"

models:
  gpt-4o-mini:
    provider: "openai"
    model_name: "gpt-4o-mini"
    temperature: 0.7
`
		tmpDir := t.TempDir()
		configPath := filepath.Join(tmpDir, "config.yaml")
		err := os.WriteFile(configPath, []byte(content), 0644)
		require.NoError(t, err)

		cfg, err := LoadConfig(configPath)
		require.NoError(t, err)
		require.Equal(t, "https://api.example.com", cfg.BaseURL)
		require.Equal(t, "test-api-key", cfg.APIKey)
		require.Equal(t, "gpt-4o-mini", cfg.DefaultModel)
		require.Equal(t, 30*time.Second, cfg.Timeout)
		require.Equal(t, 3, cfg.MaxRetries)
		require.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := LoadConfig("/nonexistent/path/config.yaml")
		require.Error(t, err)
		require.Contains(t, err.Error(), "open llm config")
	})
}

func TestLoadConfigFromReader(t *testing.T) {
	t.Setenv(envAPIKey, "override-key")
	t.Setenv(envTimeout, "45s")
	t.Setenv(envMaxRetries, "5")

	data := `
base_url: "https://example.com"
api_key: "${OPENAI_API_KEY}"
default_model: "gpt-4o"
timeout: "30s"
max_retries: 2
log_level: "debug"

models:
  gpt-4o:
    provider: "openai"
    model_name: "gpt-4o"
    temperature: 0.5
    max_tokens: 1024
`

	cfg, err := LoadConfigFromReader(strings.NewReader(data))
	require.NoError(t, err)

	require.Equal(t, "https://example.com", cfg.BaseURL)
	require.Equal(t, "override-key", cfg.APIKey)
	require.Equal(t, "gpt-4o", cfg.DefaultModel)
	require.Equal(t, 5, cfg.MaxRetries)
	require.Equal(t, 45*time.Second, cfg.Timeout)

	model, ok := cfg.Model("gpt-4o")
	require.True(t, ok)
	require.Equal(t, "openai", model.Provider)
	require.NotNil(t, model.Temperature)
	require.InDelta(t, 0.5, *model.Temperature, 0.0001)
	require.NotNil(t, model.MaxTokens)
	require.Equal(t, 1024, *model.MaxTokens)
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			BaseURL:      "https://api.example.com",
			APIKey:       "test-key",
			DefaultModel: "gpt-4o",
			Timeout:      30 * time.Second,
			MaxRetries:   3,
		}
	}

	t.Run("valid config", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("missing api key", func(t *testing.T) {
		cfg := valid()
		cfg.APIKey = " "
		require.ErrorContains(t, cfg.Validate(), "api_key")
	})

	t.Run("missing default model", func(t *testing.T) {
		cfg := valid()
		cfg.DefaultModel = ""
		require.ErrorContains(t, cfg.Validate(), "default_model")
	})

	t.Run("non-positive timeout", func(t *testing.T) {
		cfg := valid()
		cfg.Timeout = 0
		require.ErrorContains(t, cfg.Validate(), "timeout")
	})

	t.Run("negative retries", func(t *testing.T) {
		cfg := valid()
		cfg.MaxRetries = -1
		require.ErrorContains(t, cfg.Validate(), "max_retries")
	})
}

func TestConfigClone(t *testing.T) {
	cfg := &Config{
		BaseURL:      "https://api.example.com",
		APIKey:       "key",
		DefaultModel: "gpt-4o",
		Timeout:      time.Minute,
		MaxRetries:   2,
		Models: map[string]ModelConfig{
			"gpt-4o": {Provider: "openai"},
		},
	}

	clone := cfg.Clone()
	require.Equal(t, cfg.BaseURL, clone.BaseURL)

	clone.Models["gpt-4o"] = ModelConfig{Provider: "other"}
	require.Equal(t, "openai", cfg.Models["gpt-4o"].Provider, "clone must not share the models map")
}
