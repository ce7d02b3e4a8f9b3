package appconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{EnvGroqAPIKey, EnvGroqBaseURL, EnvGroqModel, EnvHTTPPort, EnvGRPCPort} {
		t.Setenv(key, "")
	}
}

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.ini"))
	require.NoError(t, err)

	assert.Equal(t, "https://api.groq.com/openai/v1/", cfg.GroqBaseURL)
	assert.Equal(t, "llama3-8b-8192", cfg.Model)
	assert.Equal(t, 0.3, cfg.Temperature)
	assert.Equal(t, int64(1000), cfg.MaxTokens)
	assert.Equal(t, 1.0, cfg.TopP)
	assert.Equal(t, ":3002", cfg.HTTPPort)
	assert.False(t, cfg.HasAPIKey())
}

func TestLoad_IniFileThenEnvironment(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.ini")
	content := "model = llama-3.1-8b-instant\ntemperature = 0.5\nhttp_port = :9000\ngroq_api_key = from-file\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv(EnvGroqAPIKey, "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "llama-3.1-8b-instant", cfg.Model)
	assert.Equal(t, 0.5, cfg.Temperature)
	assert.Equal(t, ":9000", cfg.HTTPPort)
	assert.Equal(t, "from-env", cfg.GroqAPIKey)
	assert.True(t, cfg.HasAPIKey())
	// untouched keys keep their defaults
	assert.Equal(t, int64(1000), cfg.MaxTokens)
}
