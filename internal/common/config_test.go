package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mandatum.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewDefaultConfig(t *testing.T) {
	config := NewDefaultConfig()

	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, 8080, config.Server.Port)
	assert.Equal(t, "localhost", config.Server.Host)
	assert.Equal(t, "./data", config.Storage.Badger.Path)
	assert.Equal(t, "info", config.Logging.Level)
	assert.Equal(t, LLMProviderClaude, config.LLM.DefaultProvider)
	assert.Equal(t, "claude-haiku-3-5-20241022", config.Claude.Model)
	assert.Equal(t, "gemini-3-flash-preview", config.Gemini.Model)
}

func TestLoadFromFiles(t *testing.T) {
	path := writeConfigFile(t, `
environment = "production"

[server]
port = 9090

[llm]
default_provider = "gemini"
`)

	config, err := LoadFromFiles(path)
	require.NoError(t, err)

	assert.Equal(t, "production", config.Environment)
	assert.Equal(t, 9090, config.Server.Port)
	assert.Equal(t, LLMProviderGemini, config.LLM.DefaultProvider)
	// Unset values keep their defaults
	assert.Equal(t, "localhost", config.Server.Host)
	assert.Equal(t, "info", config.Logging.Level)
}

func TestLoadFromFilesLaterFileWins(t *testing.T) {
	first := writeConfigFile(t, `
[server]
port = 9090
host = "0.0.0.0"
`)
	second := writeConfigFile(t, `
[server]
port = 7070
`)

	config, err := LoadFromFiles(first, second)
	require.NoError(t, err)

	assert.Equal(t, 7070, config.Server.Port)
	assert.Equal(t, "0.0.0.0", config.Server.Host)
}

func TestLoadFromFilesMissingFile(t *testing.T) {
	_, err := LoadFromFiles(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MANDATUM_SERVER_PORT", "6060")
	t.Setenv("MANDATUM_LOG_LEVEL", "debug")
	t.Setenv("MANDATUM_LLM_PROVIDER", "gemini")

	config, err := LoadFromFiles()
	require.NoError(t, err)

	assert.Equal(t, 6060, config.Server.Port)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, LLMProviderGemini, config.LLM.DefaultProvider)
}

func TestAPIKeyEnvFallback(t *testing.T) {
	t.Setenv("MANDATUM_CLAUDE_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("MANDATUM_GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gm-test")

	config, err := LoadFromFiles()
	require.NoError(t, err)

	assert.Equal(t, "sk-ant-test", config.Claude.APIKey)
	assert.Equal(t, "gm-test", config.Gemini.APIKey)
}

func TestAPIKeyFileWinsOverEnv(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-env")
	path := writeConfigFile(t, `
[claude]
api_key = "sk-ant-file"
`)

	config, err := LoadFromFiles(path)
	require.NoError(t, err)

	assert.Equal(t, "sk-ant-file", config.Claude.APIKey)
}

func TestApplyFlagOverrides(t *testing.T) {
	config := NewDefaultConfig()

	ApplyFlagOverrides(config, 5050, "example.internal")
	assert.Equal(t, 5050, config.Server.Port)
	assert.Equal(t, "example.internal", config.Server.Host)

	// Zero values leave the config untouched
	ApplyFlagOverrides(config, 0, "")
	assert.Equal(t, 5050, config.Server.Port)
	assert.Equal(t, "example.internal", config.Server.Host)
}
