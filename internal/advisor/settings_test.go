package advisor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tobiasGuta/ffufGemini/internal/config"
)

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advisor.yaml")
	content := `model: gemini-1.5-flash
endpoint: https://proxy.internal/v1beta/models
temperature: 0.7
max_output_tokens: 1024
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini-1.5-flash", s.Model)
	assert.Equal(t, "https://proxy.internal/v1beta/models", s.Endpoint)
	assert.Equal(t, 0.7, s.Temperature)
	assert.Equal(t, 1024, s.MaxOutputTokens)
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadSettingsMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advisor.yaml")
	require.NoError(t, os.WriteFile(path, []byte("model: [broken"), 0600))

	_, err := LoadSettings(path)
	assert.Error(t, err)
}

func writeHomeSettings(t *testing.T, content string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".ffufgemini")
	require.NoError(t, os.MkdirAll(dir, 0700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "advisor.yaml"), []byte(content), 0600))
}

func TestNewClientSettingsModelApplied(t *testing.T) {
	writeHomeSettings(t, "model: gemini-1.5-pro\ntemperature: 0.9\n")

	c := NewClient(config.DefaultConfig())
	assert.Equal(t, "gemini-1.5-pro", c.model)
	assert.Equal(t, 0.9, c.temperature)
}

func TestNewClientFlagModelWinsOverSettings(t *testing.T) {
	writeHomeSettings(t, "model: gemini-1.5-pro\n")

	cfg := config.DefaultConfig()
	cfg.Model = "gemini-2.5-flash"
	c := NewClient(cfg)
	assert.Equal(t, "gemini-2.5-flash", c.model)
}

func TestNewClientDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c := NewClient(config.DefaultConfig())
	assert.Equal(t, defaultModel, c.model)
	assert.Equal(t, defaultEndpoint, c.endpoint)
	assert.Equal(t, 0.3, c.temperature)
	assert.Equal(t, 400, c.maxTokens)
}
