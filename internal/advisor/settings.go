package advisor

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings holds optional advisor overrides loaded from a yaml file.
// The API key itself always comes from the environment.
type Settings struct {
	Model           string  `yaml:"model,omitempty"`
	Endpoint        string  `yaml:"endpoint,omitempty"`
	Temperature     float64 `yaml:"temperature,omitempty"`
	MaxOutputTokens int     `yaml:"max_output_tokens,omitempty"`
}

// DefaultSettingsPath returns the default path for the advisor settings file
func DefaultSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ffufgemini", "advisor.yaml")
}

// LoadSettings loads advisor settings from a yaml file
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// EnsureSettingsFile creates a commented settings template on first run.
// Existing files are never overwritten.
func EnsureSettingsFile() {
	path := DefaultSettingsPath()
	if path == "" {
		return
	}
	if _, err := os.Stat(path); err == nil {
		return
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return
	}

	template := `# ffufgemini advisor settings
# The Gemini API key is NOT stored here - set it as GEMINI_API_KEY.
# Get a key at: https://aistudio.google.com/app/apikey

# Model used for extension suggestions
model: gemini-2.0-flash

# Endpoint override (self-hosted proxies, regional endpoints)
# endpoint: https://generativelanguage.googleapis.com/v1beta/models

# Sampling temperature (lower = more deterministic suggestions)
temperature: 0.3

# Cap on the model's reply size
max_output_tokens: 400
`

	if err := os.WriteFile(path, []byte(template), 0600); err == nil {
		fmt.Printf("Created advisor settings template: %s\n", path)
	}
}
