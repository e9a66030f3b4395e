package config

import (
	"fmt"
	"os"
	"strings"
)

// FuzzKeyword is the placeholder in the target URL where ffuf substitutes
// wordlist entries.
const FuzzKeyword = "FUZZ"

// Config holds all configuration options for ffufgemini
type Config struct {
	// Target configuration
	URL      string
	Wordlist string

	// Advisor configuration
	MaxExtensions int
	GeminiKey     string
	Model         string

	// Debug
	Debug bool // Show detailed timing logs for each tool execution
}

// DefaultConfig returns a configuration with default values. Model stays
// empty here: an empty model means "not set on the command line", which lets
// the advisor settings file supply one before its own default kicks in.
func DefaultConfig() *Config {
	return &Config{
		MaxExtensions: 5,
	}
}

// LoadEnv pulls the Gemini API key from the environment. Both GEMINI_API_KEY
// and GOOGLE_AI_KEY are accepted; an explicit key set on the config wins.
func (c *Config) LoadEnv() {
	if c.GeminiKey != "" {
		return
	}
	for _, name := range []string{"GEMINI_API_KEY", "GOOGLE_AI_KEY"} {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			c.GeminiKey = v
			return
		}
	}
}

// Validate checks that everything required for a run is present. It runs
// before any stage so that a broken configuration never reaches the network
// or an external tool.
func (c *Config) Validate() error {
	if c.URL == "" {
		return fmt.Errorf("target URL is required")
	}
	if c.Wordlist == "" {
		return fmt.Errorf("wordlist path is required")
	}
	if c.GeminiKey == "" {
		return fmt.Errorf("Gemini API key not found. Set it as GEMINI_API_KEY env variable")
	}
	if c.MaxExtensions <= 0 {
		c.MaxExtensions = 5
	}
	return nil
}

// HasFuzzKeyword reports whether the target URL contains the FUZZ placeholder
func (c *Config) HasFuzzKeyword() bool {
	return strings.Contains(c.URL, FuzzKeyword)
}
