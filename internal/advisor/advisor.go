package advisor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/tobiasGuta/ffufGemini/internal/config"
)

const (
	defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta/models"
	defaultModel    = "gemini-2.0-flash"
)

// Client queries the Gemini generative-language API for fuzzing advice
type Client struct {
	apiKey      string
	model       string
	endpoint    string
	temperature float64
	maxTokens   int
	http        *http.Client
}

// NewClient builds a Gemini client from the run configuration. Precedence for
// the model is --model flag, then the optional settings file
// (~/.ffufgemini/advisor.yaml), then the built-in default.
func NewClient(cfg *config.Config) *Client {
	c := &Client{
		apiKey:      cfg.GeminiKey,
		endpoint:    defaultEndpoint,
		temperature: 0.3,
		maxTokens:   400,
		http:        &http.Client{Timeout: 30 * time.Second},
	}

	settingsPath := DefaultSettingsPath()
	if _, err := os.Stat(settingsPath); err == nil {
		if s, err := LoadSettings(settingsPath); err == nil {
			c.applySettings(s)
		}
	}

	// A model set on the command line wins over the settings file
	if cfg.Model != "" {
		c.model = cfg.Model
	}
	if c.model == "" {
		c.model = defaultModel
	}
	return c
}

func (c *Client) applySettings(s *Settings) {
	if s.Model != "" {
		c.model = s.Model
	}
	if s.Endpoint != "" {
		c.endpoint = strings.TrimSuffix(s.Endpoint, "/")
	}
	if s.Temperature > 0 {
		c.temperature = s.Temperature
	}
	if s.MaxOutputTokens > 0 {
		c.maxTokens = s.MaxOutputTokens
	}
}

// SuggestExtensions asks the model for up to max file extensions worth
// fuzzing on the target. Every failure mode (transport error, non-200,
// unparseable reply) degrades to an empty list; this never aborts the run.
func (c *Client) SuggestExtensions(url string, techs []string, max int) []string {
	prompt := buildPrompt(url, techs, max)

	text, err := c.generate(prompt)
	if err != nil {
		fmt.Printf("[-] Gemini API error: %v\n", err)
		return nil
	}

	exts := ParseExtensions(text, max)
	if len(exts) == 0 {
		fmt.Println("[-] Could not parse extensions properly.")
	}
	return exts
}

// buildPrompt embeds the target URL and detected technologies into the
// fuzzing-advice prompt. The model is told to answer with a raw JSON array
// and nothing else; the parser still defends against it ignoring that.
func buildPrompt(url string, techs []string, max int) string {
	techStr := strings.Join(techs, ", ")
	if techStr == "" {
		techStr = "None"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are an AI assistant helping with web fuzzing for a bug bounty. The target URL is: %s.\n", url)
	fmt.Fprintf(&b, "Technologies detected on the target: %s.\n", techStr)
	fmt.Fprintf(&b, "Based on the detected technologies and common file extensions seen in web applications (e.g., .php, .aspx, .jsp, .html, .bak), "+
		"suggest the top %d file extensions that are most likely relevant for fuzzing this target.\n", max)
	b.WriteString("Consider how the detected technologies might influence the types of file extensions that are more likely to be in use.\n")
	b.WriteString(`Please respond with only a raw JSON array in the following format: ["php", "bak", "html"].`)
	return b.String()
}

// generate performs one synchronous generateContent call and returns the
// model's reply text.
func (c *Client) generate(prompt string) (string, error) {
	reqBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{"parts": []map[string]string{{"text": prompt}}},
		},
		"generationConfig": map[string]interface{}{"temperature": c.temperature, "maxOutputTokens": c.maxTokens},
	}

	body, _ := json.Marshal(reqBody)
	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.endpoint, c.model, c.apiKey)
	req, err := http.NewRequest("POST", url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%d - %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var result struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	json.NewDecoder(resp.Body).Decode(&result)

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
