package advisor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(endpoint string) *Client {
	return &Client{
		apiKey:      "test-key",
		model:       "gemini-2.0-flash",
		endpoint:    endpoint,
		temperature: 0.3,
		maxTokens:   400,
		http:        &http.Client{Timeout: 5 * time.Second},
	}
}

func envelope(text string) string {
	resp := map[string]interface{}{
		"candidates": []map[string]interface{}{
			{"content": map[string]interface{}{
				"parts": []map[string]string{{"text": text}},
			}},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestSuggestExtensionsJSONReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Contains(t, r.URL.Path, "gemini-2.0-flash:generateContent")
		require.Equal(t, "test-key", r.URL.Query().Get("key"))

		var body struct {
			Contents []struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"contents"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body.Contents, 1)
		prompt := body.Contents[0].Parts[0].Text
		assert.Contains(t, prompt, "https://example.com/FUZZ")
		assert.Contains(t, prompt, "PHP, nginx")

		w.Write([]byte(envelope(`["php","bak","html"]`)))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	got := c.SuggestExtensions("https://example.com/FUZZ", []string{"PHP", "nginx"}, 5)
	assert.Equal(t, []string{"php", "bak", "html"}, got)
}

func TestSuggestExtensionsNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"quota exceeded"}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	assert.Empty(t, c.SuggestExtensions("https://example.com/FUZZ", nil, 5))
}

func TestSuggestExtensionsEmptyEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	assert.Empty(t, c.SuggestExtensions("https://example.com/FUZZ", nil, 5))
}

func TestSuggestExtensionsCommaReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(envelope("php, .bak ,html")))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	got := c.SuggestExtensions("https://example.com/FUZZ", nil, 5)
	assert.Equal(t, []string{"php", "bak", "html"}, got)
}

func TestSuggestExtensionsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c := testClient(srv.URL)
	assert.Empty(t, c.SuggestExtensions("https://example.com/FUZZ", nil, 5))
}

func TestBuildPromptNoTechnologies(t *testing.T) {
	prompt := buildPrompt("https://example.com/FUZZ", nil, 5)
	assert.Contains(t, prompt, "Technologies detected on the target: None.")
	assert.Contains(t, prompt, "top 5 file extensions")
	assert.True(t, strings.Contains(prompt, `["php", "bak", "html"]`))
}
