package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
)

const (
	ollamaBaseURL = "http://localhost:11434"
	ollamaModel   = "llama3.2"
)

var ollamaLanguages = newLanguageSet(
	"en", "es", "fr", "de", "it", "pt", "ru", "zh", "ja", "ko", "ar", "uk",
)

// OllamaService prompts a self-hosted LLM to do the translation.
type OllamaService struct {
	baseURL string
	model   string
	client  *http.Client
}

func NewOllamaService(cfg ServiceConfig) *OllamaService {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = ollamaBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = ollamaModel
	}
	return &OllamaService{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

func (s *OllamaService) Name() string {
	return "ollama"
}

func (s *OllamaService) Translate(ctx context.Context, text string, pair LanguagePair) (string, error) {
	if err := ollamaLanguages.check(s.Name(), pair); err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(`Translate the following text from %s to %s.
Only respond with the translation, nothing else.

Text: "%s"

Translation:`, pair.From, pair.To, text)

	jsonData, err := json.Marshal(map[string]interface{}{
		"model":  s.model,
		"prompt": prompt,
		"stream": false,
	})
	if err != nil {
		return "", backendError(s.Name(), pair, "failed to marshal request: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/generate", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", networkError(s.Name(), pair, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", networkError(s.Name(), pair, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", backendError(s.Name(), pair, "API returned status %d", resp.StatusCode)
	}

	var ollamaResp struct {
		Response string `json:"response"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&ollamaResp); err != nil {
		return "", backendError(s.Name(), pair, "failed to decode response: %v", err)
	}

	out := cleanLLMOutput(ollamaResp.Response)
	if out == "" {
		return "", backendError(s.Name(), pair, "empty translation response")
	}
	return out, nil
}

func (s *OllamaService) SupportedLanguages() []string {
	return ollamaLanguages.list()
}

func (s *OllamaService) IsLanguageSupported(code string) bool {
	return ollamaLanguages.has(code)
}

// RE2 has no backreferences, so each tag pair is spelled out.
var (
	thinkingBlockRe     = regexp.MustCompile(`(?is)<think>.*?</think>|<thinking>.*?</thinking>|<reasoning>.*?</reasoning>`)
	truncatedThinkingRe = regexp.MustCompile(`(?is)(?:<think>|<thinking>|<reasoning>).*$`)
)

// cleanLLMOutput drops reasoning blocks and one pair of wrapping quotes, the
// two artifacts that would otherwise be fed into the next hop.
func cleanLLMOutput(text string) string {
	text = thinkingBlockRe.ReplaceAllString(text, "")
	text = truncatedThinkingRe.ReplaceAllString(text, "")
	text = strings.TrimSpace(text)

	runes := []rune(text)
	if n := len(runes); n >= 2 {
		first, last := runes[0], runes[n-1]
		if (first == '"' && last == '"') || (first == '“' && last == '”') || (first == '«' && last == '»') {
			text = strings.TrimSpace(string(runes[1 : n-1]))
		}
	}
	return text
}
