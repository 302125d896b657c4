package translator

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const myMemoryEndpoint = "https://api.mymemory.translated.net/get"

var myMemoryLanguages = newLanguageSet(
	"en", "es", "fr", "de", "it", "pt", "ru", "ja", "ko", "zh",
	"ar", "nl", "pl", "tr", "sv", "da", "no", "fi", "el", "he",
	"th", "vi", "id", "ms", "cs", "hu", "ro", "uk", "bg", "ca",
)

// MyMemoryService uses the free MyMemory API. An email address raises the
// daily quota.
type MyMemoryService struct {
	email    string
	endpoint string
	client   *http.Client
}

func NewMyMemoryService(cfg ServiceConfig) *MyMemoryService {
	endpoint := cfg.BaseURL
	if endpoint == "" {
		endpoint = myMemoryEndpoint
	}
	return &MyMemoryService{
		email:    cfg.Email,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *MyMemoryService) Name() string {
	return "mymemory"
}

func (s *MyMemoryService) Translate(ctx context.Context, text string, pair LanguagePair) (string, error) {
	if err := myMemoryLanguages.check(s.Name(), pair); err != nil {
		return "", err
	}

	query := url.Values{}
	query.Set("q", text)
	query.Set("langpair", fmt.Sprintf("%s|%s", pair.From, pair.To))
	if s.email != "" {
		query.Set("de", s.email)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return "", networkError(s.Name(), pair, err)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", networkError(s.Name(), pair, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", backendError(s.Name(), pair, "API returned status %d", resp.StatusCode)
	}

	var mymemResp struct {
		ResponseData struct {
			TranslatedText string `json:"translatedText"`
		} `json:"responseData"`
		// MyMemory reports the status as a number or as a quoted number.
		ResponseStatus  json.Number `json:"responseStatus"`
		ResponseDetails string      `json:"responseDetails"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&mymemResp); err != nil {
		return "", backendError(s.Name(), pair, "failed to decode response: %v", err)
	}

	if mymemResp.ResponseStatus.String() != "200" {
		return "", backendError(s.Name(), pair, "API error: %s (%s)", mymemResp.ResponseDetails, mymemResp.ResponseStatus)
	}

	if mymemResp.ResponseData.TranslatedText == "" {
		return "", backendError(s.Name(), pair, "empty translation response")
	}

	return mymemResp.ResponseData.TranslatedText, nil
}

func (s *MyMemoryService) SupportedLanguages() []string {
	return myMemoryLanguages.list()
}

func (s *MyMemoryService) IsLanguageSupported(code string) bool {
	return myMemoryLanguages.has(code)
}
