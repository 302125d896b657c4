package translator

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const youdaoEndpoint = "https://openapi.youdao.com/api"

var youdaoLanguages = newLanguageSet(
	"zh-CHS", "zh-CHT", "vi", "en", "id", "it", "es", "ja", "pt", "ko", "fr", "ru", "de", "ar",
	"th",
)

// YoudaoService talks to the Youdao AI text translation API using the v3
// (SHA-256) signature scheme.
type YoudaoService struct {
	appKey    string
	appSecret string
	endpoint  string
	client    *http.Client
	now       func() time.Time
}

func NewYoudaoService(cfg ServiceConfig) *YoudaoService {
	endpoint := cfg.BaseURL
	if endpoint == "" {
		endpoint = youdaoEndpoint
	}
	return &YoudaoService{
		appKey:    cfg.AppID,
		appSecret: cfg.Secret,
		endpoint:  endpoint,
		client:    &http.Client{Timeout: 30 * time.Second},
		now:       time.Now,
	}
}

func (s *YoudaoService) Name() string {
	return "youdao"
}

func (s *YoudaoService) Translate(ctx context.Context, text string, pair LanguagePair) (string, error) {
	if err := youdaoLanguages.check(s.Name(), pair); err != nil {
		return "", err
	}

	curtime := strconv.FormatInt(s.now().Unix(), 10)
	salt := strconv.Itoa(rand.IntN(1_000_000_000))

	form := url.Values{}
	form.Set("q", text)
	form.Set("from", pair.From)
	form.Set("to", pair.To)
	form.Set("appKey", s.appKey)
	form.Set("salt", salt)
	form.Set("sign", youdaoSign(s.appKey, text, salt, curtime, s.appSecret))
	form.Set("signType", "v3")
	form.Set("curtime", curtime)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", networkError(s.Name(), pair, err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", networkError(s.Name(), pair, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", backendError(s.Name(), pair, "API returned status %d", resp.StatusCode)
	}

	var youdaoResp struct {
		ErrorCode   string   `json:"errorCode"`
		Translation []string `json:"translation"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&youdaoResp); err != nil {
		return "", backendError(s.Name(), pair, "failed to decode response: %v", err)
	}

	if code := youdaoResp.ErrorCode; code != "" && code != "0" {
		return "", backendError(s.Name(), pair, "API error %s", code)
	}

	if len(youdaoResp.Translation) == 0 {
		return "", backendError(s.Name(), pair, "empty translation response")
	}

	return youdaoResp.Translation[0], nil
}

func (s *YoudaoService) SupportedLanguages() []string {
	return youdaoLanguages.list()
}

func (s *YoudaoService) IsLanguageSupported(code string) bool {
	return youdaoLanguages.has(code)
}

// youdaoSign computes sha256(appKey + input + salt + curtime + appSecret).
func youdaoSign(appKey, text, salt, curtime, appSecret string) string {
	sum := sha256.Sum256([]byte(appKey + youdaoInput(text) + salt + curtime + appSecret))
	return hex.EncodeToString(sum[:])
}

// youdaoInput shortens texts longer than 20 characters to the first 10
// characters, the character count, and the last 10 characters.
func youdaoInput(text string) string {
	runes := []rune(text)
	n := len(runes)
	if n <= 20 {
		return text
	}
	return string(runes[:10]) + strconv.Itoa(n) + string(runes[n-10:])
}
