package translator

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const baiduEndpoint = "https://fanyi-api.baidu.com/api/trans/vip/translate"

var baiduLanguages = newLanguageSet(
	"zh", "en", "yue", "wyw", "jp", "kor", "fra", "spa", "th", "ara",
	"ru", "pt", "de", "it", "el", "nl", "pl", "bul", "est", "dan",
	"fin", "cs", "rom", "slo", "swe", "hu", "cht", "vie",
)

type baiduNode struct {
	Src string `json:"src"`
	Dst string `json:"dst"`
}

// BaiduService talks to the Baidu general translation API. Requests are
// signed with md5(appid + q + salt + key).
type BaiduService struct {
	appID    string
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewBaiduService(cfg ServiceConfig) *BaiduService {
	endpoint := cfg.BaseURL
	if endpoint == "" {
		endpoint = baiduEndpoint
	}
	return &BaiduService{
		appID:    cfg.AppID,
		apiKey:   cfg.APIKey,
		endpoint: endpoint,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *BaiduService) Name() string {
	return "baidu"
}

func (s *BaiduService) Translate(ctx context.Context, text string, pair LanguagePair) (string, error) {
	if err := baiduLanguages.check(s.Name(), pair); err != nil {
		return "", err
	}

	salt := strconv.Itoa(rand.IntN(1_000_000_000))
	sum := md5.Sum([]byte(s.appID + text + salt + s.apiKey))

	form := url.Values{}
	form.Set("q", text)
	form.Set("from", pair.From)
	form.Set("to", pair.To)
	form.Set("appid", s.appID)
	form.Set("salt", salt)
	form.Set("sign", hex.EncodeToString(sum[:]))

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

	var baiduResp struct {
		TransResult []baiduNode `json:"trans_result"`
		ErrorCode   string      `json:"error_code"`
		ErrorMsg    string      `json:"error_msg"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&baiduResp); err != nil {
		return "", backendError(s.Name(), pair, "failed to decode response: %v", err)
	}

	// 52000 is Baidu's explicit success code; it is normally omitted.
	if code := baiduResp.ErrorCode; code != "" && code != "0" && code != "52000" {
		return "", backendError(s.Name(), pair, "API error %s: %s", code, baiduResp.ErrorMsg)
	}

	if len(baiduResp.TransResult) == 0 {
		return "", backendError(s.Name(), pair, "empty translation response")
	}

	return joinBaiduResult(baiduResp.TransResult), nil
}

func (s *BaiduService) SupportedLanguages() []string {
	return baiduLanguages.list()
}

func (s *BaiduService) IsLanguageSupported(code string) bool {
	return baiduLanguages.has(code)
}

// joinBaiduResult rebuilds multi-line input: Baidu splits the query on
// newlines and returns one entry per line.
func joinBaiduResult(nodes []baiduNode) string {
	lines := make([]string, len(nodes))
	for i, n := range nodes {
		lines[i] = n.Dst
	}
	return strings.Join(lines, "\n")
}
