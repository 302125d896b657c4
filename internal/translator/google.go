package translator

import (
	"context"
	"errors"
	"net"
	"sync"

	translate "cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

var googleLanguages = newLanguageSet(
	"af", "ar", "bg", "bn", "ca", "cs", "cy", "da", "de", "el",
	"en", "eo", "es", "et", "fa", "fi", "fr", "ga", "gl", "gu",
	"he", "hi", "hr", "hu", "hy", "id", "is", "it", "ja", "ka",
	"kn", "ko", "la", "lt", "lv", "mk", "mr", "ms", "mt", "nl",
	"no", "pl", "pt", "ro", "ru", "sk", "sl", "sq", "sr", "sv",
	"sw", "ta", "te", "th", "tl", "tr", "uk", "ur", "vi", "yi",
	"zh-CN", "zh-TW",
)

// GoogleService uses the Cloud Translation v2 API. It authenticates with an
// API key when one is configured, otherwise with a credentials file or the
// application default credentials.
type GoogleService struct {
	opts []option.ClientOption

	mu     sync.Mutex
	client *translate.Client
}

func NewGoogleService(cfg ServiceConfig) *GoogleService {
	var opts []option.ClientOption
	switch {
	case cfg.APIKey != "":
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	case cfg.Credentials != "":
		opts = append(opts, option.WithCredentialsFile(cfg.Credentials))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.BaseURL))
	}
	return &GoogleService{opts: opts}
}

func (s *GoogleService) Name() string {
	return "google"
}

// getClient lazily creates the SDK client so constructing a GoogleService
// never touches the network or the credential chain.
func (s *GoogleService) getClient(ctx context.Context) (*translate.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client != nil {
		return s.client, nil
	}
	client, err := translate.NewClient(ctx, s.opts...)
	if err != nil {
		return nil, err
	}
	s.client = client
	return client, nil
}

func (s *GoogleService) Translate(ctx context.Context, text string, pair LanguagePair) (string, error) {
	if err := googleLanguages.check(s.Name(), pair); err != nil {
		return "", err
	}

	source, err := language.Parse(pair.From)
	if err != nil {
		return "", unsupportedError(s.Name(), pair, pair.From)
	}
	target, err := language.Parse(pair.To)
	if err != nil {
		return "", unsupportedError(s.Name(), pair, pair.To)
	}

	client, err := s.getClient(ctx)
	if err != nil {
		return "", backendError(s.Name(), pair, "failed to create client: %v", err)
	}

	translations, err := client.Translate(ctx, []string{text}, target, &translate.Options{
		Source: source,
		Format: translate.Text,
		Model:  "base",
	})
	if err != nil {
		return "", classifyGoogleError(s.Name(), pair, err)
	}

	if len(translations) == 0 {
		return "", backendError(s.Name(), pair, "no translation returned")
	}

	return translations[0].Text, nil
}

func (s *GoogleService) SupportedLanguages() []string {
	return googleLanguages.list()
}

func (s *GoogleService) IsLanguageSupported(code string) bool {
	return googleLanguages.has(code)
}

// Close releases the underlying SDK client, if one was created.
func (s *GoogleService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil
	return err
}

func classifyGoogleError(service string, pair LanguagePair, err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return backendError(service, pair, "API returned status %d: %s", apiErr.Code, apiErr.Message)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return networkError(service, pair, err)
	}
	return &TranslationError{Kind: KindBackend, Service: service, Pair: pair, Err: err}
}
