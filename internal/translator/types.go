package translator

import (
	"context"
	"fmt"
)

type ServiceConfig struct {
	APIKey      string `mapstructure:"api_key" json:"api_key"`
	Secret      string `mapstructure:"secret" json:"secret"`
	AppID       string `mapstructure:"app_id" json:"app_id"`
	Credentials string `mapstructure:"credentials" json:"credentials"`
	Email       string `mapstructure:"email" json:"email"`
	Model       string `mapstructure:"model" json:"model"`
	BaseURL     string `mapstructure:"base_url" json:"base_url"`
}

// LanguagePair is one hop of a mangling path: a single translation request's
// direction.
type LanguagePair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

func (p LanguagePair) String() string {
	return fmt.Sprintf("%s -> %s", p.From, p.To)
}

// Translator is implemented by every translation backend. Language codes are
// backend specific; a code valid for one Translator may be unknown to another.
type Translator interface {
	Name() string

	// Translate translates text along pair. Unsupported codes are rejected with
	// an UnsupportedLanguage error before any request is made.
	Translate(ctx context.Context, text string, pair LanguagePair) (string, error)

	// SupportedLanguages returns the codes this backend accepts, in a stable
	// backend-defined order.
	SupportedLanguages() []string

	IsLanguageSupported(code string) bool
}
