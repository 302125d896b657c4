// Package validator checks whether mangled text still reads as the language
// the walk started from.
package validator

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/valpere/mangler/internal/detector"
)

// minValidationLength is the minimum rune count required to attempt language detection.
// Shorter texts produce unreliable results and are accepted without validation.
const minValidationLength = 20

// providerCodes maps backend-specific codes that are not BCP 47 to their
// base language.
var providerCodes = map[string]string{
	"jp": "ja", "kor": "ko", "fra": "fr", "spa": "es", "ara": "ar",
	"bul": "bg", "est": "et", "dan": "da", "fin": "fi", "rom": "ro",
	"slo": "sl", "swe": "sv", "vie": "vi", "cht": "zh", "wyw": "zh",
	"yue": "zh", "zh-chs": "zh", "zh-cht": "zh",
}

type Validator struct {
	det *detector.Detector
}

func New() *Validator {
	return &Validator{det: detector.New()}
}

// IsValid returns true when text appears to be written in lang.
//
// Short texts, texts whose language cannot be determined, and codes that do
// not map to a known base language pass without error. When the detected
// language differs from lang the returned error names both.
func (v *Validator) IsValid(text, lang string) (bool, error) {
	if lang == "" {
		return true, nil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return false, fmt.Errorf("text is empty")
	}

	if len([]rune(text)) < minValidationLength {
		return true, nil
	}

	want, ok := BaseLanguage(lang)
	if !ok {
		return true, nil
	}

	detected, ok := v.det.DetectISO(text)
	if !ok {
		return true, nil
	}

	if detected != want {
		return false, fmt.Errorf("expected %s but detected %s", lang, detected)
	}

	return true, nil
}

// BaseLanguage reduces a backend language code such as "zh-CHS", "EN" or
// "kor" to its ISO 639-1 base.
func BaseLanguage(code string) (string, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if mapped, ok := providerCodes[code]; ok {
		return mapped, true
	}

	tag, err := language.Parse(code)
	if err != nil {
		head, _, found := strings.Cut(code, "-")
		if !found {
			return "", false
		}
		if tag, err = language.Parse(head); err != nil {
			return "", false
		}
	}

	base, conf := tag.Base()
	if conf == language.No {
		return "", false
	}
	return base.String(), true
}
