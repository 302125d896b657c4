// Package detector guesses the language of a text with lingua-go.
package detector

import (
	"strings"
	"sync"
	"sync/atomic"

	lingua "github.com/pemistahl/lingua-go"
)

var (
	buildOnce sync.Once
	shared    lingua.LanguageDetector
	builds    atomic.Int32
)

// Detector is cheap to create; all instances share one lingua detector, which
// is expensive to build and safe for concurrent use.
type Detector struct {
	detector lingua.LanguageDetector
}

func New() *Detector {
	buildOnce.Do(func() {
		shared = lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build()
		builds.Add(1)
	})
	return &Detector{detector: shared}
}

func (d *Detector) Detect(text string) (lingua.Language, bool) {
	if strings.TrimSpace(text) == "" {
		return lingua.Unknown, false
	}
	return d.detector.DetectLanguageOf(text)
}

// DetectISO returns the lower-case ISO 639-1 code of text's language.
func (d *Detector) DetectISO(text string) (string, bool) {
	lang, ok := d.Detect(text)
	if !ok {
		return "", false
	}
	return ISOCode(lang), true
}

// ISOCode returns the lower-case ISO 639-1 code of lang.
func ISOCode(lang lingua.Language) string {
	return strings.ToLower(lang.IsoCode639_1().String())
}
