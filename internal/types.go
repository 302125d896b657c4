package internal

import (
	"time"

	"github.com/valpere/mangler/internal/translator"
)

// MangleReport is the machine-readable record of one mangle run.
type MangleReport struct {
	ID         string                    `json:"id"`
	Backend    string                    `json:"backend"`
	SourceLang string                    `json:"source_lang"`
	SourceText string                    `json:"source_text"`
	Result     string                    `json:"result,omitempty"`
	Error      string                    `json:"error,omitempty"`
	Path       []translator.LanguagePair `json:"path"`
	Attempts   int                       `json:"attempts"`
	Timestamp  time.Time                 `json:"timestamp"`
	Duration   time.Duration             `json:"duration"`
}
