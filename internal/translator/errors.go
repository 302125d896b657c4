package translator

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a TranslationError.
type ErrorKind int

const (
	KindBackend ErrorKind = iota
	KindNetwork
	KindUnsupportedLanguage
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network failure"
	case KindUnsupportedLanguage:
		return "unsupported language"
	default:
		return "backend failure"
	}
}

// TranslationError is the only error type returned by Translator
// implementations.
type TranslationError struct {
	Kind    ErrorKind
	Service string
	Pair    LanguagePair
	Message string
	Err     error
}

func (e *TranslationError) Error() string {
	msg := fmt.Sprintf("%s: %s (%s)", e.Service, e.Kind, e.Pair)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *TranslationError) Unwrap() error {
	return e.Err
}

// KindOf reports the kind of the first TranslationError in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var te *TranslationError
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}

func unsupportedError(service string, pair LanguagePair, code string) error {
	return &TranslationError{
		Kind:    KindUnsupportedLanguage,
		Service: service,
		Pair:    pair,
		Message: fmt.Sprintf("%q is not supported", code),
	}
}

func networkError(service string, pair LanguagePair, err error) error {
	return &TranslationError{Kind: KindNetwork, Service: service, Pair: pair, Err: err}
}

func backendError(service string, pair LanguagePair, format string, args ...any) error {
	return &TranslationError{
		Kind:    KindBackend,
		Service: service,
		Pair:    pair,
		Message: fmt.Sprintf(format, args...),
	}
}
