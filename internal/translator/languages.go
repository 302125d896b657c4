package translator

import "slices"

// languageSet keeps a backend's codes in their declared order and answers
// membership queries against the same list.
type languageSet struct {
	codes []string
	index map[string]struct{}
}

func newLanguageSet(codes ...string) languageSet {
	index := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		index[c] = struct{}{}
	}
	return languageSet{codes: codes, index: index}
}

func (s languageSet) list() []string {
	return slices.Clone(s.codes)
}

func (s languageSet) has(code string) bool {
	_, ok := s.index[code]
	return ok
}

// check returns an UnsupportedLanguage error naming the first code of pair
// that the set does not contain.
func (s languageSet) check(service string, pair LanguagePair) error {
	if !s.has(pair.From) {
		return unsupportedError(service, pair, pair.From)
	}
	if !s.has(pair.To) {
		return unsupportedError(service, pair, pair.To)
	}
	return nil
}
