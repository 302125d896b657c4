// Package mangler plans random language walks and runs text through them.
package mangler

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/valpere/mangler/internal/translator"
)

// Chooser picks an index in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type Chooser interface {
	IntN(n int) int
}

type globalChooser struct{}

func (globalChooser) IntN(n int) int { return rand.IntN(n) }

// DefaultChooser draws from the process-wide math/rand/v2 source.
var DefaultChooser Chooser = globalChooser{}

// ErrBankTooNarrow means Plan could never find a next language different
// from the previous one.
var ErrBankTooNarrow = errors.New("language bank too narrow")

// Plan returns a path of rounds hops that starts and ends at original. Every
// hop except the last moves to a language drawn from bank that differs from
// the one before it; the last hop always returns to original.
//
// An empty bank yields the single hop original -> original. rounds <= 0
// yields an empty path.
//
// Plan redraws without limit, so the bank must offer a language other than
// the previous one whenever more than one hop remains. CheckBank reports
// banks that break this.
func Plan(original string, bank []string, rounds int, rnd Chooser) []translator.LanguagePair {
	if len(bank) == 0 {
		return []translator.LanguagePair{{From: original, To: original}}
	}
	if rounds <= 0 {
		return []translator.LanguagePair{}
	}
	if rnd == nil {
		rnd = DefaultChooser
	}

	path := make([]translator.LanguagePair, 0, rounds)
	prev := original
	for i := 0; i < rounds; i++ {
		next := original
		if i != rounds-1 {
			next = bank[rnd.IntN(len(bank))]
			for next == prev {
				next = bank[rnd.IntN(len(bank))]
			}
		}
		path = append(path, translator.LanguagePair{From: prev, To: next})
		prev = next
	}

	return path
}

// CheckBank reports whether Plan(original, bank, rounds, ...) is guaranteed to
// terminate.
func CheckBank(original string, bank []string, rounds int) error {
	if len(bank) == 0 || rounds <= 1 {
		return nil
	}

	distinct := make(map[string]struct{}, len(bank))
	for _, code := range bank {
		distinct[code] = struct{}{}
	}

	switch {
	case len(distinct) >= 2:
		return nil
	case rounds == 2:
		// One intermediate hop: it only has to leave original.
		if _, onlyOriginal := distinct[original]; !onlyOriginal {
			return nil
		}
		return fmt.Errorf("%w: bank holds only %q, the original language", ErrBankTooNarrow, original)
	default:
		return fmt.Errorf("%w: %d rounds need at least 2 distinct languages, bank has %d", ErrBankTooNarrow, rounds, len(distinct))
	}
}
