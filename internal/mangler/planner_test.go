package mangler

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/valpere/mangler/internal/translator"
)

// scriptedChooser replays a fixed sequence of indices.
type scriptedChooser struct {
	picks []int
	calls int
}

func (s *scriptedChooser) IntN(n int) int {
	i := s.picks[s.calls%len(s.picks)] % n
	s.calls++
	return i
}

func assertChained(t *testing.T, path []translator.LanguagePair, original string) {
	t.Helper()
	if len(path) == 0 {
		return
	}
	if path[0].From != original {
		t.Errorf("path starts at %q, want %q", path[0].From, original)
	}
	if path[len(path)-1].To != original {
		t.Errorf("path ends at %q, want %q", path[len(path)-1].To, original)
	}
	for i := 0; i+1 < len(path); i++ {
		if path[i].To != path[i+1].From {
			t.Errorf("hop %d ends at %q but hop %d starts at %q", i, path[i].To, i+1, path[i+1].From)
		}
	}
}

func TestPlan_Invariants(t *testing.T) {
	banks := [][]string{
		{"en", "zh"},
		{"en", "fr", "zh"},
		{"zh-CHS", "ja", "ko", "fr", "de"},
		{"fr", "de"},
	}

	rnd := rand.New(rand.NewPCG(1, 2))
	for _, bank := range banks {
		for rounds := 2; rounds <= 25; rounds++ {
			path := Plan("en", bank, rounds, rnd)

			if len(path) != rounds {
				t.Fatalf("bank %v rounds %d: got %d hops", bank, rounds, len(path))
			}
			assertChained(t, path, "en")
			for i, hop := range path[:len(path)-1] {
				if hop.From == hop.To {
					t.Errorf("bank %v rounds %d: hop %d is a self-loop %s", bank, rounds, i, hop)
				}
			}
		}
	}
}

func TestPlan_SingleRound(t *testing.T) {
	chooser := &scriptedChooser{picks: []int{0}}

	path := Plan("en", []string{"fr", "de"}, 1, chooser)

	want := []translator.LanguagePair{{From: "en", To: "en"}}
	if len(path) != 1 || path[0] != want[0] {
		t.Errorf("expected %v, got %v", want, path)
	}
	if chooser.calls != 0 {
		t.Errorf("expected no random draws, got %d", chooser.calls)
	}
}

func TestPlan_EmptyBank(t *testing.T) {
	for _, rounds := range []int{0, 1, 5, 100} {
		path := Plan("ja", nil, rounds, DefaultChooser)

		if len(path) != 1 {
			t.Fatalf("rounds %d: expected 1 hop, got %d", rounds, len(path))
		}
		if path[0] != (translator.LanguagePair{From: "ja", To: "ja"}) {
			t.Errorf("rounds %d: expected ja -> ja, got %s", rounds, path[0])
		}
	}
}

func TestPlan_ZeroRounds(t *testing.T) {
	path := Plan("en", []string{"fr", "de"}, 0, DefaultChooser)
	if path == nil || len(path) != 0 {
		t.Errorf("expected empty non-nil path, got %#v", path)
	}

	path = Plan("en", []string{"fr", "de"}, -3, DefaultChooser)
	if len(path) != 0 {
		t.Errorf("expected empty path for negative rounds, got %v", path)
	}
}

func TestPlan_RejectsRepeatDraws(t *testing.T) {
	// Draws: en (rejected, equals previous), fr, fr (rejected), zh.
	chooser := &scriptedChooser{picks: []int{0, 1, 1, 2}}
	bank := []string{"en", "fr", "zh"}

	path := Plan("en", bank, 3, chooser)

	want := []translator.LanguagePair{
		{From: "en", To: "fr"},
		{From: "fr", To: "zh"},
		{From: "zh", To: "en"},
	}
	if len(path) != len(want) {
		t.Fatalf("expected %d hops, got %d", len(want), len(path))
	}
	for i := range want {
		if path[i] != want[i] {
			t.Errorf("hop %d: expected %s, got %s", i, want[i], path[i])
		}
	}
	if chooser.calls != 4 {
		t.Errorf("expected 4 draws, got %d", chooser.calls)
	}
}

func TestPlan_NilChooserUsesDefault(t *testing.T) {
	path := Plan("en", []string{"fr", "de"}, 4, nil)
	if len(path) != 4 {
		t.Fatalf("expected 4 hops, got %d", len(path))
	}
	assertChained(t, path, "en")
}

func TestCheckBank(t *testing.T) {
	tests := []struct {
		name    string
		bank    []string
		rounds  int
		wantErr bool
	}{
		{name: "empty bank", bank: nil, rounds: 10},
		{name: "single round", bank: []string{"en"}, rounds: 1},
		{name: "two distinct", bank: []string{"en", "fr"}, rounds: 10},
		{name: "one foreign language two rounds", bank: []string{"fr"}, rounds: 2},
		{name: "only original two rounds", bank: []string{"en"}, rounds: 2, wantErr: true},
		{name: "duplicates of original", bank: []string{"en", "en"}, rounds: 2, wantErr: true},
		{name: "one foreign language three rounds", bank: []string{"fr", "fr"}, rounds: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckBank("en", tt.bank, tt.rounds)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckBank() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrBankTooNarrow) {
				t.Errorf("expected ErrBankTooNarrow, got %v", err)
			}
		})
	}
}
