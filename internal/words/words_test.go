package words

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/wordsnake/internal/actor"
)

func TestDictionaryIsValidWord(t *testing.T) {
	d := DefaultDictionary()

	tests := []struct {
		word string
		want bool
	}{
		{"cat", true},
		{"CAT", true},
		{" dog ", true},
		{"code", true},
		{"in", true},
		{"up", true},
		{"zq", false},
		{"ox", false},
		{"a", false},
		{"", false},
		{"qzxv", false},
	}

	for _, tc := range tests {
		if got := d.IsValidWord(tc.word); got != tc.want {
			t.Errorf("IsValidWord(%q) = %v, expected %v", tc.word, got, tc.want)
		}
	}
}

func TestDefaultDictionaryCoversKnownWords(t *testing.T) {
	d := DefaultDictionary()
	for _, w := range KnownWords {
		if !d.IsValidWord(w) {
			t.Errorf("known word %q rejected by default dictionary", w)
		}
	}
}

func TestLongestSuffixWord(t *testing.T) {
	d := NewDictionary([]string{"cat", "at"})

	got, ok := LongestSuffixWord("xcat", d)
	if !ok || got != "cat" {
		t.Errorf("LongestSuffixWord(xcat) = %q, %v; expected cat", got, ok)
	}
	got, ok = LongestSuffixWord("zat", d)
	if !ok || got != "at" {
		t.Errorf("LongestSuffixWord(zat) = %q, %v; expected at", got, ok)
	}
	if _, ok := LongestSuffixWord("qqq", d); ok {
		t.Error("LongestSuffixWord(qqq) should find nothing")
	}
}

func TestNewSet(t *testing.T) {
	s, err := NewSet([]string{"Dog", "cat", "dog", "a", "x1y", "  sun "}, 2)
	if err != nil {
		t.Fatalf("NewSet() error = %v", err)
	}
	want := []string{"cat", "dog", "sun"}
	got := s.Words()
	if len(got) != len(want) {
		t.Fatalf("Words() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Words()[%d] = %q, expected %q", i, got[i], want[i])
		}
	}
	if !s.Contains("CAT") || s.Contains("fox") {
		t.Error("Contains() gave wrong membership")
	}
}

func TestNewSetEmpty(t *testing.T) {
	if _, err := NewSet(nil, 2); !errors.Is(err, ErrEmptyWordSet) {
		t.Errorf("NewSet(nil) error = %v, expected ErrEmptyWordSet", err)
	}
	if _, err := NewSet([]string{"a", "b"}, 2); !errors.Is(err, ErrEmptyWordSet) {
		t.Errorf("NewSet(short words) error = %v, expected ErrEmptyWordSet", err)
	}
}

func TestValidated(t *testing.T) {
	d := DefaultDictionary()
	if _, err := Validated([]string{"cat", "dog"}, 3, d); err != nil {
		t.Errorf("Validated() error = %v", err)
	}
	if _, err := Validated([]string{"cat", "qzxv"}, 3, d); !errors.Is(err, ErrInvalidWord) {
		t.Errorf("Validated() error = %v, expected ErrInvalidWord", err)
	}
}

func TestSetPickDeterministic(t *testing.T) {
	s, err := NewSet(KnownWords, 3)
	if err != nil {
		t.Fatal(err)
	}
	a := rand.New(rand.NewSource(99))
	b := rand.New(rand.NewSource(99))
	for i := 0; i < 20; i++ {
		wa, wb := s.Pick(a), s.Pick(b)
		if wa != wb {
			t.Fatalf("pick %d: %q != %q with equal seeds", i, wa, wb)
		}
		if !s.Contains(wa) {
			t.Fatalf("Pick() returned %q outside the set", wa)
		}
	}
}

func TestTargetCompletesWord(t *testing.T) {
	target := NewTarget("cat", []actor.ID{actor.Player1, actor.AI1})

	if got := target.Accept(actor.Player1, 'C'); got != Progressed {
		t.Fatalf("Accept(C) = %v, expected Progressed", got)
	}
	if got := target.Accept(actor.AI1, 'c'); got != Progressed {
		t.Fatalf("AI Accept(c) = %v, expected Progressed", got)
	}
	if got := target.Accept(actor.Player1, 'A'); got != Progressed {
		t.Fatalf("Accept(A) = %v, expected Progressed", got)
	}
	if target.Progress(actor.Player1) != 2 || target.Progress(actor.AI1) != 1 {
		t.Fatalf("progress = %d/%d, expected 2/1",
			target.Progress(actor.Player1), target.Progress(actor.AI1))
	}

	if got := target.Accept(actor.Player1, 'T'); got != Finished {
		t.Fatalf("Accept(T) = %v, expected Finished", got)
	}
	if target.State() != Completed {
		t.Errorf("State = %v, expected completed", target.State())
	}
	if id, ok := target.Completer(); !ok || id != actor.Player1 {
		t.Errorf("Completer = %v, %v; expected player1", id, ok)
	}

	// Completed targets reject everything until reset.
	if got := target.Accept(actor.AI1, 'a'); got != Rejected {
		t.Errorf("Accept after completion = %v, expected Rejected", got)
	}

	target.Reset("dog")
	if target.State() != Collecting || target.Word() != "dog" {
		t.Errorf("after Reset: state %v word %q", target.State(), target.Word())
	}
	if target.Progress(actor.Player1) != 0 || target.Progress(actor.AI1) != 0 {
		t.Error("Reset should zero every actor's progress")
	}
}

func TestTargetRejectsWrongLetter(t *testing.T) {
	target := NewTarget("dog", []actor.ID{actor.Player1})

	if got := target.Accept(actor.Player1, 'o'); got != Rejected {
		t.Errorf("Accept(o) = %v, expected Rejected", got)
	}
	if target.Progress(actor.Player1) != 0 {
		t.Error("rejected letter should not advance progress")
	}
	if got := target.Accept(actor.Player2, 'd'); got != Rejected {
		t.Errorf("unknown actor Accept = %v, expected Rejected", got)
	}
	if r, ok := target.Required(actor.Player1); !ok || r != 'd' {
		t.Errorf("Required = %q, %v; expected 'd'", r, ok)
	}
}
