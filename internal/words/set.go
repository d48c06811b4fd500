// Package words holds the target-word state machine and the word sources it
// draws from.
package words

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

var (
	// ErrEmptyWordSet is returned when no word is available to play.
	ErrEmptyWordSet = errors.New("words: empty word set")
	// ErrInvalidWord is returned when a word is rejected by the oracle.
	ErrInvalidWord = errors.New("words: invalid word")
)

// KnownWords is the default restricted set of target words.
var KnownWords = []string{
	"cat", "dog", "car", "sun", "run", "red", "man", "fun", "cup", "map",
	"top", "toy", "box", "fox", "log", "yes", "hat", "bat", "rat", "mat",
	"pot", "pen", "can", "win", "bus", "net", "dot", "fan", "bed", "egg",
	"four", "five", "cool", "look", "make", "game", "word", "play", "code", "read",
}

// Set is an immutable, ordered collection of playable words.
type Set struct {
	words []string
}

// NewSet normalizes list to lowercase letters, drops duplicates and words
// shorter than minLen, and sorts the result so that picks depend only on the
// RNG. Returns ErrEmptyWordSet if nothing survives.
func NewSet(list []string, minLen int) (*Set, error) {
	seen := make(map[string]struct{}, len(list))
	var out []string
	for _, w := range list {
		w = normalize(w)
		if len(w) < minLen || !isLetters(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	if len(out) == 0 {
		return nil, ErrEmptyWordSet
	}
	sort.Strings(out)
	return &Set{words: out}, nil
}

// Validated is like NewSet but also requires every word to pass the oracle.
func Validated(list []string, minLen int, oracle Oracle) (*Set, error) {
	for _, w := range list {
		if !oracle.IsValidWord(w) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidWord, w)
		}
	}
	return NewSet(list, minLen)
}

// Len returns the number of words.
func (s *Set) Len() int {
	return len(s.words)
}

// Words returns a copy of the words.
func (s *Set) Words() []string {
	out := make([]string, len(s.words))
	copy(out, s.words)
	return out
}

// Pick returns a uniformly random word. Repeats are allowed.
func (s *Set) Pick(rng *rand.Rand) string {
	return s.words[rng.Intn(len(s.words))]
}

// Contains reports whether w is in the set, ignoring case.
func (s *Set) Contains(w string) bool {
	w = normalize(w)
	i := sort.SearchStrings(s.words, w)
	return i < len(s.words) && s.words[i] == w
}

func isLetters(w string) bool {
	return w != "" && strings.IndexFunc(w, func(r rune) bool {
		return r < 'a' || r > 'z'
	}) < 0
}
