package words

import (
	"bufio"
	"bytes"
	_ "embed"
	"strings"
)

//go:embed data/dictionary.txt
var dictionaryTXT []byte

// Oracle answers whether a candidate string is a real word.
// An oracle that cannot decide must answer false.
type Oracle interface {
	IsValidWord(candidate string) bool
}

// OracleFunc adapts a plain function to the Oracle interface.
type OracleFunc func(candidate string) bool

// IsValidWord calls f(candidate).
func (f OracleFunc) IsValidWord(candidate string) bool {
	return f(candidate)
}

// commonTwoLetter lists the only two-letter strings accepted as words.
var commonTwoLetter = map[string]struct{}{
	"as": {}, "at": {}, "be": {}, "by": {}, "do": {}, "go": {}, "he": {}, "if": {},
	"in": {}, "is": {}, "it": {}, "me": {}, "my": {}, "no": {}, "of": {}, "on": {},
	"or": {}, "so": {}, "to": {}, "up": {}, "us": {}, "we": {},
}

// Dictionary is an in-memory word list.
type Dictionary struct {
	words map[string]struct{}
}

// NewDictionary builds a dictionary from the given words. Matching is
// case-insensitive.
func NewDictionary(list []string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(list))}
	for _, w := range list {
		if w = normalize(w); w != "" {
			d.words[w] = struct{}{}
		}
	}
	return d
}

// DefaultDictionary returns the built-in dictionary.
func DefaultDictionary() *Dictionary {
	return NewDictionary(parseList(dictionaryTXT))
}

// Len returns the number of words longer than two letters.
func (d *Dictionary) Len() int {
	return len(d.words)
}

// IsValidWord accepts listed words longer than two letters and the common
// two-letter words. Everything else, including single letters, is rejected.
func (d *Dictionary) IsValidWord(candidate string) bool {
	w := normalize(candidate)
	switch {
	case len(w) > 2:
		_, ok := d.words[w]
		return ok
	case len(w) == 2:
		_, ok := commonTwoLetter[w]
		return ok
	default:
		return false
	}
}

// LongestSuffixWord scans collected from left to right and returns the first
// suffix the oracle accepts, which is also the longest one.
func LongestSuffixWord(collected string, oracle Oracle) (string, bool) {
	for i := range collected {
		if candidate := collected[i:]; oracle.IsValidWord(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func normalize(w string) string {
	return strings.ToLower(strings.TrimSpace(w))
}

// parseList reads one word per line, skipping blanks and # comments.
func parseList(data []byte) []string {
	var out []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}
