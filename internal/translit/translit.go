// Package translit converts Latin-script name input to Devanagari using a
// curated word dictionary with a greedy longest-match character mapper as
// fallback. It never fails: untranslatable characters pass through verbatim.
package translit

import "strings"

// Transliterator maps Latin-script text to Devanagari. Tables are copied at
// construction and never mutated, so a Transliterator is safe for concurrent
// use and custom tables can be injected in tests.
type Transliterator struct {
	dict  map[string]string
	table map[string]string
}

// New creates a Transliterator from a word dictionary and a romanization
// table. Both maps are copied; nil maps are treated as empty.
func New(dict, table map[string]string) *Transliterator {
	t := &Transliterator{
		dict:  make(map[string]string, len(dict)),
		table: make(map[string]string, len(table)),
	}
	for k, v := range dict {
		t.dict[k] = v
	}
	for k, v := range table {
		t.table[k] = v
	}
	return t
}

// NewDefault creates a Transliterator with the built-in curated tables.
func NewDefault() *Transliterator {
	return New(DefaultDictionary(), DefaultRomanTable())
}

// Current returns the receiver, letting a bare Transliterator stand in
// wherever a hot-reloading Provider is accepted.
func (t *Transliterator) Current() *Transliterator {
	return t
}

// DictionarySize returns the number of word dictionary entries.
func (t *Transliterator) DictionarySize() int {
	return len(t.dict)
}

// ContainsDevanagari reports whether text contains any code point in the
// Devanagari block (U+0900 to U+097F).
func ContainsDevanagari(text string) bool {
	for _, r := range text {
		if r >= 0x0900 && r <= 0x097F {
			return true
		}
	}
	return false
}

// Transliterate converts text to Devanagari. Input that already contains
// Devanagari passes through unchanged. Otherwise the input is lower-cased,
// trimmed, split on whitespace, and each token is mapped independently:
// exact dictionary lookup first, then greedy longest-match substitution
// against the romanization table. Unknown characters are copied verbatim,
// so output is never empty unless the input is.
func (t *Transliterator) Transliterate(text string) string {
	if ContainsDevanagari(text) {
		return text
	}
	trimmed := strings.ToLower(strings.TrimSpace(text))
	if trimmed == "" {
		return trimmed
	}
	tokens := strings.Fields(trimmed)
	mapped := make([]string, len(tokens))
	for i, token := range tokens {
		mapped[i] = t.mapToken(token)
	}
	return strings.Join(mapped, " ")
}

// mapToken maps one whitespace-free token. Dictionary hits win; otherwise the
// token is scanned left to right, trying 3-, 2-, then 1-character substrings
// against the romanization table and consuming the longest match.
func (t *Transliterator) mapToken(token string) string {
	if dev, ok := t.dict[token]; ok {
		return dev
	}
	runes := []rune(token)
	var b strings.Builder
	i := 0
	for i < len(runes) {
		matched := false
		for n := maxSequence; n >= 1; n-- {
			if i+n > len(runes) {
				continue
			}
			if dev, ok := t.table[string(runes[i:i+n])]; ok {
				b.WriteString(dev)
				i += n
				matched = true
				break
			}
		}
		if !matched {
			b.WriteRune(runes[i])
			i++
		}
	}
	return b.String()
}
