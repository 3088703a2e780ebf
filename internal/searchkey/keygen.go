// Package searchkey builds the ordered canonical lookup keys for name search.
package searchkey

import (
	"strings"

	"github.com/gramseva/matadar/internal/translit"
)

// Delimiter joins canonicized name parts into index keys.
const Delimiter = "_"

// Source supplies the transliterator in effect for a lookup. Both a bare
// *translit.Transliterator and a hot-reloading *translit.Provider satisfy it.
type Source interface {
	Current() *translit.Transliterator
}

// Generator derives index lookup keys from parsed name fields.
type Generator struct {
	source Source
}

// NewGenerator creates a Generator using the given transliterator source.
func NewGenerator(source Source) *Generator {
	return &Generator{source: source}
}

// Keys transliterates each field independently and returns the lookup keys,
// most specific first:
//
//	last_first_middle  (all three present)
//	first_last         (both present)
//	last               (present)
//
// Combinations with an empty field are omitted entirely. The order matters:
// the resolver short-circuits on the first tier that yields hits.
func (g *Generator) Keys(first, middle, last string) []string {
	tr := g.source.Current()
	first = tr.Transliterate(strings.TrimSpace(first))
	middle = tr.Transliterate(strings.TrimSpace(middle))
	last = tr.Transliterate(strings.TrimSpace(last))

	keys := make([]string, 0, 3)
	if first != "" && middle != "" && last != "" {
		keys = append(keys, last+Delimiter+first+Delimiter+middle)
	}
	if first != "" && last != "" {
		keys = append(keys, first+Delimiter+last)
	}
	if last != "" {
		keys = append(keys, last)
	}
	return keys
}
