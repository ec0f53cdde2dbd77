package classify

import (
	"strings"
	"sync"
)

// Entry declares the keywords of one category. Keywords of every supported
// language live in the same list; the scorer partitions them by script.
type Entry struct {
	Category string
	Keywords []string
}

// Dictionary is an immutable category -> keywords table. Category order is
// the declaration order and decides ties in the scorer.
type Dictionary struct {
	categories []string
	keywords   map[string][]string
}

// NewDictionary copies entries into a Dictionary. Category names are trimmed
// and lowercased, keywords are normalized, and blanks and duplicates within a
// category are dropped. A repeated category is merged into its first position.
func NewDictionary(entries []Entry) *Dictionary {
	d := &Dictionary{keywords: make(map[string][]string)}
	seen := make(map[string]map[string]struct{})

	for _, e := range entries {
		cat := strings.ToLower(strings.TrimSpace(e.Category))
		if cat == "" {
			continue
		}
		if _, ok := seen[cat]; !ok {
			seen[cat] = make(map[string]struct{})
			d.categories = append(d.categories, cat)
		}
		for _, kw := range e.Keywords {
			kw = Normalize(kw)
			if kw == "" {
				continue
			}
			if _, dup := seen[cat][kw]; dup {
				continue
			}
			seen[cat][kw] = struct{}{}
			d.keywords[cat] = append(d.keywords[cat], kw)
		}
	}
	return d
}

// Categories returns the categories in declaration order.
func (d *Dictionary) Categories() []string {
	return append([]string(nil), d.categories...)
}

// Keywords returns the normalized keywords of category, or nil.
func (d *Dictionary) Keywords(category string) []string {
	return append([]string(nil), d.keywords[strings.ToLower(strings.TrimSpace(category))]...)
}

// KeywordsFor returns the keywords of category that belong to lang's script.
// An unsupported language gets the full list.
func (d *Dictionary) KeywordsFor(category string, lang Language) []string {
	all := d.keywords[strings.ToLower(strings.TrimSpace(category))]
	accepts, ok := keywordFilter(lang)
	if !ok {
		return append([]string(nil), all...)
	}
	var out []string
	for _, kw := range all {
		if accepts(kw) {
			out = append(out, kw)
		}
	}
	return out
}

var defaultDictionary = sync.OnceValue(func() *Dictionary {
	return NewDictionary(defaultEntries)
})

// DefaultDictionary returns the process-wide built-in dictionary.
func DefaultDictionary() *Dictionary {
	return defaultDictionary()
}
