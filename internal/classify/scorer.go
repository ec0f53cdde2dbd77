package classify

import (
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/cloudflare/ahocorasick"
)

// GeneralCategory is reported when no keyword of any category matches.
const GeneralCategory = "general"

const minKeywordLen = 3

// Result is the outcome of scoring one article.
type Result struct {
	Category string `json:"category"`
	Score    int    `json:"score"`
}

// MatchKind tells whether a keyword was found as a whole word or only
// through its stem.
type MatchKind string

const (
	MatchWhole   MatchKind = "whole"
	MatchPartial MatchKind = "partial"
)

// Match is one keyword that contributed to a category score.
type Match struct {
	Category string    `json:"category"`
	Keyword  string    `json:"keyword"`
	Stem     string    `json:"stem"`
	Weight   int       `json:"weight"`
	Kind     MatchKind `json:"kind"`
}

// Explanation is a Result plus the per-category totals and the matches
// behind them.
type Explanation struct {
	Result
	Language Language       `json:"language"`
	Scores   map[string]int `json:"scores"`
	Matches  []Match        `json:"matches"`
}

type candidate struct {
	category int
	keyword  string
	stem     string
	weight   int
}

// languageIndex holds the eligible keywords of one language and a matcher
// over their distinct stems. A keyword that occurs as a whole word also
// contains its stem, so a stem hit is exactly the match condition.
type languageIndex struct {
	candidates []candidate
	byStem     [][]int
	matcher    *ahocorasick.Matcher
}

// Scorer assigns a category to article text. It is safe for concurrent use.
type Scorer struct {
	dict *Dictionary

	mu      sync.RWMutex
	indexes map[Language]*languageIndex
}

// NewScorer returns a Scorer over dict. Per-language indexes are built lazily.
func NewScorer(dict *Dictionary) *Scorer {
	return &Scorer{dict: dict, indexes: make(map[Language]*languageIndex)}
}

var defaultScorer = sync.OnceValue(func() *Scorer {
	return NewScorer(DefaultDictionary())
})

// DefaultScorer returns a Scorer over the built-in dictionary.
func DefaultScorer() *Scorer {
	return defaultScorer()
}

// Dictionary returns the dictionary the scorer was built with.
func (s *Scorer) Dictionary() *Dictionary {
	return s.dict
}

// Score classifies an article. language is resolved with ResolveLanguage,
// so an empty or unknown code scores against the English keywords.
// Empty input scores 0 and yields GeneralCategory.
func (s *Scorer) Score(title, summary, content, language string) Result {
	return s.ScoreIn(joinText(title, summary, content), ResolveLanguage(language))
}

// ScoreIn classifies raw text against lang's keywords. A Language outside
// the supported set scores against every keyword of every category.
func (s *Scorer) ScoreIn(text string, lang Language) Result {
	res, _, _ := s.score(Normalize(text), lang, false)
	return res
}

// Explain behaves like Score and also reports every matching keyword.
func (s *Scorer) Explain(title, summary, content, language string) Explanation {
	lang := ResolveLanguage(language)
	res, totals, matches := s.score(Normalize(joinText(title, summary, content)), lang, true)
	return Explanation{Result: res, Language: lang, Scores: totals, Matches: matches}
}

func (s *Scorer) score(text string, lang Language, explain bool) (Result, map[string]int, []Match) {
	cats := s.dict.categories
	sums := make([]int, len(cats))
	var matches []Match

	if text != "" {
		idx := s.index(lang)
		if idx.matcher != nil {
			padded := " " + text + " "
			var hit []int
			for _, stemID := range idx.matcher.MatchThreadSafe([]byte(text)) {
				hit = append(hit, idx.byStem[stemID]...)
			}
			sort.Ints(hit)
			for i, ci := range hit {
				if i > 0 && hit[i-1] == ci {
					continue
				}
				c := idx.candidates[ci]
				sums[c.category] += c.weight
				if explain {
					kind := MatchPartial
					if strings.Contains(padded, " "+c.keyword+" ") {
						kind = MatchWhole
					}
					matches = append(matches, Match{
						Category: cats[c.category],
						Keyword:  c.keyword,
						Stem:     c.stem,
						Weight:   c.weight,
						Kind:     kind,
					})
				}
			}
		}
	}

	best, bestScore := -1, 0
	for i, v := range sums {
		if v > bestScore {
			best, bestScore = i, v
		}
	}
	res := Result{Category: GeneralCategory}
	if best >= 0 {
		res = Result{Category: cats[best], Score: bestScore}
	}

	if !explain {
		return res, nil, nil
	}
	totals := make(map[string]int, len(cats))
	for i, c := range cats {
		totals[c] = sums[i]
	}
	return res, totals, matches
}

func (s *Scorer) index(lang Language) *languageIndex {
	s.mu.RLock()
	idx, ok := s.indexes[lang]
	s.mu.RUnlock()
	if ok {
		return idx
	}

	idx = s.buildIndex(lang)
	s.mu.Lock()
	if existing, ok := s.indexes[lang]; ok {
		idx = existing
	} else {
		s.indexes[lang] = idx
	}
	s.mu.Unlock()
	return idx
}

func (s *Scorer) buildIndex(lang Language) *languageIndex {
	idx := &languageIndex{}
	stemIDs := make(map[string]int)
	var stems []string

	for ci, cat := range s.dict.categories {
		for _, kw := range s.dict.KeywordsFor(cat, lang) {
			n := utf8.RuneCountInString(kw)
			if n < minKeywordLen {
				continue
			}
			stem := stemOf(kw, n)
			id, ok := stemIDs[stem]
			if !ok {
				id = len(stems)
				stemIDs[stem] = id
				stems = append(stems, stem)
				idx.byStem = append(idx.byStem, nil)
			}
			idx.byStem[id] = append(idx.byStem[id], len(idx.candidates))
			idx.candidates = append(idx.candidates, candidate{
				category: ci,
				keyword:  kw,
				stem:     stem,
				weight:   max(1, n/4),
			})
		}
	}
	if len(stems) > 0 {
		idx.matcher = ahocorasick.NewStringMatcher(stems)
	}
	return idx
}

// stemOf keeps the leading max(3, floor(0.7*n)) runes of a keyword of n runes.
func stemOf(kw string, n int) string {
	keep := max(minKeywordLen, n*7/10)
	if keep >= n {
		return kw
	}
	i := 0
	for pos := range kw {
		if i == keep {
			return kw[:pos]
		}
		i++
	}
	return kw
}

func joinText(title, summary, content string) string {
	return title + " " + summary + " " + content
}
