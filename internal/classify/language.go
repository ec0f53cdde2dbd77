package classify

import "strings"

// Language is the canonical key used to pick a dictionary slice.
type Language string

const (
	English  Language = "english"
	Telugu   Language = "telugu"
	Hindi    Language = "hindi"
	Marathi  Language = "marathi"
	Tamil    Language = "tamil"
	Bengali  Language = "bengali"
	Gujarati Language = "gujarati"
	Kannada  Language = "kannada"
)

// DefaultLanguage is returned for empty or unknown codes.
const DefaultLanguage = English

type languageInfo struct {
	lang    Language
	aliases []string
	accepts func(keyword string) bool
}

// Order is the order reported by Languages. Every entry owns a keyword filter,
// so the enumeration and the set of script ranges stay in lockstep.
var languageTable = []languageInfo{
	{English, []string{"en", "eng", "english"}, isLowerLatinWord},
	{Telugu, []string{"te", "tel", "telugu"}, scriptRange(0x0C00, 0x0C7F)},
	{Hindi, []string{"hi", "hin", "hindi"}, scriptRange(0x0900, 0x097F)},
	{Marathi, []string{"mr", "mar", "marathi"}, scriptRange(0x0900, 0x097F)},
	{Tamil, []string{"ta", "tam", "tamil"}, scriptRange(0x0B80, 0x0BFF)},
	{Bengali, []string{"bn", "ben", "bengali", "bangla"}, scriptRange(0x0980, 0x09FF)},
	{Gujarati, []string{"gu", "guj", "gujarati"}, scriptRange(0x0A80, 0x0AFF)},
	{Kannada, []string{"kn", "kan", "kannada"}, scriptRange(0x0C80, 0x0CFF)},
}

var aliasIndex = func() map[string]Language {
	m := make(map[string]Language)
	for _, info := range languageTable {
		for _, a := range info.aliases {
			m[a] = info.lang
		}
	}
	return m
}()

// ResolveLanguage maps an ISO 639 code or an English language name to its
// canonical key, case-insensitively. Anything unrecognised is English.
func ResolveLanguage(code string) Language {
	if lang, ok := LookupLanguage(code); ok {
		return lang
	}
	return DefaultLanguage
}

// LookupLanguage is ResolveLanguage without the fallback: ok is false when
// code is not a known spelling of any supported language.
func LookupLanguage(code string) (Language, bool) {
	lang, ok := aliasIndex[strings.ToLower(strings.TrimSpace(code))]
	return lang, ok
}

// Languages lists every supported canonical language.
func Languages() []Language {
	out := make([]Language, 0, len(languageTable))
	for _, info := range languageTable {
		out = append(out, info.lang)
	}
	return out
}

// Aliases returns every spelling that resolves to lang, lowercased.
// It returns nil for a language outside the supported set.
func Aliases(lang Language) []string {
	for _, info := range languageTable {
		if info.lang == lang {
			return append([]string(nil), info.aliases...)
		}
	}
	return nil
}

func keywordFilter(lang Language) (func(string) bool, bool) {
	for _, info := range languageTable {
		if info.lang == lang {
			return info.accepts, true
		}
	}
	return nil, false
}

func isLowerLatinWord(keyword string) bool {
	if keyword == "" {
		return false
	}
	for i := 0; i < len(keyword); i++ {
		if keyword[i] < 'a' || keyword[i] > 'z' {
			return false
		}
	}
	return true
}

// scriptRange accepts keywords whose every non-space rune lies in [lo, hi].
func scriptRange(lo, hi rune) func(string) bool {
	return func(keyword string) bool {
		seen := false
		for _, r := range keyword {
			if r == ' ' {
				continue
			}
			if r < lo || r > hi {
				return false
			}
			seen = true
		}
		return seen
	}
}
