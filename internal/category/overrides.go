package category

import (
	"strings"

	"newsportal/pkg/utils"
)

// OverrideRule pins a source to a category. Pattern is compared with the
// source name case-insensitively, as a whole or as a prefix.
type OverrideRule struct {
	Pattern  string
	Prefix   bool
	Category string
}

// Overrides is an ordered rule table; the first matching rule wins.
type Overrides []OverrideRule

// DefaultOverrides lists feeds whose coverage is a single topic.
func DefaultOverrides() Overrides {
	return Overrides{
		{Pattern: "Crime Watch", Category: "crime"},
		{Pattern: "Sports Desk", Prefix: true, Category: "sports"},
		{Pattern: "Business Standard Markets", Category: "business"},
		{Pattern: "Tech ", Prefix: true, Category: "technology"},
		{Pattern: "Health Bulletin", Category: "health"},
	}
}

// OverridesFromConfig converts configured rules. An empty list keeps the
// built-in table.
func OverridesFromConfig(rules []utils.OverrideConfig) Overrides {
	if len(rules) == 0 {
		return DefaultOverrides()
	}
	out := make(Overrides, 0, len(rules))
	for _, r := range rules {
		if strings.TrimSpace(r.Pattern) == "" || strings.TrimSpace(r.Category) == "" {
			continue
		}
		out = append(out, OverrideRule{
			Pattern:  r.Pattern,
			Prefix:   strings.EqualFold(strings.TrimSpace(r.Match), "prefix"),
			Category: r.Category,
		})
	}
	return out
}

// Match returns the category pinned to sourceName, lowercased.
func (o Overrides) Match(sourceName string) (string, bool) {
	name := strings.ToLower(strings.TrimSpace(sourceName))
	if name == "" {
		return "", false
	}
	for _, r := range o {
		p := strings.ToLower(r.Pattern)
		if !r.Prefix {
			p = strings.TrimSpace(p)
		}
		if p == "" {
			continue
		}
		if name == p || (r.Prefix && strings.HasPrefix(name, p)) {
			return fold(r.Category), true
		}
	}
	return "", false
}
