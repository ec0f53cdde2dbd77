package category

import (
	"strings"

	"newsportal/pkg/models"
)

// Lookup maps references and slugs to registered categories. It is built
// once per request batch and read-only afterwards.
type Lookup struct {
	byID   map[string]models.Category
	bySlug map[string]models.Category
}

// NewLookup indexes cats by reference, key and label. Keys take precedence
// over labels when a label of one category equals the key of another.
func NewLookup(cats []models.Category) *Lookup {
	l := &Lookup{
		byID:   make(map[string]models.Category, len(cats)),
		bySlug: make(map[string]models.Category, len(cats)),
	}
	for _, c := range cats {
		l.byID[strings.ToLower(c.ID)] = c
		if label := fold(c.Label); label != "" {
			if _, taken := l.bySlug[label]; !taken {
				l.bySlug[label] = c
			}
		}
	}
	for _, c := range cats {
		if key := fold(c.Key); key != "" {
			l.bySlug[key] = c
		}
	}
	return l
}

// ByID resolves an opaque reference. A nil Lookup resolves nothing.
func (l *Lookup) ByID(id string) (models.Category, bool) {
	if l == nil {
		return models.Category{}, false
	}
	c, ok := l.byID[strings.ToLower(strings.TrimSpace(id))]
	return c, ok
}

// BySlug resolves a human-readable key or label, case-insensitively.
func (l *Lookup) BySlug(slug string) (models.Category, bool) {
	if l == nil {
		return models.Category{}, false
	}
	c, ok := l.bySlug[fold(slug)]
	return c, ok
}

func (l *Lookup) Len() int {
	if l == nil {
		return 0
	}
	return len(l.byID)
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
