package category

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"newsportal/internal/classify"
	"newsportal/pkg/models"
)

// Step names the rule of the precedence chain that produced a category.
type Step string

const (
	StepSourceOverride Step = "source_override"
	StepExplicit       Step = "explicit"
	StepCategories     Step = "categories"
	StepReference      Step = "reference"
	StepContent        Step = "content"
)

// Resolution is the display category of one article.
type Resolution struct {
	Category string `json:"category"`
	Label    string `json:"label,omitempty"`
	Step     Step   `json:"step"`
	Score    int    `json:"score,omitempty"`
}

// Resolver turns stored article fields into one display category:
// source override, explicit category, categories head, reference lookup,
// then content scoring. It holds no per-request state.
type Resolver struct {
	scorer    *classify.Scorer
	overrides Overrides
}

// NewResolver returns a Resolver. A nil scorer uses the built-in dictionary.
func NewResolver(scorer *classify.Scorer, overrides Overrides) *Resolver {
	if scorer == nil {
		scorer = classify.DefaultScorer()
	}
	return &Resolver{scorer: scorer, overrides: overrides}
}

func (r *Resolver) Scorer() *classify.Scorer {
	return r.scorer
}

// Resolve returns the display category of a. lookup may be nil, in which
// case no reference resolves. When requested is non-empty, any element of
// categories equal to it, directly or through a reference, is taken before
// the head element, and a reference in category resolving to it is taken
// before the other references. The result is never
// empty; classify.GeneralCategory is the terminal value.
func (r *Resolver) Resolve(a models.Article, lookup *Lookup, requested string) Resolution {
	requested = fold(requested)

	if cat, ok := r.overrides.Match(a.Source.Name); ok {
		return r.labelled(Resolution{Category: cat, Step: StepSourceOverride}, lookup)
	}

	if explicit := fold(a.Category); explicit != "" && !IsOpaqueReference(explicit) {
		return r.labelled(Resolution{Category: explicit, Step: StepExplicit}, lookup)
	}

	if res, ok := r.fromCategories(a.Categories, requested, lookup); ok {
		return res
	}

	if res, ok := r.fromReferences(a, requested, lookup); ok {
		return res
	}

	scored := r.scorer.Score(a.Title, a.Summary, a.Content, a.Language)
	return r.labelled(Resolution{Category: scored.Category, Step: StepContent, Score: scored.Score}, lookup)
}

// Category is Resolve reduced to the display value.
func (r *Resolver) Category(a models.Article, lookup *Lookup) string {
	return r.Resolve(a, lookup, "").Category
}

func (r *Resolver) fromCategories(cats []string, requested string, lookup *Lookup) (Resolution, bool) {
	if requested != "" {
		for _, c := range cats {
			v := fold(c)
			if IsOpaqueReference(v) {
				if ref, ok := lookup.ByID(v); ok && fold(ref.Key) == requested {
					return referenceResolution(ref), true
				}
				continue
			}
			if v == requested {
				return r.labelled(Resolution{Category: v, Step: StepCategories}, lookup), true
			}
		}
	}
	if len(cats) == 0 {
		return Resolution{}, false
	}
	head := fold(cats[0])
	if head == "" || IsOpaqueReference(head) {
		return Resolution{}, false
	}
	return r.labelled(Resolution{Category: head, Step: StepCategories}, lookup), true
}

func (r *Resolver) fromReferences(a models.Article, requested string, lookup *Lookup) (Resolution, bool) {
	if lookup.Len() == 0 {
		return Resolution{}, false
	}

	if requested != "" {
		refs := append([]string{a.Category}, a.Categories...)
		for _, ref := range refs {
			if !IsOpaqueReference(ref) {
				continue
			}
			if c, ok := lookup.ByID(ref); ok && fold(c.Key) == requested {
				return referenceResolution(c), true
			}
		}
	}

	heads := []string{a.Category}
	if len(a.Categories) > 0 {
		heads = append(heads, a.Categories[0])
	}
	for _, ref := range heads {
		if !IsOpaqueReference(ref) {
			continue
		}
		if c, ok := lookup.ByID(ref); ok {
			return referenceResolution(c), true
		}
	}
	// stale references fall through to content scoring
	return Resolution{}, false
}

func referenceResolution(c models.Category) Resolution {
	return Resolution{Category: fold(c.Key), Label: c.Label, Step: StepReference}
}

func (r *Resolver) labelled(res Resolution, lookup *Lookup) Resolution {
	if c, ok := lookup.BySlug(res.Category); ok {
		res.Label = c.Label
	}
	if res.Label == "" {
		res.Label = titleCase(res.Category)
	}
	return res
}

func titleCase(s string) string {
	return cases.Title(language.Und).String(s)
}
