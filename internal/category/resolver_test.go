package category

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"newsportal/internal/classify"
	"newsportal/pkg/models"
)

const (
	techRef   = "65a1f0c2e4b0a1b2c3d4e5f6"
	sportsRef = "65a1f0c2e4b0a1b2c3d4e5f7"
	staleRef  = "65a1f0c2e4b0a1b2c3d4e5f8"
)

func testLookup() *Lookup {
	return NewLookup([]models.Category{
		{ID: techRef, Key: "technology", Label: "Technology"},
		{ID: sportsRef, Key: "sports", Label: "Sports"},
		{ID: "65a1f0c2e4b0a1b2c3d4e5f9", Key: "politics", Label: "Politics & Governance"},
	})
}

func newTestResolver() *Resolver {
	return NewResolver(classify.DefaultScorer(), DefaultOverrides())
}

func TestResolvePrecedence(t *testing.T) {
	r := newTestResolver()
	lookup := testLookup()
	politicalText := "Government announces new election schedule"

	cases := []struct {
		name      string
		article   models.Article
		requested string
		want      Resolution
	}{
		{
			name: "source override beats explicit category",
			article: models.Article{
				Title: politicalText, Language: "en",
				Category: "Politics", Source: models.Source{Name: "Crime Watch"},
			},
			want: Resolution{Category: "crime", Label: "Crime", Step: StepSourceOverride},
		},
		{
			name:    "explicit category is lowercased",
			article: models.Article{Title: "Cricket", Language: "en", Category: " Politics "},
			want:    Resolution{Category: "politics", Label: "Politics & Governance", Step: StepExplicit},
		},
		{
			name:    "categories head",
			article: models.Article{Title: politicalText, Language: "en", Categories: []string{"Sports", "politics"}},
			want:    Resolution{Category: "sports", Label: "Sports", Step: StepCategories},
		},
		{
			name:      "requested member of categories",
			article:   models.Article{Title: politicalText, Language: "en", Categories: []string{"Sports", "Weather"}},
			requested: "weather",
			want:      Resolution{Category: "weather", Label: "Weather", Step: StepCategories},
		},
		{
			name:    "reference beats content",
			article: models.Article{Title: politicalText, Language: "en", Category: techRef},
			want:    Resolution{Category: "technology", Label: "Technology", Step: StepReference},
		},
		{
			name:    "reference in categories head",
			article: models.Article{Title: politicalText, Language: "en", Categories: []string{sportsRef}},
			want:    Resolution{Category: "sports", Label: "Sports", Step: StepReference},
		},
		{
			name:      "requested reference anywhere",
			article:   models.Article{Title: politicalText, Language: "en", Category: techRef, Categories: []string{techRef, sportsRef}},
			requested: "Sports",
			want:      Resolution{Category: "sports", Label: "Sports", Step: StepReference},
		},
		{
			name:    "stale reference falls through to content",
			article: models.Article{Title: politicalText, Language: "en", Category: staleRef, Categories: []string{staleRef}},
			want:    Resolution{Category: "politics", Label: "Politics & Governance", Step: StepContent, Score: 6},
		},
		{
			name:    "nothing matches",
			article: models.Article{Title: "Weather is calm today", Language: "en"},
			want:    Resolution{Category: classify.GeneralCategory, Label: "General", Step: StepContent},
		},
		{
			name:    "blank stored values are absent",
			article: models.Article{Title: "క్రికెట్ మ్యాచ్‌లో విజయం", Language: "te", Category: "  ", Categories: []string{""}},
			want:    Resolution{Category: "sports", Label: "Sports", Step: StepContent, Score: 3},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, r.Resolve(tc.article, lookup, tc.requested))
		})
	}
}

func TestResolveWithoutLookupScoresReferences(t *testing.T) {
	r := newTestResolver()
	a := models.Article{Title: "Government announces new election schedule", Language: "en", Category: techRef}
	assert.Equal(t, "politics", r.Category(a, nil))
}

func TestResolveIsDeterministic(t *testing.T) {
	r := newTestResolver()
	lookup := testLookup()
	a := models.Article{
		Title:    "India beat Australia in a thrilling cricket match at the stadium",
		Language: "english",
	}
	first := r.Resolve(a, lookup, "")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, r.Resolve(a, lookup, ""))
	}
	assert.Equal(t, "sports", first.Category)
}

func TestNewResolverDefaultsScorer(t *testing.T) {
	r := NewResolver(nil, nil)
	assert.Same(t, classify.DefaultScorer(), r.Scorer())

	_, ok := r.overrides.Match("Crime Watch")
	assert.False(t, ok)
}
