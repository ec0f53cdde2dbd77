package classify

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDictionaryNormalizesAndMerges(t *testing.T) {
	d := NewDictionary([]Entry{
		{Category: " Sports ", Keywords: []string{"Cricket!", "cricket", "", "  "}},
		{Category: "politics", Keywords: []string{"election"}},
		{Category: "SPORTS", Keywords: []string{"hockey"}},
		{Category: "", Keywords: []string{"orphan"}},
	})

	assert.Equal(t, []string{"sports", "politics"}, d.Categories())
	assert.Equal(t, []string{"cricket", "hockey"}, d.Keywords("Sports"))
	assert.Nil(t, d.Keywords("weather"))
}

func TestDictionaryReturnsCopies(t *testing.T) {
	d := NewDictionary([]Entry{{Category: "sports", Keywords: []string{"cricket"}}})
	d.Categories()[0] = "mutated"
	d.Keywords("sports")[0] = "mutated"
	assert.Equal(t, []string{"sports"}, d.Categories())
	assert.Equal(t, []string{"cricket"}, d.Keywords("sports"))
}

func TestKeywordsForFiltersByScript(t *testing.T) {
	d := DefaultDictionary()

	en := d.KeywordsFor("sports", English)
	require.NotEmpty(t, en)
	for _, kw := range en {
		for _, r := range kw {
			assert.True(t, r >= 'a' && r <= 'z', "english keyword %q", kw)
		}
	}

	te := d.KeywordsFor("sports", Telugu)
	require.NotEmpty(t, te)
	assert.Contains(t, te, "క్రికెట్")
	for _, kw := range te {
		assert.True(t, unicode.In([]rune(kw)[0], unicode.Telugu), "telugu keyword %q", kw)
	}

	assert.Equal(t, d.Keywords("sports"), d.KeywordsFor("sports", Language("klingon")))
}

func TestDefaultDictionaryCoversEveryLanguage(t *testing.T) {
	d := DefaultDictionary()
	assert.Equal(t, []string{
		"politics", "sports", "crime", "business", "technology",
		"entertainment", "health", "education", "international",
	}, d.Categories())

	for _, cat := range d.Categories() {
		for _, lang := range Languages() {
			assert.NotEmpty(t, d.KeywordsFor(cat, lang), "%s has no %s keywords", cat, lang)
		}
	}
	assert.Same(t, d, DefaultDictionary())
}
