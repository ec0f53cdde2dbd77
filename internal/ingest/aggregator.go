package ingest

import (
	"context"
	"strings"
	"sync"
	"unicode"

	"github.com/rs/zerolog"

	"newsportal/pkg/models"
)

// Aggregator fetches every source concurrently and merges items that
// describe the same story.
type Aggregator struct {
	Sources []Source
	Log     zerolog.Logger
}

func NewAggregator(log zerolog.Logger, sources ...Source) *Aggregator {
	return &Aggregator{Sources: sources, Log: log}
}

// FetchResult holds merged articles plus the sources that failed.
type FetchResult struct {
	Articles []models.Article
	Fetched  int
	Failed   map[string]error
}

// FetchAndMerge never fails as a whole: one broken feed is recorded in
// Failed and the others are still merged. Output order follows source order
// and then item order, so merges are deterministic.
func (a *Aggregator) FetchAndMerge(ctx context.Context) FetchResult {
	batches := make([][]models.Article, len(a.Sources))
	errs := make([]error, len(a.Sources))

	var wg sync.WaitGroup
	for i, src := range a.Sources {
		wg.Add(1)
		go func() {
			defer wg.Done()
			batches[i], errs[i] = src.Fetch(ctx)
		}()
	}
	wg.Wait()

	res := FetchResult{Failed: map[string]error{}}
	byKey := make(map[string]int)
	for i, src := range a.Sources {
		if errs[i] != nil {
			a.Log.Warn().Err(errs[i]).Str("source", src.Name()).Msg("source failed")
			feedFetches.WithLabelValues("error").Inc()
			res.Failed[src.Name()] = errs[i]
			continue
		}
		feedFetches.WithLabelValues("ok").Inc()
		a.Log.Debug().Str("source", src.Name()).Int("items", len(batches[i])).Msg("source fetched")

		for _, art := range batches[i] {
			res.Fetched++
			key := normalizeKey(art.Title)
			if idx, ok := byKey[key]; ok {
				res.Articles[idx] = mergeArticle(res.Articles[idx], art)
				continue
			}
			byKey[key] = len(res.Articles)
			res.Articles = append(res.Articles, art)
		}
	}
	return res
}

// normalizeKey lowercases s and reduces it to letters and digits separated
// by single spaces. Marks are kept so Indic titles stay distinct.
func normalizeKey(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))

	prevSpace := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsMark(r) {
			b.WriteRune(r)
			prevSpace = false
			continue
		}
		if !prevSpace {
			b.WriteRune(' ')
			prevSpace = true
		}
	}
	return strings.TrimSpace(b.String())
}

// mergeArticle keeps base's identity and source, fills blanks from
// incoming, prefers the longer body text and unions tags and categories.
func mergeArticle(base, incoming models.Article) models.Article {
	if len(incoming.Summary) > len(base.Summary) {
		base.Summary = incoming.Summary
	}
	if len(incoming.Content) > len(base.Content) {
		base.Content = incoming.Content
	}
	if base.Language == "" {
		base.Language = incoming.Language
	}
	if base.Category == "" {
		base.Category = incoming.Category
	} else if incoming.Category != "" && !strings.EqualFold(base.Category, incoming.Category) {
		base.Categories = appendIfMissing(base.Categories, incoming.Category)
	}
	for _, c := range incoming.Categories {
		base.Categories = appendIfMissing(base.Categories, c)
	}
	for _, t := range incoming.Tags {
		base.Tags = appendIfMissing(base.Tags, t)
	}
	if base.URL == "" {
		base.URL = incoming.URL
	}
	if !incoming.PublishedAt.IsZero() && (base.PublishedAt.IsZero() || incoming.PublishedAt.Before(base.PublishedAt)) {
		base.PublishedAt = incoming.PublishedAt
	}
	return base
}

func appendIfMissing(slice []string, v string) []string {
	for _, x := range slice {
		if strings.EqualFold(x, v) {
			return slice
		}
	}
	return append(slice, v)
}
