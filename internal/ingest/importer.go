package ingest

import (
	"context"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"newsportal/internal/articles"
	"newsportal/internal/category"
	"newsportal/pkg/models"
)

// Store is the write side of the article repository.
type Store interface {
	UpsertMany(ctx context.Context, items []models.Article) ([]string, error)
}

// Resolution supplies what is needed to announce an article with its
// display category. *articles.Engine satisfies it.
type Resolution interface {
	Lookup(ctx context.Context) (*category.Lookup, error)
	Resolver() *category.Resolver
}

type Importer struct {
	Aggregator *Aggregator
	Store      Store
	Resolution Resolution
	Publisher  articles.Publisher
	Log        zerolog.Logger
}

type Report struct {
	Fetched int      `json:"fetched"`
	Merged  int      `json:"merged"`
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Failed  []string `json:"failed,omitempty"`
}

// Run performs one import pass. Only a store failure is an error; failing
// feeds are listed in the report.
func (im *Importer) Run(ctx context.Context) (Report, error) {
	res := im.Aggregator.FetchAndMerge(ctx)

	rep := Report{Fetched: res.Fetched, Merged: len(res.Articles)}
	for name := range res.Failed {
		rep.Failed = append(rep.Failed, name)
	}
	sort.Strings(rep.Failed)

	if len(res.Articles) == 0 {
		return rep, nil
	}

	created, err := im.Store.UpsertMany(ctx, res.Articles)
	if err != nil {
		return rep, fmt.Errorf("import: %w", err)
	}
	rep.Created = len(created)
	rep.Updated = len(res.Articles) - len(created)
	importedArticles.WithLabelValues("created").Add(float64(rep.Created))
	importedArticles.WithLabelValues("updated").Add(float64(rep.Updated))

	im.announce(ctx, res.Articles, created)

	im.Log.Info().
		Int("fetched", rep.Fetched).
		Int("merged", rep.Merged).
		Int("created", rep.Created).
		Int("updated", rep.Updated).
		Strs("failed", rep.Failed).
		Msg("import finished")
	return rep, nil
}

func (im *Importer) announce(ctx context.Context, items []models.Article, created []string) {
	if im.Publisher == nil || im.Resolution == nil || len(created) == 0 {
		return
	}
	lookup, err := im.Resolution.Lookup(ctx)
	if err != nil {
		im.Log.Warn().Err(err).Msg("skipping live announcements")
		return
	}

	isNew := make(map[string]bool, len(created))
	for _, id := range created {
		isNew[id] = true
	}
	for _, a := range items {
		if isNew[a.ID] {
			im.Publisher.Publish(articles.View(im.Resolution.Resolver(), a, lookup, ""))
		}
	}
}
