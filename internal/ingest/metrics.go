package ingest

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	feedFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newsportal",
		Subsystem: "ingest",
		Name:      "feed_fetches_total",
		Help:      "Feed fetch attempts, by outcome.",
	}, []string{"outcome"})

	importedArticles = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newsportal",
		Subsystem: "ingest",
		Name:      "articles_total",
		Help:      "Articles written by the importer.",
	}, []string{"kind"})
)
