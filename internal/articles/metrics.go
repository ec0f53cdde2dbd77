package articles

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	listRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newsportal",
		Subsystem: "listing",
		Name:      "requests_total",
		Help:      "Listings served, by filtering path.",
	}, []string{"path"})

	storeFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "newsportal",
		Subsystem: "listing",
		Name:      "store_failures_total",
		Help:      "Listings that failed because the store could not be queried.",
	}, []string{"path"})

	smartCandidates = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "newsportal",
		Subsystem: "listing",
		Name:      "smart_candidates",
		Help:      "Superset size fetched by the in-memory category filter.",
		Buckets:   []float64{0, 10, 25, 50, 100, 200, 350, 500},
	})

	smartCapHits = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "newsportal",
		Subsystem: "listing",
		Name:      "smart_cap_hits_total",
		Help:      "In-memory filters whose superset reached the cap, making the total approximate.",
	})
)
