package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the search HTTP handler
	SearchLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "search_latency_seconds",
		Help:    "Latency of the hybrid search handler",
		Buckets: prometheus.DefBuckets,
	})

	// Searches served, labelled by the strategy that produced the ranking
	SearchRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "search_requests_total",
		Help: "Total number of search requests by strategy",
	}, []string{"strategy"})

	// How often a scorer was unavailable and the combiner re-blended without it
	StrategyFallbacksTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "search_strategy_fallbacks_total",
		Help: "Times a scorer was dropped from the blend",
	}, []string{"scorer"})

	// Result count distribution after filtering
	SearchResultCount = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "search_result_count",
		Help:    "Number of items returned per search",
		Buckets: []float64{0, 1, 3, 5, 10, 15, 20},
	})

	// For-you feed requests
	FeedRequestsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "feed_requests_total",
		Help: "Total number of for-you feed requests",
	})
)

func Init() {
	prometheus.MustRegister(
		SearchLatency,
		SearchRequestsTotal,
		StrategyFallbacksTotal,
		SearchResultCount,
		FeedRequestsTotal,
	)
}
