// Package prometheus exports list operation metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	l, _ := triedo.New(triedo.WithMetricsCollector(promcollector.New(reg)))
//	http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
package prometheus

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/hupe1980/triedo"
)

const namespace = "triedo"

// Collector implements triedo.MetricsCollector with Prometheus metrics.
type Collector struct {
	Creates          prometheus.Counter
	Completions      *prometheus.CounterVec
	Searches         prometheus.Counter
	EmptySearches    prometheus.Counter
	SearchTerms      prometheus.Histogram
	SearchResults    prometheus.Histogram
	OperationLatency *prometheus.HistogramVec
}

var _ triedo.MetricsCollector = (*Collector)(nil)

// New creates a Collector and registers its metrics on reg.
// A nil reg uses prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)

	return &Collector{
		Creates: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_created_total",
			Help:      "Total items created",
		}),
		Completions: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "completions_total",
			Help:      "Total completion attempts by outcome",
		}, []string{"outcome"}),
		Searches: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_total",
			Help:      "Total searches",
		}),
		EmptySearches: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "searches_empty_total",
			Help:      "Total searches that returned no items",
		}),
		SearchTerms: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_terms",
			Help:      "Number of terms per search",
			Buckets:   []float64{0, 1, 2, 3, 4, 6, 8, 16},
		}),
		SearchResults: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Number of items returned per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		OperationLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_duration_seconds",
			Help:      "Latency of list operations in seconds",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"op"}),
	}
}

// RecordCreate implements triedo.MetricsCollector.
func (c *Collector) RecordCreate(d time.Duration) {
	c.Creates.Inc()
	c.OperationLatency.WithLabelValues("create").Observe(d.Seconds())
}

// RecordComplete implements triedo.MetricsCollector.
func (c *Collector) RecordComplete(d time.Duration, found bool) {
	outcome := "done"
	if !found {
		outcome = "not_found"
	}
	c.Completions.WithLabelValues(outcome).Inc()
	c.OperationLatency.WithLabelValues("complete").Observe(d.Seconds())
}

// RecordSearch implements triedo.MetricsCollector.
func (c *Collector) RecordSearch(terms, results int, d time.Duration) {
	c.Searches.Inc()
	if results == 0 {
		c.EmptySearches.Inc()
	}
	c.SearchTerms.Observe(float64(terms))
	c.SearchResults.Observe(float64(results))
	c.OperationLatency.WithLabelValues("search").Observe(d.Seconds())
}
