package triedo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; see
// package metrics/prometheus for a Prometheus implementation.
type MetricsCollector interface {
	// RecordCreate is called after each item creation.
	RecordCreate(duration time.Duration)

	// RecordComplete is called after each completion attempt.
	// found is false when the id was unknown or already done.
	RecordComplete(duration time.Duration, found bool)

	// RecordSearch is called after each search with the number of query
	// terms and the number of items returned.
	RecordSearch(terms, results int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordCreate(time.Duration)           {}
func (NoopMetricsCollector) RecordComplete(time.Duration, bool)   {}
func (NoopMetricsCollector) RecordSearch(int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	CreateCount      atomic.Int64
	CreateTotalNanos atomic.Int64
	CompleteCount    atomic.Int64
	CompleteMisses   atomic.Int64
	SearchCount      atomic.Int64
	SearchTerms      atomic.Int64
	SearchResults    atomic.Int64
	SearchTotalNanos atomic.Int64
	EmptySearchCount atomic.Int64
}

// RecordCreate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCreate(duration time.Duration) {
	b.CreateCount.Add(1)
	b.CreateTotalNanos.Add(duration.Nanoseconds())
}

// RecordComplete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordComplete(_ time.Duration, found bool) {
	b.CompleteCount.Add(1)
	if !found {
		b.CompleteMisses.Add(1)
	}
}

// RecordSearch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSearch(terms, results int, duration time.Duration) {
	b.SearchCount.Add(1)
	b.SearchTerms.Add(int64(terms))
	b.SearchResults.Add(int64(results))
	b.SearchTotalNanos.Add(duration.Nanoseconds())
	if results == 0 {
		b.EmptySearchCount.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		CreateCount:      b.CreateCount.Load(),
		CreateAvgNanos:   avg(b.CreateTotalNanos.Load(), b.CreateCount.Load()),
		CompleteCount:    b.CompleteCount.Load(),
		CompleteMisses:   b.CompleteMisses.Load(),
		SearchCount:      b.SearchCount.Load(),
		SearchAvgTerms:   avg(b.SearchTerms.Load(), b.SearchCount.Load()),
		SearchAvgResults: avg(b.SearchResults.Load(), b.SearchCount.Load()),
		SearchAvgNanos:   avg(b.SearchTotalNanos.Load(), b.SearchCount.Load()),
		EmptySearchCount: b.EmptySearchCount.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	CreateCount      int64
	CreateAvgNanos   int64
	CompleteCount    int64
	CompleteMisses   int64
	SearchCount      int64
	SearchAvgTerms   int64
	SearchAvgResults int64
	SearchAvgNanos   int64
	EmptySearchCount int64
}
