package triedo

import (
	"fmt"
	"log/slog"

	"github.com/hupe1980/triedo/trie"
)

// Engine selects how searches are answered.
type Engine string

const (
	// EngineIndexed answers searches from the word and tag tries.
	EngineIndexed Engine = "indexed"
	// EngineLinear scans every open item with subsequence matching.
	EngineLinear Engine = "linear"
)

// ParseEngine validates an engine name.
func ParseEngine(s string) (Engine, error) {
	switch Engine(s) {
	case EngineIndexed, EngineLinear:
		return Engine(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownEngine, s)
	}
}

type options struct {
	backend          trie.Backend
	engine           Engine
	purgeTags        bool
	metricsCollector MetricsCollector
	logger           *Logger
}

func defaultOptions() options {
	return options{
		backend:          trie.BackendMap,
		engine:           EngineIndexed,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
}

// Option configures a List.
type Option func(*options)

// WithBackend selects the trie backend used by EngineIndexed.
// All backends return identical results.
func WithBackend(b trie.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithEngine selects the search engine.
func WithEngine(e Engine) Option {
	return func(o *options) {
		o.engine = e
	}
}

// WithTagPurge controls whether completing an item also removes it from
// the tag index. The default (false) keeps completed items matchable by
// tag-only queries.
func WithTagPurge(purge bool) Option {
	return func(o *options) {
		o.purgeTags = purge
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &triedo.BasicMetricsCollector{}
//	l, _ := triedo.New(triedo.WithMetricsCollector(metrics))
//	// ... use l ...
//	stats := metrics.GetStats()
//	fmt.Printf("Searches: %d, Avg latency: %dns\n", stats.SearchCount, stats.SearchAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}
