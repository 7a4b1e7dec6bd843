package triedo

import (
	"log/slog"
	"os"

	"github.com/hupe1980/triedo/model"
)

// Logger wraps slog.Logger with triedo-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// LogCreate logs an item creation.
func (l *Logger) LogCreate(id model.ID, words, tags int) {
	l.Debug("item created",
		"id", uint64(id),
		"words", words,
		"tags", tags,
	)
}

// LogComplete logs a completion. An unknown or already completed id is an
// expected outcome and is logged at debug level as well.
func (l *Logger) LogComplete(id model.ID, found bool) {
	if found {
		l.Debug("item completed", "id", uint64(id))
	} else {
		l.Debug("complete skipped: no open item", "id", uint64(id))
	}
}

// LogSearch logs a search.
func (l *Logger) LogSearch(terms, results int) {
	l.Debug("search completed",
		"terms", terms,
		"results", results,
	)
}
