package triedo

import (
	"errors"

	"github.com/hupe1980/triedo/trie"
)

var (
	// ErrUnknownEngine is returned when an unsupported engine is configured.
	ErrUnknownEngine = errors.New("unknown search engine")

	// ErrUnknownBackend is returned when an unsupported trie backend is configured.
	ErrUnknownBackend = trie.ErrUnknownBackend
)
