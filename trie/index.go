package trie

import (
	"errors"
	"fmt"

	"github.com/hupe1980/triedo/internal/arena"
	"github.com/hupe1980/triedo/internal/bitmap"
	"github.com/hupe1980/triedo/model"
)

// ErrUnknownBackend is returned for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown trie backend")

// Index is the interface shared by all trie backends.
type Index interface {
	// Add indexes key for id. Adding the same pair twice is a no-op.
	Add(id model.ID, key string)
	// Delete removes id from every node it was inserted into.
	// Deleting an unknown id is a no-op.
	Delete(id model.ID)
	// Search returns the identifiers having an indexed key that starts
	// with key. The returned set is owned by the caller.
	Search(key string) *bitmap.Set
	// Stats returns structural counters.
	Stats() Stats
}

// Stats describes the size of an index.
type Stats struct {
	Nodes    int    // allocated nodes, root included
	Postings int    // (node, id) pairs currently stored
	Tracked  int    // identifiers present in the reverse map
	Bytes    uint64 // reserved node storage plus identifier set payloads
}

// footprint sums the arena reservation and the size of every node's set.
func footprint[T any](nodes *arena.Arena[T], ids func(*T) *bitmap.Set) uint64 {
	total := nodes.Stats().Bytes
	for i := 0; i < nodes.Len(); i++ {
		if s := ids(nodes.Get(uint32(i))); s != nil { //nolint:gosec // bounded by arena.MaxNodes
			total += s.SizeInBytes()
		}
	}
	return total
}

// Backend names a trie implementation.
type Backend string

const (
	// BackendMap stores one node per byte with map children.
	BackendMap Backend = "map"
	// BackendNibble stores fixed 16-entry child arrays.
	BackendNibble Backend = "nibble"
	// BackendRadix stores path-compressed edges.
	BackendRadix Backend = "radix"
)

// Backends lists every available backend.
func Backends() []Backend {
	return []Backend{BackendMap, BackendNibble, BackendRadix}
}

// ParseBackend validates a backend name.
func ParseBackend(s string) (Backend, error) {
	for _, b := range Backends() {
		if string(b) == s {
			return b, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownBackend, s)
}

// New creates an empty index of the given backend.
func New(b Backend) (Index, error) {
	switch b {
	case BackendMap:
		return NewMap(), nil
	case BackendNibble:
		return NewNibble(), nil
	case BackendRadix:
		return NewRadix(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, string(b))
	}
}
