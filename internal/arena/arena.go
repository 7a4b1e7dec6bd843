package arena

import (
	"errors"
	"math"
	"unsafe"
)

// ErrArenaFull is returned when the arena cannot address another node.
var ErrArenaFull = errors.New("arena is full")

// MaxNodes is the largest number of nodes an arena can address.
const MaxNodes = math.MaxUint32

// Stats tracks arena usage.
type Stats struct {
	Nodes    int    // Current: live nodes
	Capacity int    // Current: reserved node slots
	Bytes    uint64 // Current: reserved bytes (Capacity * node size)
}

// Arena is a contiguous, index-addressed node store.
type Arena[T any] struct {
	nodes []T
}

// New creates an arena with room for capacity nodes before growing.
func New[T any](capacity int) *Arena[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Arena[T]{nodes: make([]T, 0, capacity)}
}

// Alloc appends v and returns its index.
func (a *Arena[T]) Alloc(v T) (uint32, error) {
	if len(a.nodes) >= MaxNodes {
		return 0, ErrArenaFull
	}
	a.nodes = append(a.nodes, v)
	return uint32(len(a.nodes) - 1), nil //nolint:gosec // bounded by MaxNodes
}

// MustAlloc is like Alloc but panics when the arena is full.
func (a *Arena[T]) MustAlloc(v T) uint32 {
	idx, err := a.Alloc(v)
	if err != nil {
		panic(err)
	}
	return idx
}

// Get returns a pointer to the node at idx.
// WARNING: the pointer is invalidated by the next Alloc.
func (a *Arena[T]) Get(idx uint32) *T {
	return &a.nodes[idx]
}

// Len returns the number of allocated nodes.
func (a *Arena[T]) Len() int {
	return len(a.nodes)
}

// Stats returns current usage.
func (a *Arena[T]) Stats() Stats {
	var zero T
	return Stats{
		Nodes:    len(a.nodes),
		Capacity: cap(a.nodes),
		Bytes:    uint64(cap(a.nodes)) * uint64(unsafe.Sizeof(zero)),
	}
}
