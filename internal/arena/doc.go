// Package arena provides a contiguous node arena for trie backends.
//
// Nodes live in one growable slice and reference each other by uint32
// index instead of by pointer. This keeps the node graph free of
// ownership cycles and lets auxiliary structures (the reverse map) store
// plain indices.
//
// # Safety
//
// Pointers returned by Get are valid only until the next Alloc, which may
// reallocate the backing slice. Hold indices, not pointers, across
// allocations.
package arena
