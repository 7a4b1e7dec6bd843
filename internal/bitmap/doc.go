// Package bitmap provides the identifier set stored at every trie node.
//
// Set wraps a 64-bit Roaring bitmap. Item identifiers are dense and
// monotonically increasing, which is the workload Roaring compresses best:
// long runs of consecutive IDs collapse into run containers, and
// intersections between term result sets are container-wise ANDs.
//
// # Example Usage
//
//	words := bitmap.Of(0, 1, 2)
//	tags := bitmap.Of(1, 2, 7)
//	words.And(tags) // {1, 2}
//
//	for id := range words.All() {
//	    // ascending order
//	}
package bitmap
