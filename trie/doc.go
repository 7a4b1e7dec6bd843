// Package trie provides prefix indexes from strings to item identifiers.
//
// Every backend implements Index with the same observable behavior:
//
//   - Add(id, key) walks key from the root, creating missing nodes, and
//     inserts id into the set of every node on the walk, root included.
//     Every prefix of every inserted key is therefore searchable.
//   - Delete(id) removes id from every node it was ever inserted into,
//     across all keys, using the reverse map instead of a tree scan.
//   - Search(key) returns the set stored at the node reached by key, or an
//     empty set as soon as an edge is missing. This is prefix matching, not
//     substring or subsequence matching.
//
// # Backends
//
//   - BackendMap: one node per byte, children in a map
//   - BackendNibble: fixed 16-entry child arrays, two steps per key byte
//   - BackendRadix: path-compressed edges labelled with byte strings
//
// All nodes of a backend live in one arena and reference each other by
// index. Keys are expected to be valid UTF-8.
//
// # Thread Safety
//
// Indexes are not safe for concurrent use. They are owned by a single
// index manager.
package trie
