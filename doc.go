// Package triedo provides an in-memory todo list with indexed multi-term search.
//
// Items carry free-text words and hashtag-style tags. Searches ask for the
// items matching all of several terms, and stay fast as the list grows
// because every word and tag is kept in a prefix trie.
//
// # Quick Start
//
//	l, _ := triedo.New()
//
//	l.Create([]string{"buy", "milk"}, []string{"errand"})  // id 0
//	l.Create([]string{"buy", "bread"}, nil)                // id 1
//
//	l.Search([]model.Term{model.Word("bu")})                        // 0, 1
//	l.Search([]model.Term{model.Word("buy"), model.Tag("errand")})  // 0
//
//	l.Complete(0)
//	l.Search([]model.Term{model.Word("buy")})                       // 1
//
// # Matching
//
// A term matches an item when it is a prefix of one of the item's words
// (word term) or tags (tag term). A query matches the intersection of its
// terms. An empty query matches nothing.
//
// Completing an item removes it from the word index. By default it stays in
// the tag index, so tag-only queries still return completed items; use
// WithTagPurge(true) to remove it from both.
//
// # Engines and Backends
//
//   - EngineIndexed (default): prefix tries, see package trie for backends
//   - EngineLinear: scans every open item with subsequence matching; kept
//     as a reference with intentionally different semantics
//
// # Thread Safety
//
// A List is single-writer and not safe for concurrent use.
package triedo
