// Package query answers "contains all of these terms" searches.
//
// Two engines share the Searcher interface and deliberately differ in
// matching semantics:
//
//   - Resolver evaluates each term as a prefix lookup against the word or
//     tag index and intersects the per-term sets. Completed items vanish
//     from word lookups because completion purges the word index; whether
//     they vanish from tag lookups depends on the index manager's policy.
//   - Linear scans every open item and accepts a term when it is a
//     subsequence (not necessarily contiguous) of some word or tag.
//
// "mlk" therefore matches "milk" under Linear but not under Resolver.
// Both engines return an empty result for an empty query and order results
// by ascending identifier.
package query

import "github.com/hupe1980/triedo/model"

// Searcher is the read side of a todo list.
type Searcher interface {
	Search(terms []model.Term) []model.Item
}
