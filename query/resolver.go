package query

import (
	"iter"

	"github.com/hupe1980/triedo/internal/bitmap"
	"github.com/hupe1980/triedo/model"
)

// Lookuper evaluates a single term to a caller-owned identifier set.
type Lookuper interface {
	Lookup(term model.Term) *bitmap.Set
}

// Materializer turns identifiers into items.
type Materializer interface {
	Items(ids iter.Seq[model.ID]) []model.Item
}

// Resolver is the indexed engine.
type Resolver struct {
	index Lookuper
	items Materializer
}

var _ Searcher = (*Resolver)(nil)

// NewResolver creates a Resolver.
func NewResolver(index Lookuper, items Materializer) *Resolver {
	return &Resolver{index: index, items: items}
}

// Match returns the identifiers satisfying every term.
func (r *Resolver) Match(terms []model.Term) *bitmap.Set {
	if len(terms) == 0 {
		return bitmap.New()
	}
	acc := r.index.Lookup(terms[0])
	for _, t := range terms[1:] {
		if acc.IsEmpty() {
			break
		}
		acc.And(r.index.Lookup(t))
	}
	return acc
}

// Search implements Searcher.
func (r *Resolver) Search(terms []model.Term) []model.Item {
	ids := r.Match(terms)
	if ids.IsEmpty() {
		return nil
	}
	return r.items.Items(ids.All())
}
