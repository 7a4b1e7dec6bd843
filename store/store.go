// Package store holds items in creation order.
//
// The store is append-only: items are never removed, only flagged done.
// Identifiers are assigned from a counter starting at 0, so the item slice
// is always sorted by identifier and lookups are binary searches.
package store

import (
	"cmp"
	"iter"
	"slices"

	"github.com/hupe1980/triedo/model"
)

// Observer receives item lifecycle events.
type Observer interface {
	OnCreate(id model.ID, words, tags []string)
	OnComplete(id model.ID)
}

// Store is an append-only sequence of items.
// It is not safe for concurrent use.
type Store struct {
	next  model.ID
	items []model.Item
	obs   Observer
}

// New creates an empty store. obs may be nil.
func New(obs Observer) *Store {
	return &Store{obs: obs}
}

// Push appends a new item and returns a copy of it.
func (s *Store) Push(words, tags []string) model.Item {
	it := model.Item{
		ID:    s.next,
		Words: append([]string(nil), words...),
		Tags:  append([]string(nil), tags...),
	}
	s.items = append(s.items, it)
	s.next++

	if s.obs != nil {
		s.obs.OnCreate(it.ID, it.Words, it.Tags)
	}
	return it.Clone()
}

// Complete marks the item done. It reports false when no such item exists
// or when it was already done; in both cases nothing changes.
func (s *Store) Complete(id model.ID) (model.ID, bool) {
	n, ok := s.find(id)
	if !ok || s.items[n].Done {
		return 0, false
	}
	s.items[n].Done = true
	if s.obs != nil {
		s.obs.OnComplete(id)
	}
	return id, true
}

// Get returns a copy of the item with the given identifier.
func (s *Store) Get(id model.ID) (model.Item, bool) {
	n, ok := s.find(id)
	if !ok {
		return model.Item{}, false
	}
	return s.items[n].Clone(), true
}

// Items materializes the given identifiers, skipping unknown ones.
// Order follows ids.
func (s *Store) Items(ids iter.Seq[model.ID]) []model.Item {
	var out []model.Item
	for id := range ids {
		if it, ok := s.Get(id); ok {
			out = append(out, it)
		}
	}
	return out
}

// All yields every item in identifier order. Yielded items are copies.
func (s *Store) All() iter.Seq[model.Item] {
	return func(yield func(model.Item) bool) {
		for _, it := range s.items {
			if !yield(it.Clone()) {
				return
			}
		}
	}
}

// Len returns the number of items, done or not.
func (s *Store) Len() int {
	return len(s.items)
}

func (s *Store) find(id model.ID) (int, bool) {
	return slices.BinarySearchFunc(s.items, id, func(it model.Item, id model.ID) int {
		return cmp.Compare(it.ID, id)
	})
}
