package index

import (
	"github.com/hupe1980/triedo/internal/bitmap"
	"github.com/hupe1980/triedo/model"
	"github.com/hupe1980/triedo/trie"
)

// Stats reports the size of both indexes.
type Stats struct {
	Words trie.Stats
	Tags  trie.Stats
}

// Option configures a Manager.
type Option func(*Manager)

// WithTagPurge controls whether completing an item also removes it from
// the tag index.
func WithTagPurge(purge bool) Option {
	return func(m *Manager) {
		m.purgeTags = purge
	}
}

// Manager is the dual word/tag index.
type Manager struct {
	words     trie.Index
	tags      trie.Index
	purgeTags bool
}

// New creates a Manager with two empty indexes of the given backend.
func New(backend trie.Backend, opts ...Option) (*Manager, error) {
	words, err := trie.New(backend)
	if err != nil {
		return nil, err
	}
	tags, err := trie.New(backend)
	if err != nil {
		return nil, err
	}
	return NewWithIndexes(words, tags, opts...), nil
}

// NewWithIndexes creates a Manager over caller-provided indexes.
func NewWithIndexes(words, tags trie.Index, opts ...Option) *Manager {
	m := &Manager{words: words, tags: tags}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// PurgesTags reports the completion policy for the tag index.
func (m *Manager) PurgesTags() bool {
	return m.purgeTags
}

// OnCreate indexes the words and tags of a new item.
func (m *Manager) OnCreate(id model.ID, words, tags []string) {
	for _, w := range words {
		m.words.Add(id, w)
	}
	for _, t := range tags {
		m.tags.Add(id, t)
	}
}

// OnComplete removes a completed item from the word index, and from the
// tag index when tag purging is enabled.
func (m *Manager) OnComplete(id model.ID) {
	m.words.Delete(id)
	if m.purgeTags {
		m.tags.Delete(id)
	}
}

// Lookup evaluates a single term against the index matching its kind.
// The returned set is owned by the caller.
func (m *Manager) Lookup(term model.Term) *bitmap.Set {
	if term.Kind == model.TagTerm {
		return m.tags.Search(term.Value)
	}
	return m.words.Search(term.Value)
}

// Stats returns the size of both indexes.
func (m *Manager) Stats() Stats {
	return Stats{Words: m.words.Stats(), Tags: m.tags.Stats()}
}
