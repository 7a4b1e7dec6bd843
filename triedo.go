package triedo

import (
	"fmt"
	"time"

	"github.com/hupe1980/triedo/index"
	"github.com/hupe1980/triedo/model"
	"github.com/hupe1980/triedo/query"
	"github.com/hupe1980/triedo/store"
	"github.com/hupe1980/triedo/trie"
)

// Lister is the public contract of a todo list.
type Lister interface {
	// Create appends a new item and returns it.
	Create(words, tags []string) model.Item
	// Complete marks an open item done. It reports false when the id is
	// unknown or the item is already done.
	Complete(id model.ID) (model.ID, bool)
	// Search returns the items matching every term, ascending by id.
	Search(terms []model.Term) []model.Item
}

// Stats describes a List.
type Stats struct {
	Engine  Engine
	Backend trie.Backend
	Items   int
	Done    int
	Index   index.Stats // zero for EngineLinear
}

// List is a todo list with indexed search.
type List struct {
	opts     options
	store    *store.Store
	index    *index.Manager
	searcher query.Searcher
	done     int
}

var _ Lister = (*List)(nil)

// New creates an empty List.
func New(optFns ...Option) (*List, error) {
	o := defaultOptions()
	for _, fn := range optFns {
		fn(&o)
	}

	l := &List{opts: o}

	switch o.engine {
	case EngineIndexed:
		m, err := index.New(o.backend, index.WithTagPurge(o.purgeTags))
		if err != nil {
			return nil, err
		}
		l.index = m
		l.store = store.New(m)
		l.searcher = query.NewResolver(m, l.store)
	case EngineLinear:
		l.store = store.New(nil)
		l.searcher = query.NewLinear(l.store)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, string(o.engine))
	}

	o.logger.Debug("list created",
		"engine", string(o.engine),
		"backend", string(o.backend),
		"purge_tags", o.purgeTags,
	)
	return l, nil
}

// Create implements Lister.
func (l *List) Create(words, tags []string) model.Item {
	start := time.Now()
	it := l.store.Push(words, tags)
	l.opts.metricsCollector.RecordCreate(time.Since(start))
	l.opts.logger.LogCreate(it.ID, len(it.Words), len(it.Tags))
	return it
}

// Complete implements Lister.
func (l *List) Complete(id model.ID) (model.ID, bool) {
	start := time.Now()
	got, ok := l.store.Complete(id)
	if ok {
		l.done++
	}
	l.opts.metricsCollector.RecordComplete(time.Since(start), ok)
	l.opts.logger.LogComplete(id, ok)
	return got, ok
}

// Search implements Lister.
func (l *List) Search(terms []model.Term) []model.Item {
	start := time.Now()
	items := l.searcher.Search(terms)
	l.opts.metricsCollector.RecordSearch(len(terms), len(items), time.Since(start))
	l.opts.logger.LogSearch(len(terms), len(items))
	return items
}

// Get returns the item with the given id, done or not.
func (l *List) Get(id model.ID) (model.Item, bool) {
	return l.store.Get(id)
}

// Len returns the number of items ever created.
func (l *List) Len() int {
	return l.store.Len()
}

// Stats returns a snapshot of list and index sizes.
func (l *List) Stats() Stats {
	st := Stats{
		Engine:  l.opts.engine,
		Backend: l.opts.backend,
		Items:   l.store.Len(),
		Done:    l.done,
	}
	if l.index != nil {
		st.Index = l.index.Stats()
	}
	return st
}
