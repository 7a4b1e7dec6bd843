package trie

import (
	"github.com/hupe1980/triedo/internal/arena"
	"github.com/hupe1980/triedo/internal/bitmap"
	"github.com/hupe1980/triedo/model"
)

type mapNode struct {
	label    byte
	children map[byte]uint32
	ids      *bitmap.Set
}

// MapTrie is a trie with one node per key byte.
type MapTrie struct {
	nodes    *arena.Arena[mapNode]
	reverse  reverseMap
	postings int
}

var _ Index = (*MapTrie)(nil)

// NewMap creates an empty MapTrie.
func NewMap() *MapTrie {
	t := &MapTrie{
		nodes:   arena.New[mapNode](64),
		reverse: make(reverseMap),
	}
	t.nodes.MustAlloc(mapNode{ids: bitmap.New()})
	return t
}

// Add implements Index.
func (t *MapTrie) Add(id model.ID, key string) {
	cur := uint32(0)
	t.touch(cur, id)
	for i := 0; i < len(key); i++ {
		c := key[i]
		next, ok := t.nodes.Get(cur).children[c]
		if !ok {
			next = t.nodes.MustAlloc(mapNode{label: c, ids: bitmap.New()})
			n := t.nodes.Get(cur)
			if n.children == nil {
				n.children = make(map[byte]uint32)
			}
			n.children[c] = next
		}
		cur = next
		t.touch(cur, id)
	}
}

func (t *MapTrie) touch(node uint32, id model.ID) {
	if t.nodes.Get(node).ids.Add(id) {
		t.reverse.record(id, node)
		t.postings++
	}
}

// Delete implements Index.
func (t *MapTrie) Delete(id model.ID) {
	nodes, ok := t.reverse.take(id)
	if !ok {
		return
	}
	for _, n := range nodes {
		if t.nodes.Get(n).ids.Remove(id) {
			t.postings--
		}
	}
}

// Search implements Index.
func (t *MapTrie) Search(key string) *bitmap.Set {
	cur := uint32(0)
	for i := 0; i < len(key); i++ {
		next, ok := t.nodes.Get(cur).children[key[i]]
		if !ok {
			return bitmap.New()
		}
		cur = next
	}
	return t.nodes.Get(cur).ids.Clone()
}

// Stats implements Index.
func (t *MapTrie) Stats() Stats {
	return Stats{
		Nodes:    t.nodes.Len(),
		Postings: t.postings,
		Tracked:  len(t.reverse),
		Bytes:    footprint(t.nodes, func(n *mapNode) *bitmap.Set { return n.ids }),
	}
}
