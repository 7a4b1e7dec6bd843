package trie

import (
	"strings"

	"github.com/hupe1980/triedo/internal/arena"
	"github.com/hupe1980/triedo/internal/bitmap"
	"github.com/hupe1980/triedo/model"
)

// radixNode is reached from its parent over the edge labelled label.
// children is keyed by the first byte of each child's label.
type radixNode struct {
	label    string
	children map[byte]uint32
	ids      *bitmap.Set
}

// RadixTrie is a path-compressed trie.
//
// No key ends or branches inside an edge, so the set stored at an edge's
// lower node is also the answer for every prefix ending inside that edge.
type RadixTrie struct {
	nodes    *arena.Arena[radixNode]
	reverse  reverseMap
	postings int
}

var _ Index = (*RadixTrie)(nil)

// NewRadix creates an empty RadixTrie.
func NewRadix() *RadixTrie {
	t := &RadixTrie{
		nodes:   arena.New[radixNode](32),
		reverse: make(reverseMap),
	}
	t.nodes.MustAlloc(radixNode{ids: bitmap.New()})
	return t
}

// Add implements Index.
func (t *RadixTrie) Add(id model.ID, key string) {
	cur := uint32(0)
	t.touch(cur, id)
	rest := key
	for len(rest) > 0 {
		next, ok := t.nodes.Get(cur).children[rest[0]]
		if !ok {
			leaf := t.nodes.MustAlloc(radixNode{label: rest, ids: bitmap.New()})
			t.setChild(cur, rest[0], leaf)
			t.touch(leaf, id)
			return
		}
		label := t.nodes.Get(next).label
		l := commonPrefixLen(label, rest)
		if l < len(label) {
			next = t.split(cur, next, l)
		}
		t.touch(next, id)
		rest = rest[l:]
		cur = next
	}
}

// split cuts the edge into child after l bytes and returns the new middle
// node. The middle node starts with every identifier of child, and those
// identifiers now also live on it.
func (t *RadixTrie) split(parent, child uint32, l int) uint32 {
	c := t.nodes.Get(child)
	label := c.label
	ids := c.ids.Clone()
	c.label = label[l:]

	mid := t.nodes.MustAlloc(radixNode{
		label:    label[:l],
		children: map[byte]uint32{label[l]: child},
		ids:      ids,
	})
	t.setChild(parent, label[0], mid)

	for id := range ids.All() {
		t.reverse.record(id, mid)
		t.postings++
	}
	return mid
}

func (t *RadixTrie) setChild(parent uint32, b byte, child uint32) {
	p := t.nodes.Get(parent)
	if p.children == nil {
		p.children = make(map[byte]uint32)
	}
	p.children[b] = child
}

func (t *RadixTrie) touch(node uint32, id model.ID) {
	if t.nodes.Get(node).ids.Add(id) {
		t.reverse.record(id, node)
		t.postings++
	}
}

// Delete implements Index.
func (t *RadixTrie) Delete(id model.ID) {
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
func (t *RadixTrie) Search(key string) *bitmap.Set {
	cur := uint32(0)
	rest := key
	for len(rest) > 0 {
		next, ok := t.nodes.Get(cur).children[rest[0]]
		if !ok {
			return bitmap.New()
		}
		label := t.nodes.Get(next).label
		if len(rest) <= len(label) {
			if strings.HasPrefix(label, rest) {
				return t.nodes.Get(next).ids.Clone()
			}
			return bitmap.New()
		}
		if !strings.HasPrefix(rest, label) {
			return bitmap.New()
		}
		rest = rest[len(label):]
		cur = next
	}
	return t.nodes.Get(cur).ids.Clone()
}

// Stats implements Index.
func (t *RadixTrie) Stats() Stats {
	return Stats{
		Nodes:    t.nodes.Len(),
		Postings: t.postings,
		Tracked:  len(t.reverse),
		Bytes:    footprint(t.nodes, func(n *radixNode) *bitmap.Set { return n.ids }),
	}
}

func commonPrefixLen(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
