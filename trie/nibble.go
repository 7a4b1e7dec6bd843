package trie

import (
	"github.com/hupe1980/triedo/internal/arena"
	"github.com/hupe1980/triedo/internal/bitmap"
	"github.com/hupe1980/triedo/model"
)

// nibbleNode has a fixed 16-way fan-out. Child 0 means "no child":
// the root occupies slot 0 and is never anyone's child.
// ids is nil on the intermediate (high nibble) nodes.
type nibbleNode struct {
	children [16]uint32
	ids      *bitmap.Set
}

// NibbleTrie is a trie over a fixed 16-symbol alphabet.
// Each key byte is consumed as its high nibble then its low nibble, so
// identifier sets only live on nodes at byte boundaries.
type NibbleTrie struct {
	nodes    *arena.Arena[nibbleNode]
	reverse  reverseMap
	postings int
}

var _ Index = (*NibbleTrie)(nil)

// NewNibble creates an empty NibbleTrie.
func NewNibble() *NibbleTrie {
	t := &NibbleTrie{
		nodes:   arena.New[nibbleNode](128),
		reverse: make(reverseMap),
	}
	t.nodes.MustAlloc(nibbleNode{ids: bitmap.New()})
	return t
}

// Add implements Index.
func (t *NibbleTrie) Add(id model.ID, key string) {
	cur := uint32(0)
	t.touch(cur, id)
	for i := 0; i < len(key); i++ {
		cur = t.child(cur, key[i]>>4, false)
		cur = t.child(cur, key[i]&0x0f, true)
		t.touch(cur, id)
	}
}

func (t *NibbleTrie) child(cur uint32, nib byte, boundary bool) uint32 {
	if next := t.nodes.Get(cur).children[nib]; next != 0 {
		return next
	}
	n := nibbleNode{}
	if boundary {
		n.ids = bitmap.New()
	}
	next := t.nodes.MustAlloc(n)
	t.nodes.Get(cur).children[nib] = next
	return next
}

func (t *NibbleTrie) touch(node uint32, id model.ID) {
	if t.nodes.Get(node).ids.Add(id) {
		t.reverse.record(id, node)
		t.postings++
	}
}

// Delete implements Index.
func (t *NibbleTrie) Delete(id model.ID) {
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
func (t *NibbleTrie) Search(key string) *bitmap.Set {
	cur := uint32(0)
	for i := 0; i < len(key); i++ {
		if cur = t.nodes.Get(cur).children[key[i]>>4]; cur == 0 {
			return bitmap.New()
		}
		if cur = t.nodes.Get(cur).children[key[i]&0x0f]; cur == 0 {
			return bitmap.New()
		}
	}
	return t.nodes.Get(cur).ids.Clone()
}

// Stats implements Index.
func (t *NibbleTrie) Stats() Stats {
	return Stats{
		Nodes:    t.nodes.Len(),
		Postings: t.postings,
		Tracked:  len(t.reverse),
		Bytes:    footprint(t.nodes, func(n *nibbleNode) *bitmap.Set { return n.ids }),
	}
}
