package trie

import (
	"testing"

	"github.com/hupe1980/triedo/model"
	"github.com/stretchr/testify/assert"
)

func TestRadixTrie_SplitInheritsIdentifiers(t *testing.T) {
	tr := NewRadix()
	tr.Add(0, "abcd")
	assert.Equal(t, 2, tr.Stats().Nodes)

	tr.Add(1, "ab")
	assert.Equal(t, 3, tr.Stats().Nodes, "edge split once")
	assert.Equal(t, []model.ID{0, 1}, ids(tr.Search("a")))
	assert.Equal(t, []model.ID{0}, ids(tr.Search("abc")))

	tr.Delete(0)
	assert.Equal(t, []model.ID{1}, ids(tr.Search("a")))
	assert.Equal(t, []model.ID{1}, ids(tr.Search("ab")))
	assert.Empty(t, ids(tr.Search("abc")))
}

func TestRadixTrie_DivergingSplit(t *testing.T) {
	tr := NewRadix()
	tr.Add(0, "bread")
	tr.Add(1, "brew")

	assert.Equal(t, 4, tr.Stats().Nodes)
	assert.Equal(t, []model.ID{0, 1}, ids(tr.Search("bre")))
	assert.Equal(t, []model.ID{0}, ids(tr.Search("brea")))
	assert.Equal(t, []model.ID{1}, ids(tr.Search("brew")))
	assert.Empty(t, ids(tr.Search("brx")))
}

func TestNibbleTrie_IntermediateNodesCarryNoSets(t *testing.T) {
	tr := NewNibble()
	tr.Add(0, "a")
	st := tr.Stats()
	assert.Equal(t, 3, st.Nodes)
	assert.Equal(t, 2, st.Postings, "root and the byte-boundary node")
}

func TestMapTrie_NodePerRune(t *testing.T) {
	tr := NewMap()
	tr.Add(0, "né")
	assert.Equal(t, 3, tr.Stats().Nodes)
	assert.Equal(t, 3, tr.Stats().Postings)
}
