package query

import (
	"testing"

	"github.com/hupe1980/triedo/model"
	"github.com/hupe1980/triedo/store"
	"github.com/stretchr/testify/assert"
)

func TestMatchSubsequence(t *testing.T) {
	tests := []struct {
		s, sub string
		want   bool
	}{
		{"milk", "", true},
		{"milk", "mlk", true},
		{"milk", "milk", true},
		{"milk", "ilk", true},
		{"milk", "klm", false},
		{"milk", "milks", false},
		{"", "a", false},
		{"", "", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchSubsequence(tt.s, tt.sub), "%q in %q", tt.sub, tt.s)
	}
}

func TestLinear_Search(t *testing.T) {
	s := store.New(nil)
	l := NewLinear(s)

	s.Push([]string{"buy", "milk"}, []string{"errand"})
	s.Push([]string{"buy", "bread"}, nil)
	s.Push([]string{"walk", "dog"}, []string{"errand", "pets"})

	assert.Empty(t, l.Search(nil))
	assert.Equal(t, []model.ID{0, 1}, itemIDs(l.Search([]model.Term{model.Word("by")})))
	assert.Equal(t, []model.ID{0, 2}, itemIDs(l.Search([]model.Term{model.Tag("rnd")})))
	assert.Equal(t, []model.ID{2}, itemIDs(l.Search([]model.Term{model.Tag("e"), model.Word("dg")})))
	assert.Empty(t, l.Search([]model.Term{model.Tag("x")}))
}

func TestLinear_SkipsDoneItemsForEveryTermKind(t *testing.T) {
	s := store.New(nil)
	l := NewLinear(s)
	s.Push([]string{"buy", "milk"}, []string{"errand"})
	s.Complete(0)

	assert.Empty(t, l.Search([]model.Term{model.Word("buy")}))
	assert.Empty(t, l.Search([]model.Term{model.Tag("errand")}))
}
