package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItem_String(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want string
	}{
		{"words and tags", Item{ID: 0, Words: []string{"buy", "milk"}, Tags: []string{"errand", "home"}}, `0 "buy milk" #errand #home`},
		{"no tags", Item{ID: 12, Words: []string{"call", "mom"}}, `12 "call mom"`},
		{"empty", Item{ID: 3}, `3 ""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.String())
		})
	}
}

func TestItem_Clone(t *testing.T) {
	it := Item{ID: 1, Words: []string{"a"}, Tags: []string{"b"}}
	c := it.Clone()
	c.Words[0] = "x"
	c.Tags[0] = "y"
	assert.Equal(t, "a", it.Words[0])
	assert.Equal(t, "b", it.Tags[0])
}

func TestParseID(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, ID(42), id)

	_, err = ParseID("-1")
	assert.Error(t, err)
	_, err = ParseID("abc")
	assert.Error(t, err)
}

func TestTerm_String(t *testing.T) {
	assert.Equal(t, "milk", Word("milk").String())
	assert.Equal(t, "#errand", Tag("errand").String())
	assert.Equal(t, "word", WordTerm.String())
	assert.Equal(t, "tag", TagTerm.String())
}
