package store

import (
	"slices"
	"testing"

	"github.com/hupe1980/triedo/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockObserver struct {
	mock.Mock
}

func (m *mockObserver) OnCreate(id model.ID, words, tags []string) {
	m.Called(id, words, tags)
}

func (m *mockObserver) OnComplete(id model.ID) {
	m.Called(id)
}

func TestStore_PushAssignsSequentialIDs(t *testing.T) {
	s := New(nil)
	for i := 0; i < 5; i++ {
		it := s.Push([]string{"w"}, nil)
		assert.Equal(t, model.ID(i), it.ID)
		assert.False(t, it.Done)
	}
	assert.Equal(t, 5, s.Len())
}

func TestStore_PushNotifiesObserver(t *testing.T) {
	obs := new(mockObserver)
	obs.On("OnCreate", model.ID(0), []string{"buy", "milk"}, []string{"errand"}).Once()

	s := New(obs)
	s.Push([]string{"buy", "milk"}, []string{"errand"})

	obs.AssertExpectations(t)
}

func TestStore_PushCopiesInput(t *testing.T) {
	s := New(nil)
	words := []string{"a"}
	it := s.Push(words, nil)
	words[0] = "b"
	it.Words[0] = "c"

	got, ok := s.Get(0)
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, got.Words)
}

func TestStore_Complete(t *testing.T) {
	obs := new(mockObserver)
	obs.On("OnCreate", mock.Anything, mock.Anything, mock.Anything)
	obs.On("OnComplete", model.ID(1)).Once()

	s := New(obs)
	s.Push([]string{"a"}, nil)
	s.Push([]string{"b"}, nil)

	id, ok := s.Complete(1)
	assert.True(t, ok)
	assert.Equal(t, model.ID(1), id)

	it, _ := s.Get(1)
	assert.True(t, it.Done)

	_, ok = s.Complete(1)
	assert.False(t, ok, "repeat completion reports absent")

	_, ok = s.Complete(7)
	assert.False(t, ok, "unknown identifier reports absent")

	obs.AssertExpectations(t)
	obs.AssertNumberOfCalls(t, "OnComplete", 1)
}

func TestStore_Items(t *testing.T) {
	s := New(nil)
	s.Push([]string{"a"}, nil)
	s.Push([]string{"b"}, nil)
	s.Push([]string{"c"}, nil)

	items := s.Items(slices.Values([]model.ID{2, 0, 9}))
	require.Len(t, items, 2)
	assert.Equal(t, model.ID(2), items[0].ID)
	assert.Equal(t, model.ID(0), items[1].ID)
}

func TestStore_All(t *testing.T) {
	s := New(nil)
	s.Push([]string{"a"}, nil)
	s.Push([]string{"b"}, nil)

	var got []model.ID
	for it := range s.All() {
		got = append(got, it.ID)
	}
	assert.Equal(t, []model.ID{0, 1}, got)
}
