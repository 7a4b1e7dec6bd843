package trie

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/hupe1980/triedo/internal/bitmap"
	"github.com/hupe1980/triedo/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(s *bitmap.Set) []model.ID {
	return s.ToSlice()
}

func TestBackends(t *testing.T) {
	for _, b := range Backends() {
		t.Run(string(b), func(t *testing.T) {
			runIndexSuite(t, func() Index {
				idx, err := New(b)
				require.NoError(t, err)
				return idx
			})
		})
	}
}

func TestParseBackend(t *testing.T) {
	b, err := ParseBackend("radix")
	require.NoError(t, err)
	assert.Equal(t, BackendRadix, b)

	_, err = ParseBackend("btree")
	assert.ErrorIs(t, err, ErrUnknownBackend)

	_, err = New("btree")
	assert.ErrorIs(t, err, ErrUnknownBackend)
}

func runIndexSuite(t *testing.T, newIndex func() Index) {
	t.Run("EmptyIndex", func(t *testing.T) {
		idx := newIndex()
		assert.Empty(t, ids(idx.Search("")))
		assert.Empty(t, ids(idx.Search("anything")))
	})

	t.Run("PrefixMatch", func(t *testing.T) {
		idx := newIndex()
		idx.Add(0, "milk")

		for _, key := range []string{"", "m", "mi", "mil", "milk"} {
			assert.Equal(t, []model.ID{0}, ids(idx.Search(key)), "key %q", key)
		}
		for _, key := range []string{"milky", "ilk", "mk", "x", "Milk"} {
			assert.Empty(t, ids(idx.Search(key)), "key %q", key)
		}
	})

	t.Run("SharedPrefixes", func(t *testing.T) {
		idx := newIndex()
		idx.Add(0, "tea")
		idx.Add(1, "ten")
		idx.Add(2, "team")
		idx.Add(3, "to")
		idx.Add(4, "inn")

		assert.Equal(t, []model.ID{0, 1, 2, 3}, ids(idx.Search("t")))
		assert.Equal(t, []model.ID{0, 1, 2}, ids(idx.Search("te")))
		assert.Equal(t, []model.ID{0, 2}, ids(idx.Search("tea")))
		assert.Equal(t, []model.ID{2}, ids(idx.Search("team")))
		assert.Equal(t, []model.ID{1}, ids(idx.Search("ten")))
		assert.Equal(t, []model.ID{4}, ids(idx.Search("in")))
		assert.Equal(t, []model.ID{0, 1, 2, 3, 4}, ids(idx.Search("")))
		assert.Empty(t, ids(idx.Search("tex")))
	})

	t.Run("IdempotentAdd", func(t *testing.T) {
		idx := newIndex()
		idx.Add(7, "bread")
		before := idx.Stats()
		idx.Add(7, "bread")
		assert.Equal(t, before, idx.Stats())
		assert.Equal(t, []model.ID{7}, ids(idx.Search("bre")))
	})

	t.Run("StatsReportBytes", func(t *testing.T) {
		idx := newIndex()
		empty := idx.Stats().Bytes
		assert.Positive(t, empty)

		for i := 0; i < 50; i++ {
			idx.Add(model.ID(i), "groceries")
		}
		assert.Greater(t, idx.Stats().Bytes, empty)
	})

	t.Run("DeleteAcrossKeys", func(t *testing.T) {
		idx := newIndex()
		idx.Add(1, "buy")
		idx.Add(1, "bread")
		idx.Add(2, "bread")

		idx.Delete(1)

		assert.Equal(t, []model.ID{2}, ids(idx.Search("b")))
		assert.Empty(t, ids(idx.Search("bu")))
		assert.Equal(t, []model.ID{2}, ids(idx.Search("bread")))
		assert.Equal(t, 1, idx.Stats().Tracked)
	})

	t.Run("DeleteIsIdempotent", func(t *testing.T) {
		idx := newIndex()
		idx.Add(1, "a")
		idx.Delete(99)
		idx.Delete(1)
		idx.Delete(1)
		assert.Empty(t, ids(idx.Search("")))
		st := idx.Stats()
		assert.Equal(t, 0, st.Postings)
		assert.Equal(t, 0, st.Tracked)
	})

	t.Run("ReinsertAfterDelete", func(t *testing.T) {
		idx := newIndex()
		idx.Add(3, "call")
		idx.Delete(3)
		assert.Empty(t, ids(idx.Search("ca")))
		idx.Add(3, "cab")
		assert.Equal(t, []model.ID{3}, ids(idx.Search("ca")))
		assert.Empty(t, ids(idx.Search("cal")))
	})

	t.Run("EmptyKeyIndexesRootOnly", func(t *testing.T) {
		idx := newIndex()
		idx.Add(5, "")
		assert.Equal(t, []model.ID{5}, ids(idx.Search("")))
		assert.Empty(t, ids(idx.Search("a")))
	})

	t.Run("Unicode", func(t *testing.T) {
		idx := newIndex()
		idx.Add(0, "café")
		idx.Add(1, "caffè")
		idx.Add(2, "日本語")

		assert.Equal(t, []model.ID{0, 1}, ids(idx.Search("caf")))
		assert.Equal(t, []model.ID{0}, ids(idx.Search("café")))
		assert.Equal(t, []model.ID{1}, ids(idx.Search("caffè")))
		assert.Equal(t, []model.ID{2}, ids(idx.Search("日本")))
		assert.Empty(t, ids(idx.Search("本")))
	})

	t.Run("InvalidUTF8", func(t *testing.T) {
		idx := newIndex()
		idx.Add(0, "caf\xe9")
		idx.Add(1, "café")

		assert.Empty(t, ids(idx.Search("caf\xff")))
		assert.Equal(t, []model.ID{0}, ids(idx.Search("caf\xe9")))
		assert.Equal(t, []model.ID{1}, ids(idx.Search("caf\xc3")), "partial multibyte prefix")
		assert.Equal(t, []model.ID{0, 1}, ids(idx.Search("caf")))
		assert.Empty(t, ids(idx.Search("\xc3")))

		idx.Delete(1)
		assert.Empty(t, ids(idx.Search("caf\xc3")))
		assert.Equal(t, []model.ID{0}, ids(idx.Search("caf")))
	})

	t.Run("ResultIsOwnedByCaller", func(t *testing.T) {
		idx := newIndex()
		idx.Add(0, "x")
		res := idx.Search("x")
		res.Add(42)
		res.Remove(0)
		assert.Equal(t, []model.ID{0}, ids(idx.Search("x")))
	})

	t.Run("MatchesModel", func(t *testing.T) {
		checkAgainstModel(t, newIndex(), "abc")
	})

	t.Run("MatchesModelRawBytes", func(t *testing.T) {
		checkAgainstModel(t, newIndex(), "a\xc3\xa9\xff")
	})
}

func checkAgainstModel(t *testing.T, idx Index, alphabet string) {
	t.Helper()
	m := newPrefixModel()
	r := rand.New(rand.NewPCG(1, 2))

	for step := 0; step < 2000; step++ {
		id := model.ID(r.IntN(20))
		if r.IntN(4) == 0 {
			idx.Delete(id)
			m.delete(id)
		} else {
			key := randomKey(r, alphabet, 6)
			idx.Add(id, key)
			m.add(id, key)
		}

		if step%50 == 0 {
			for _, p := range allKeys(alphabet, 3) {
				require.Equal(t, m.search(p), ids(idx.Search(p)), "step %d prefix %q", step, p)
			}
		}
	}
}

type prefixModel struct {
	keys map[model.ID]map[string]struct{}
}

func newPrefixModel() *prefixModel {
	return &prefixModel{keys: make(map[model.ID]map[string]struct{})}
}

func (m *prefixModel) add(id model.ID, key string) {
	if m.keys[id] == nil {
		m.keys[id] = make(map[string]struct{})
	}
	m.keys[id][key] = struct{}{}
}

func (m *prefixModel) delete(id model.ID) {
	delete(m.keys, id)
}

func (m *prefixModel) search(prefix string) []model.ID {
	out := bitmap.New()
	for id, keys := range m.keys {
		for k := range keys {
			if strings.HasPrefix(k, prefix) {
				out.Add(id)
				break
			}
		}
	}
	return out.ToSlice()
}

func randomKey(r *rand.Rand, alphabet string, maxLen int) string {
	n := r.IntN(maxLen + 1)
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(alphabet[r.IntN(len(alphabet))])
	}
	return b.String()
}

// allKeys enumerates every string over alphabet up to maxLen, "" included.
func allKeys(alphabet string, maxLen int) []string {
	out := []string{""}
	frontier := []string{""}
	for l := 0; l < maxLen; l++ {
		var next []string
		for _, p := range frontier {
			for i := 0; i < len(alphabet); i++ {
				next = append(next, p+string(alphabet[i]))
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}
