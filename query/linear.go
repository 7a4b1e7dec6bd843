package query

import (
	"iter"

	"github.com/hupe1980/triedo/model"
)

// Scanner yields every item in identifier order.
type Scanner interface {
	All() iter.Seq[model.Item]
}

// Linear is the scan-everything reference engine.
type Linear struct {
	items Scanner
}

var _ Searcher = (*Linear)(nil)

// NewLinear creates a Linear engine.
func NewLinear(items Scanner) *Linear {
	return &Linear{items: items}
}

// Search implements Searcher.
func (l *Linear) Search(terms []model.Term) []model.Item {
	if len(terms) == 0 {
		return nil
	}
	var out []model.Item
	for it := range l.items.All() {
		if !it.Done && matchesAll(it, terms) {
			out = append(out, it)
		}
	}
	return out
}

func matchesAll(it model.Item, terms []model.Term) bool {
	for _, t := range terms {
		fields := it.Words
		if t.Kind == model.TagTerm {
			fields = it.Tags
		}
		if !anySubsequence(fields, t.Value) {
			return false
		}
	}
	return true
}

func anySubsequence(fields []string, sub string) bool {
	for _, f := range fields {
		if MatchSubsequence(f, sub) {
			return true
		}
	}
	return false
}

// MatchSubsequence reports whether sub's bytes occur in s in order, not
// necessarily adjacent. The empty string is a subsequence of every string.
func MatchSubsequence(s, sub string) bool {
	if sub == "" {
		return true
	}
	i := 0
	for j := 0; j < len(s); j++ {
		if s[j] == sub[i] {
			i++
			if i == len(sub) {
				return true
			}
		}
	}
	return false
}
