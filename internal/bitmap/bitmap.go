package bitmap

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/triedo/model"
)

// Set is a set of item identifiers.
// The zero value is not usable; use New or Of.
type Set struct {
	rb *roaring64.Bitmap
}

// New creates an empty set.
func New() *Set {
	return &Set{rb: roaring64.New()}
}

// Of creates a set holding the given identifiers.
func Of(ids ...model.ID) *Set {
	s := New()
	for _, id := range ids {
		s.rb.Add(uint64(id))
	}
	return s
}

// Add inserts id and reports whether it was not already present.
func (s *Set) Add(id model.ID) bool {
	return s.rb.CheckedAdd(uint64(id))
}

// Remove deletes id and reports whether it was present.
func (s *Set) Remove(id model.ID) bool {
	return s.rb.CheckedRemove(uint64(id))
}

// IsEmpty returns true if the set is empty.
func (s *Set) IsEmpty() bool {
	return s.rb.IsEmpty()
}

// Cardinality returns the number of identifiers in the set.
func (s *Set) Cardinality() uint64 {
	return s.rb.GetCardinality()
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{rb: s.rb.Clone()}
}

// And intersects s with other in place.
func (s *Set) And(other *Set) {
	s.rb.And(other.rb)
}

// All yields the identifiers in ascending order.
func (s *Set) All() iter.Seq[model.ID] {
	return func(yield func(model.ID) bool) {
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(model.ID(it.Next())) {
				return
			}
		}
	}
}

// ToSlice returns the identifiers in ascending order.
func (s *Set) ToSlice() []model.ID {
	out := make([]model.ID, 0, s.rb.GetCardinality())
	for id := range s.All() {
		out = append(out, id)
	}
	return out
}

// SizeInBytes returns the in-memory size of the underlying bitmap.
func (s *Set) SizeInBytes() uint64 {
	return s.rb.GetSizeInBytes()
}
