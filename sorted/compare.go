package sorted

import (
	"fmt"

	"github.com/amp-labs/amp-sorted/sortable"
)

// Equals reports whether both sequences have the same length and
// comparator-equal elements at every index.
func (s *Slice[T]) Equals(other *Slice[T]) bool {
	if len(s.items) != len(other.items) {
		return false
	}

	for i, v := range s.items {
		if !v.Equals(other.items[i]) {
			return false
		}
	}

	return true
}

// Compare orders two sequences lexicographically, element by element, and
// returns -1, 0, or 1. A sequence that is a strict prefix of a longer one
// orders first.
func (s *Slice[T]) Compare(other *Slice[T]) int {
	limit := min(len(s.items), len(other.items))

	for i := 0; i < limit; i++ {
		if c := sortable.Compare(s.items[i], other.items[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(s.items) < len(other.items):
		return -1
	case len(s.items) > len(other.items):
		return 1
	default:
		return 0
	}
}

// LessThan reports whether this sequence orders lexicographically before the
// other, making *Slice itself usable as a Sortable element.
func (s *Slice[T]) LessThan(other *Slice[T]) bool {
	return s.Compare(other) < 0
}

// String returns a string representation of the elements in ascending order.
func (s *Slice[T]) String() string {
	return fmt.Sprint(s.items)
}
