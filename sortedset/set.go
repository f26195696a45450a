// Package sortedset provides a set of unique elements kept in ascending
// order, backed by a sorted slice. Membership checks cost O(log n);
// insertion and removal cost O(n) worst case due to the contiguous backing.
//
// The set provides no internal synchronization; concurrent mutation requires
// external locking.
package sortedset

import (
	"iter"

	"github.com/amp-labs/amp-sorted/optional"
	"github.com/amp-labs/amp-sorted/sortable"
	"github.com/amp-labs/amp-sorted/sorted"
)

// Set is a collection of unique elements in ascending order. Uniqueness is
// determined by the element type's Equals method; an element comparator-equal
// to a stored one is never added again.
type Set[T sortable.Sortable[T]] struct {
	items *sorted.Slice[T]
}

// New creates a new empty sorted set.
func New[T sortable.Sortable[T]]() *Set[T] {
	return &Set[T]{items: sorted.NewSlice[T]()}
}

// Of creates a sorted set containing the given values, with duplicates
// collapsed.
func Of[T sortable.Sortable[T]](values ...T) *Set[T] {
	s := &Set[T]{items: sorted.NewSliceWithCapacity[T](len(values))}
	s.AddAll(values...)

	return s
}

// Add inserts an element into the set. Returns true if the element was
// added, false if a comparator-equal element was already present.
func (s *Set[T]) Add(element T) bool {
	if s.items.Contains(element) {
		return false
	}

	s.items.Insert(element)

	return true
}

// AddAll adds multiple elements to the set, skipping ones already present.
// Returns the number of elements actually added.
func (s *Set[T]) AddAll(elements ...T) int {
	added := 0

	for _, element := range elements {
		if s.Add(element) {
			added++
		}
	}

	return added
}

// Remove deletes the element from the set. Returns true if an element was
// removed, false if no comparator-equal element was present.
func (s *Set[T]) Remove(element T) bool {
	return s.items.RemoveValue(element).NonEmpty()
}

// Clear removes all elements from the set.
func (s *Set[T]) Clear() {
	s.items.Clear()
}

// Contains checks if an element comparator-equal to element exists in the set.
// Time complexity: O(log n).
func (s *Set[T]) Contains(element T) bool {
	return s.items.Contains(element)
}

// Size returns the number of elements in the set.
func (s *Set[T]) Size() int {
	return s.items.Len()
}

// IsEmpty reports whether the set holds no elements.
func (s *Set[T]) IsEmpty() bool {
	return s.items.IsEmpty()
}

// Min returns the smallest element, or None if the set is empty.
func (s *Set[T]) Min() optional.Value[T] {
	return s.items.First()
}

// Max returns the largest element, or None if the set is empty.
func (s *Set[T]) Max() optional.Value[T] {
	return s.items.Last()
}

// Entries returns all elements as a freshly allocated slice in ascending order.
func (s *Set[T]) Entries() []T {
	return s.items.Entries()
}

// Seq returns an iterator that yields elements in ascending order.
func (s *Set[T]) Seq() iter.Seq[T] {
	return s.items.Seq()
}

// Union returns a new set containing all elements from both this set and the
// other set.
// Time complexity: O((n + m) log(n + m)).
func (s *Set[T]) Union(other *Set[T]) *Set[T] {
	out := New[T]()

	for v := range s.Seq() {
		out.Add(v)
	}

	for v := range other.Seq() {
		out.Add(v)
	}

	return out
}

// Intersection returns a new set containing only elements present in both
// this set and the other set.
// Time complexity: O(n log m).
func (s *Set[T]) Intersection(other *Set[T]) *Set[T] {
	out := New[T]()

	for v := range s.Seq() {
		if other.Contains(v) {
			out.Add(v)
		}
	}

	return out
}

// Clone creates a shallow copy of the set with the same elements.
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{items: s.items.Clone()}
}

// Equals reports whether both sets contain comparator-equal elements.
func (s *Set[T]) Equals(other *Set[T]) bool {
	return s.items.Equals(other.items)
}

// String returns a string representation of the elements in ascending order.
func (s *Set[T]) String() string {
	return s.items.String()
}
