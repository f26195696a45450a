package sorted

import (
	"slices"

	"github.com/amp-labs/amp-sorted/assert"
	"github.com/amp-labs/amp-sorted/optional"
	"github.com/amp-labs/amp-sorted/sortable"
	"github.com/amp-labs/amp-sorted/zero"
)

// Slice is an always-sorted, contiguous, resizable sequence of elements.
// The zero value is an empty sequence ready for use, though NewSlice is the
// conventional constructor. See the package documentation for the invariants
// it maintains.
type Slice[T sortable.Sortable[T]] struct {
	items []T
}

// Compile-time check that *Slice is itself Sortable, so sequences can be
// stored inside other sorted collections.
var _ sortable.Sortable[*Slice[sortable.Int]] = (*Slice[sortable.Int])(nil)

// NewSlice creates a new empty sorted slice.
func NewSlice[T sortable.Sortable[T]]() *Slice[T] {
	return &Slice[T]{}
}

// NewSliceWithCapacity creates a new empty sorted slice pre-allocated to hold
// at least capacity elements without reallocating. The capacity hint changes
// only performance, never observable behavior.
func NewSliceWithCapacity[T sortable.Sortable[T]](capacity int) *Slice[T] {
	return &Slice[T]{items: make([]T, 0, capacity)}
}

// SliceOf creates a sorted slice containing the given values, in sorted
// order regardless of the order they are passed in.
func SliceOf[T sortable.Sortable[T]](values ...T) *Slice[T] {
	s := NewSliceWithCapacity[T](len(values))

	for _, v := range values {
		s.Insert(v)
	}

	return s
}

// search locates value in the backing slice. It returns the index of an
// element comparator-equal to value and true, or the position where value
// would be inserted to keep the slice sorted and false. Which element of an
// equal run is reported depends on where the midpoint probe lands.
func (s *Slice[T]) search(value T) (int, bool) {
	low, high := 0, len(s.items)

	for low < high {
		mid := low + (high-low)/2

		switch {
		case value.LessThan(s.items[mid]):
			high = mid
		case value.Equals(s.items[mid]):
			return mid, true
		default:
			low = mid + 1
		}
	}

	return low, false
}

// Insert adds value to the sequence, keeping it sorted, and returns the index
// at which value now resides. If comparator-equal elements already exist, the
// value is inserted adjacent to them, at the position the search probe
// reports. Elements at or after that position shift right by one.
// Time complexity: O(log n) search + O(n) shift.
func (s *Slice[T]) Insert(value T) int {
	index, _ := s.search(value)
	assert.InRange(index, len(s.items)+1, "insert position %d outside [0, %d]", index, len(s.items))

	s.items = slices.Insert(s.items, index, value)

	return index
}

// Get returns the element at index, or None if index is out of range.
// Time complexity: O(1).
func (s *Slice[T]) Get(index int) optional.Value[T] {
	if index < 0 || index >= len(s.items) {
		return optional.None[T]()
	}

	return optional.Some(s.items[index])
}

// GetIndex returns the index of an element comparator-equal to value, or None
// if no such element exists. With duplicates present, any index of the equal
// run may be returned.
// Time complexity: O(log n).
func (s *Slice[T]) GetIndex(value T) optional.Value[int] {
	index, found := s.search(value)
	if !found {
		return optional.None[int]()
	}

	return optional.Some(index)
}

// Contains reports whether an element comparator-equal to value exists.
// Time complexity: O(log n).
func (s *Slice[T]) Contains(value T) bool {
	_, found := s.search(value)

	return found
}

// Remove deletes the element at index and returns it, shifting subsequent
// elements left to close the gap. Returns None and leaves the sequence
// unchanged if index is out of range.
// Time complexity: O(n).
func (s *Slice[T]) Remove(index int) optional.Value[T] {
	if index < 0 || index >= len(s.items) {
		return optional.None[T]()
	}

	removed := s.items[index]

	copy(s.items[index:], s.items[index+1:])

	// Release the vacated tail slot so it no longer pins referenced memory.
	last := len(s.items) - 1
	s.items[last] = zero.Value[T]()
	s.items = s.items[:last]

	return optional.Some(removed)
}

// RemoveValue deletes an element comparator-equal to value and returns it, or
// returns None without mutating if no such element exists. With duplicates
// present, whichever element the search probe finds is the one removed.
// Time complexity: O(log n) search + O(n) shift.
func (s *Slice[T]) RemoveValue(value T) optional.Value[T] {
	index, found := s.search(value)
	if !found {
		return optional.None[T]()
	}

	return s.Remove(index)
}

// Len returns the number of elements in the sequence.
func (s *Slice[T]) Len() int {
	return len(s.items)
}

// Cap returns the number of elements the sequence can hold before the
// backing storage must grow.
func (s *Slice[T]) Cap() int {
	return cap(s.items)
}

// IsEmpty reports whether the sequence holds no elements.
func (s *Slice[T]) IsEmpty() bool {
	return len(s.items) == 0
}

// First returns the minimum element, or None if the sequence is empty.
func (s *Slice[T]) First() optional.Value[T] {
	return s.Get(0)
}

// Last returns the maximum element, or None if the sequence is empty.
func (s *Slice[T]) Last() optional.Value[T] {
	return s.Get(len(s.items) - 1)
}

// Clear removes all elements. Capacity is retained so a reused sequence does
// not churn through reallocations; use ShrinkToFit to release the storage.
func (s *Slice[T]) Clear() {
	for i := range s.items {
		s.items[i] = zero.Value[T]()
	}

	s.items = s.items[:0]
}

// Reserve grows the backing storage so that at least additional more elements
// can be inserted without reallocating. Length and order are unchanged.
func (s *Slice[T]) Reserve(additional int) {
	assert.True(additional >= 0, "negative reserve: %d", additional)

	s.items = slices.Grow(s.items, additional)
}

// ShrinkToFit reduces the backing storage's capacity to the current length.
// Length and order are unchanged.
func (s *Slice[T]) ShrinkToFit() {
	s.items = slices.Clip(s.items)
}

// Resize changes the length of the sequence to newLen. When shrinking, the
// tail beyond newLen is discarded (a prefix of a sorted sequence stays
// sorted). When growing, copies of fill are appended as-is.
//
// This is a raw resize, not a sorted insert: if fill does not order at or
// after the current maximum, the sort invariant is broken by this call.
// Keeping fill consistent with the existing elements is the caller's
// responsibility.
func (s *Slice[T]) Resize(newLen int, fill T) {
	assert.True(newLen >= 0, "negative length: %d", newLen)

	switch {
	case newLen < len(s.items):
		for i := newLen; i < len(s.items); i++ {
			s.items[i] = zero.Value[T]()
		}

		s.items = s.items[:newLen]
	case newLen > len(s.items):
		s.items = slices.Grow(s.items, newLen-len(s.items))

		for len(s.items) < newLen {
			s.items = append(s.items, fill)
		}
	}
}

// Clone creates a shallow copy of the sequence with the same elements.
// Time complexity: O(n).
func (s *Slice[T]) Clone() *Slice[T] {
	return &Slice[T]{items: slices.Clone(s.items)}
}
