package sorted

import (
	"iter"
	"slices"
)

// Seq returns an iterator over the elements in ascending order. The iterator
// is restartable: ranging over it again starts from the minimum element.
// The sequence must not be mutated while iteration is in progress.
func (s *Slice[T]) Seq() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.items {
			if !yield(v) {
				return
			}
		}
	}
}

// All returns an iterator over index/element pairs in ascending order.
func (s *Slice[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

// SeqMutable returns an iterator over pointers to the live elements in
// ascending order. Mutating an element's ordering key through such a pointer
// silently breaks the sort invariant (see the package documentation); the
// pointers are invalidated by any subsequent mutation of the sequence.
func (s *Slice[T]) SeqMutable() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range s.items {
			if !yield(&s.items[i]) {
				return
			}
		}
	}
}

// Drain returns a consuming iterator: it detaches the backing storage up
// front, leaving the sequence empty, then yields the detached elements in
// ascending order. The sequence is empty afterwards even if iteration stops
// early.
func (s *Slice[T]) Drain() iter.Seq[T] {
	items := s.items
	s.items = nil

	return func(yield func(T) bool) {
		for _, v := range items {
			if !yield(v) {
				return
			}
		}
	}
}

// Entries returns the elements as a freshly allocated slice in ascending
// order. The result is independent of the sequence's backing storage.
// Time complexity: O(n).
func (s *Slice[T]) Entries() []T {
	if len(s.items) == 0 {
		return nil
	}

	return slices.Clone(s.items)
}

// AsSlice returns a window over the backing storage in sorted order. The
// window must be treated as read-only and is invalidated by any subsequent
// mutation of the sequence.
func (s *Slice[T]) AsSlice() []T {
	return s.items
}

// AsMutableSlice returns a mutable window over the backing storage. Mutating
// an element's ordering key through it silently breaks the sort invariant;
// the window is invalidated by any subsequent mutation of the sequence.
func (s *Slice[T]) AsMutableSlice() []T {
	return s.items
}

// IntoSlice transfers ownership of the backing storage to the caller and
// leaves the sequence empty. The returned slice holds the elements in
// ascending order.
func (s *Slice[T]) IntoSlice() []T {
	items := s.items
	s.items = nil

	return items
}
