// Package sorted provides a sequence that keeps its elements in ascending
// order at all times, backed by a single contiguous slice and searched with
// binary search.
//
// # Overview
//
// [Slice] maintains three invariants between public operations:
//
//  1. Elements are sorted ascending under the element type's
//     [github.com/amp-labs/amp-sorted/sortable.Sortable] ordering.
//  2. Elements occupy the contiguous index range [0, Len()).
//  3. Cap() >= Len(); growth is automatic and amortized.
//
// Lookups (Contains, GetIndex, RemoveValue) cost O(log n). Insert and Remove
// cost O(n) worst case because trailing elements shift to keep the storage
// contiguous; that is the accepted trade-off for O(log n) search and O(1)
// indexed access. Random access by index costs O(1).
//
// # Usage
//
//	s := sorted.NewSlice[sortable.Int]()
//	s.Insert(sortable.Int(5)) // index 0
//	s.Insert(sortable.Int(3)) // index 0
//	s.Insert(sortable.Int(7)) // index 2
//
//	for v := range s.Seq() {
//	    fmt.Println(int(v)) // 3, 5, 7
//	}
//
// # Absence
//
// Partial operations (Get with an out-of-range index, GetIndex or RemoveValue
// with a missing value) return [github.com/amp-labs/amp-sorted/optional.Value]
// None rather than panicking. The only fatal condition is allocation failure
// during growth, which surfaces as the runtime's out-of-memory abort.
//
// # Duplicates
//
// Comparator-equal elements may coexist; they always end up adjacent. Which
// element of an equal run a lookup reports, and on which side of the run an
// insert lands, is whatever the binary-search probe finds. The result is
// deterministic for a given sequence state but carries no first-match or
// last-match guarantee.
//
// # Views and invalidation
//
// AsSlice, AsMutableSlice, and SeqMutable expose windows into the live
// backing storage. Any subsequent Insert, Remove, Resize, Reserve, or
// ShrinkToFit may reallocate that storage and invalidate previously obtained
// windows. Mutating an element's ordering key through a mutable window
// silently breaks the sort invariant; keeping keys stable is the caller's
// responsibility and is not re-validated on access.
//
// # Thread Safety
//
// Slice provides no internal synchronization. Concurrent mutation requires
// external locking or per-goroutine copies.
package sorted
