// Package sortable defines the ordering capability used by the sorted
// collections in this module, together with ready-to-use wrapper types for
// common primitives.
//
// # Overview
//
// The [Sortable] interface extends [Comparable] with a LessThan method,
// providing both equality comparison and ordering. The wrapper types [Int],
// [Int64], [Float64], [Byte], [String], and [NaturalString] implement it for
// the corresponding built-in types, so they can be stored directly in
// [github.com/amp-labs/amp-sorted/sorted.Slice] and
// [github.com/amp-labs/amp-sorted/sortedset.Set].
//
// # Usage
//
//	s := sorted.NewSlice[sortable.Int]()
//	s.Insert(sortable.Int(42))
//	s.Insert(sortable.Int(10))
//	s.Insert(sortable.Int(25))
//
//	// Elements are yielded in sorted order: 10, 25, 42
//	for val := range s.Seq() {
//	    fmt.Println(int(val))
//	}
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement the Sortable interface:
//
//	type Version struct {
//	    Major int
//	    Minor int
//	}
//
//	func (v Version) Equals(other Version) bool {
//	    return v.Major == other.Major && v.Minor == other.Minor
//	}
//
//	func (v Version) LessThan(other Version) bool {
//	    if v.Major != other.Major {
//	        return v.Major < other.Major
//	    }
//	    return v.Minor < other.Minor
//	}
//
// The ordering must stay consistent for as long as values live inside a
// collection; mutating an ordering key of a stored element silently breaks
// the collection's sort invariant.
//
// # Thread Safety
//
// The wrapper types are plain value types and are safe to read concurrently.
// Collections built on them provide no internal synchronization; see the
// collection packages for details.
package sortable
