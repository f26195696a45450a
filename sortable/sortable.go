package sortable

// Comparable is a generic interface for types that can compare themselves
// for equality. Types implementing this interface must provide their own
// Equals method that determines whether two values are equal according to
// the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Sortable extends Comparable with an ordering relation. Sorted collections
// in this module (sorted.Slice, sortedset.Set) are parameterized over it.
//
// Implementations must keep LessThan consistent with Equals: for any a and b,
// exactly one of a.LessThan(b), b.LessThan(a), or a.Equals(b) should hold,
// and the relation must not change while values are stored in a collection.
type Sortable[T any] interface {
	Comparable[T]

	LessThan(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Compare returns -1, 0, or 1 depending on whether a orders before, equal
// to, or after b. Useful for adapting Sortable types to APIs that expect a
// three-way comparison function.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.LessThan(b):
		return -1
	case b.LessThan(a):
		return 1
	default:
		return 0
	}
}
