package sortable

// Int is a sortable wrapper type for the built-in int type.
// It implements the Sortable[Int] interface, allowing integers to be stored
// in sorted collections.
//
// Example:
//
//	s := sorted.NewSlice[sortable.Int]()
//	s.Insert(sortable.Int(5))
//	s.Insert(sortable.Int(3))
//	s.Insert(sortable.Int(7))
//	// Iterating yields: 3, 5, 7 (sorted order)
//
// To convert back to a regular int, use a type conversion:
//
//	var s sortable.Int = 42
//	regularInt := int(s)
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}

// Int64 is a sortable wrapper type for the built-in int64 type.
type Int64 int64

// Compile-time check that Int64 implements Sortable[Int64].
var _ Sortable[Int64] = (*Int64)(nil)

// Equals returns true if this Int64 has the same value as the other Int64.
func (i Int64) Equals(other Int64) bool {
	return int64(i) == int64(other)
}

// LessThan returns true if this Int64 is numerically less than the other Int64.
func (i Int64) LessThan(other Int64) bool {
	return int64(i) < int64(other)
}
