package sortable

import (
	"facette.io/natsort"
)

// String is a sortable wrapper type for the built-in string type,
// ordered lexicographically (byte-wise).
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

// NaturalString is a sortable wrapper type for strings ordered using natural
// sort order, where digit runs compare numerically: "file2" orders before
// "file10".
type NaturalString string

var _ Sortable[NaturalString] = (*NaturalString)(nil)

func (s NaturalString) Equals(other NaturalString) bool {
	return string(s) == string(other)
}

func (s NaturalString) LessThan(other NaturalString) bool {
	forward := natsort.Compare(string(s), string(other))
	backward := natsort.Compare(string(other), string(s))

	if forward != backward {
		return forward
	}

	// Natural-order tie ("a01" vs "a1"); fall back to byte order so the
	// relation stays a strict total order.
	return string(s) < string(other)
}
