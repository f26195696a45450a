package sorted

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-sorted/sortable"
)

func TestSeq(t *testing.T) {
	t.Parallel()

	t.Run("yields elements in ascending order", func(t *testing.T) {
		t.Parallel()

		s := SliceOf[sortable.Int](7, 3, 5)

		var seen []sortable.Int
		for v := range s.Seq() {
			seen = append(seen, v)
		}

		assert.Equal(t, []sortable.Int{3, 5, 7}, seen)
	})

	t.Run("is restartable", func(t *testing.T) {
		t.Parallel()

		s := SliceOf[sortable.Int](2, 1)
		seq := s.Seq()

		for range 2 {
			var seen []sortable.Int
			for v := range seq {
				seen = append(seen, v)
			}

			assert.Equal(t, []sortable.Int{1, 2}, seen)
		}
	})

	t.Run("supports early break", func(t *testing.T) {
		t.Parallel()

		s := SliceOf[sortable.Int](1, 2, 3)

		count := 0
		for range s.Seq() {
			count++

			break
		}

		assert.Equal(t, 1, count)
		assert.Equal(t, 3, s.Len())
	})
}

func TestAll(t *testing.T) {
	t.Parallel()

	s := SliceOf[sortable.Int](30, 10, 20)

	var indices []int

	var values []sortable.Int

	for i, v := range s.All() {
		indices = append(indices, i)
		values = append(values, v)
	}

	assert.Equal(t, []int{0, 1, 2}, indices)
	assert.Equal(t, []sortable.Int{10, 20, 30}, values)
}

func TestSeqMutable(t *testing.T) {
	t.Parallel()

	// Ordering ignores Touched, so mutating it through the iterator cannot
	// break the sort invariant.
	s := NewSlice[recordKey]()
	s.Insert(recordKey{Key: 2})
	s.Insert(recordKey{Key: 1})

	for r := range s.SeqMutable() {
		r.Touched = true
	}

	for _, r := range s.AsSlice() {
		assert.True(t, r.Touched)
	}
}

// recordKey is a sortable element with a non-ordering payload field, used to
// exercise mutable iteration.
type recordKey struct {
	Key     sortable.Int
	Touched bool
}

func (r recordKey) Equals(other recordKey) bool {
	return r.Key.Equals(other.Key)
}

func (r recordKey) LessThan(other recordKey) bool {
	return r.Key.LessThan(other.Key)
}

func TestDrain(t *testing.T) {
	t.Parallel()

	t.Run("yields ascending and empties the sequence", func(t *testing.T) {
		t.Parallel()

		s := SliceOf[sortable.Int](3, 1, 2)

		var seen []sortable.Int
		for v := range s.Drain() {
			seen = append(seen, v)
		}

		assert.Equal(t, []sortable.Int{1, 2, 3}, seen)
		assert.True(t, s.IsEmpty())
	})

	t.Run("sequence is empty even if iteration stops early", func(t *testing.T) {
		t.Parallel()

		s := SliceOf[sortable.Int](3, 1, 2)

		for range s.Drain() {
			break
		}

		assert.True(t, s.IsEmpty())
	})
}

func TestEntries(t *testing.T) {
	t.Parallel()

	t.Run("empty sequence has nil entries", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, NewSlice[sortable.Int]().Entries())
	})

	t.Run("entries are an independent copy", func(t *testing.T) {
		t.Parallel()

		s := SliceOf[sortable.Int](1, 2)
		entries := s.Entries()

		entries[0] = 99

		assert.Equal(t, []sortable.Int{1, 2}, s.Entries())
	})
}

func TestIntoSlice(t *testing.T) {
	t.Parallel()

	s := SliceOf[sortable.Int](5, 1, 3)
	items := s.IntoSlice()

	assert.Equal(t, []sortable.Int{1, 3, 5}, items)
	assert.True(t, s.IsEmpty())
	assert.Zero(t, s.Cap())
}

func TestAsSlice(t *testing.T) {
	t.Parallel()

	s := SliceOf[sortable.Int](2, 1)

	view := s.AsSlice()
	require.Equal(t, []sortable.Int{1, 2}, view)

	// The mutable view aliases the live storage.
	s.AsMutableSlice()[0] = 0
	assert.Equal(t, []sortable.Int{0, 2}, s.AsSlice())
}
