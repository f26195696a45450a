//go:build !assertions_disabled

package assert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrue(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		True(true)
	})

	assert.PanicsWithValue(t, "assertion failed", func() {
		True(false)
	})

	assert.PanicsWithValue(t, "index 5 out of range", func() {
		True(false, "index %d out of range", 5)
	})
}

func TestFalse(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		False(false)
	})

	assert.Panics(t, func() {
		False(true)
	})
}

func TestInRange(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		InRange(0, 3)
		InRange(2, 3)
	})

	assert.Panics(t, func() {
		InRange(3, 3)
	})

	assert.Panics(t, func() {
		InRange(-1, 3)
	})
}
