//go:build assertions_disabled

// Package assert provides internal invariant assertions that can be compiled
// out with the assertions_disabled build tag.
package assert

// True asserts that the given value is true.
// Assertions are disabled in this build; this is a no-op.
func True(value bool, args ...any) {
	// Intentionally left blank
}

// False asserts that the given value is false.
// Assertions are disabled in this build; this is a no-op.
func False(value bool, args ...any) {
	// Intentionally left blank
}

// InRange asserts that index lies in the half-open interval [0, length).
// Assertions are disabled in this build; this is a no-op.
func InRange(index, length int, args ...any) {
	// Intentionally left blank
}
