package zip

import "errors"

// ErrLengthMismatch is returned by the Begin, Sort and IsSorted families when
// the zipped slices do not all share the same element count.
var ErrLengthMismatch = errors.New("zip: container lengths do not match")

// allEqual reports whether every value in vs equals the first. Zero or one
// value is trivially equal.
func allEqual[T comparable](vs ...T) bool {
	for i := 1; i < len(vs); i++ {
		if vs[i] != vs[0] {
			return false
		}
	}
	return true
}
