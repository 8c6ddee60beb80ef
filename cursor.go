package zip

import "cmp"

// cursor marks a position into a single slice. Stepping, offsetting and
// dereferencing are O(1). A cursor borrows the slice it points into; it is
// only ever moved through its owning iterator, which keeps every cursor of a
// pack at the same offset.
type cursor[E any] struct {
	data []E
	pos  int
}

// at returns a pointer to the element under the cursor.
func (c cursor[E]) at() *E {
	return &c.data[c.pos]
}

// step moves the cursor by n positions. n may be negative.
func (c *cursor[E]) step(n int) {
	c.pos += n
}

// distance returns the signed number of positions from rhs to c.
func (c cursor[E]) distance(rhs cursor[E]) int {
	return c.pos - rhs.pos
}

// compare orders two cursors into the same slice by position.
func (c cursor[E]) compare(rhs cursor[E]) int {
	return cmp.Compare(c.pos, rhs.pos)
}
