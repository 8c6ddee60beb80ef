package zip

import (
	"cmp"
	"iter"
	"sort"
)

// Iter3 is a random-access position over three slices traversed in
// lock-step. It holds one cursor per slice; every movement operation moves
// all three cursors together, so the cursors always sit at the same offset.
type Iter3[A, B, C cmp.Ordered] struct {
	a cursor[A]
	b cursor[B]
	c cursor[C]
}

// Begin3 returns an iterator positioned at the first elements of a, b and c.
// It fails with ErrLengthMismatch when the slices disagree on length; no
// iterator is returned in that case.
func Begin3[A, B, C cmp.Ordered](a []A, b []B, c []C) (Iter3[A, B, C], error) {
	if !allEqual(len(a), len(b), len(c)) {
		return Iter3[A, B, C]{}, ErrLengthMismatch
	}
	return Iter3[A, B, C]{
		a: cursor[A]{data: a},
		b: cursor[B]{data: b},
		c: cursor[C]{data: c},
	}, nil
}

// End3 returns the position one past the last elements of a, b and c.
// Lengths are not validated here: an End3 built from slices of different
// lengths bounds an inconsistent range that can run past the shorter slices,
// so call Begin3 first.
func End3[A, B, C cmp.Ordered](a []A, b []B, c []C) Iter3[A, B, C] {
	return Iter3[A, B, C]{
		a: cursor[A]{data: a, pos: len(a)},
		b: cursor[B]{data: b, pos: len(b)},
		c: cursor[C]{data: c, pos: len(c)},
	}
}

// Next moves every cursor forward one position.
func (it *Iter3[A, B, C]) Next() { it.Advance(1) }

// Prev moves every cursor back one position.
func (it *Iter3[A, B, C]) Prev() { it.Advance(-1) }

// Advance moves every cursor by n positions, in place. n may be negative.
// Moving outside [Begin3, End3] is a programming error.
func (it *Iter3[A, B, C]) Advance(n int) {
	it.a.step(n)
	it.b.step(n)
	it.c.step(n)
}

// Add returns a copy of the iterator advanced by n positions. The receiver
// is left where it was.
func (it Iter3[A, B, C]) Add(n int) Iter3[A, B, C] {
	it.Advance(n)
	return it
}

// Distance returns the signed number of positions from rhs to it. Both
// iterators must have been built from the same slices. Since cursors only
// move in lock-step, the first cursor stands in for the whole pack.
func (it Iter3[A, B, C]) Distance(rhs Iter3[A, B, C]) int {
	return it.a.distance(rhs.a)
}

// Compare orders two positions built from the same slices, cursor by cursor.
func (it Iter3[A, B, C]) Compare(rhs Iter3[A, B, C]) int {
	if c := it.a.compare(rhs.a); c != 0 {
		return c
	}
	if c := it.b.compare(rhs.b); c != 0 {
		return c
	}
	return it.c.compare(rhs.c)
}

// Equal reports whether the two positions coincide.
func (it Iter3[A, B, C]) Equal(rhs Iter3[A, B, C]) bool { return it.Compare(rhs) == 0 }

// Less reports whether it sits before rhs.
func (it Iter3[A, B, C]) Less(rhs Iter3[A, B, C]) bool { return it.Compare(rhs) < 0 }

// Row returns the mutable view of the elements under the iterator.
// Dereferencing an end iterator panics.
func (it Iter3[A, B, C]) Row() Row3[A, B, C] {
	return Row3[A, B, C]{a: it.a.at(), b: it.b.at(), c: it.c.at()}
}

// Swap exchanges the elements under it with the elements under rhs, slice by
// slice: the first slice's elements swap with each other, then the second's,
// then the third's.
func (it Iter3[A, B, C]) Swap(rhs Iter3[A, B, C]) {
	it.Row().Swap(rhs.Row())
}

// All returns an iterator over the rows in [it, end). Writes through the
// yielded rows are visible in the underlying slices.
func (it Iter3[A, B, C]) All(end Iter3[A, B, C]) iter.Seq[Row3[A, B, C]] {
	return func(yield func(Row3[A, B, C]) bool) {
		for cur := it; cur.Less(end); cur.Next() {
			if !yield(cur.Row()) {
				return
			}
		}
	}
}

// Row3 is the view of one element from each of three zipped slices. Reads
// and writes go straight through to the slices the row was derived from.
type Row3[A, B, C cmp.Ordered] struct {
	a *A
	b *B
	c *C
}

// First returns the element from the first slice.
func (r Row3[A, B, C]) First() A { return *r.a }

// SetFirst writes v through to the first slice.
func (r Row3[A, B, C]) SetFirst(v A) { *r.a = v }

// Second returns the element from the second slice.
func (r Row3[A, B, C]) Second() B { return *r.b }

// SetSecond writes v through to the second slice.
func (r Row3[A, B, C]) SetSecond(v B) { *r.b = v }

// Third returns the element from the third slice.
func (r Row3[A, B, C]) Third() C { return *r.c }

// SetThird writes v through to the third slice.
func (r Row3[A, B, C]) SetThird(v C) { *r.c = v }

// Values returns the elements of the row in slice order.
func (r Row3[A, B, C]) Values() (A, B, C) { return *r.a, *r.b, *r.c }

// Set writes every element of the row.
func (r Row3[A, B, C]) Set(a A, b B, c C) {
	*r.a = a
	*r.b = b
	*r.c = c
}

// Compare orders two rows lexicographically: the first slice's element is
// the primary key, the second breaks ties, then the third.
func (r Row3[A, B, C]) Compare(rhs Row3[A, B, C]) int {
	if c := cmp.Compare(*r.a, *rhs.a); c != 0 {
		return c
	}
	if c := cmp.Compare(*r.b, *rhs.b); c != 0 {
		return c
	}
	return cmp.Compare(*r.c, *rhs.c)
}

// Equal reports whether both rows hold equal elements.
func (r Row3[A, B, C]) Equal(rhs Row3[A, B, C]) bool { return r.Compare(rhs) == 0 }

// Less reports whether r orders before rhs lexicographically.
func (r Row3[A, B, C]) Less(rhs Row3[A, B, C]) bool { return r.Compare(rhs) < 0 }

// Swap exchanges the elements of the two rows pairwise.
func (r Row3[A, B, C]) Swap(rhs Row3[A, B, C]) {
	*r.a, *rhs.a = *rhs.a, *r.a
	*r.b, *rhs.b = *rhs.b, *r.b
	*r.c, *rhs.c = *rhs.c, *r.c
}

// Interface3 adapts the range [begin, end) to sort.Interface so the standard
// library's sorting and searching algorithms can drive the iterators
// directly. Element comparison and swapping go through the iterators' own
// Row ordering and Swap.
func Interface3[A, B, C cmp.Ordered](begin, end Iter3[A, B, C]) sort.Interface {
	return sortable3[A, B, C]{begin: begin, end: end}
}

type sortable3[A, B, C cmp.Ordered] struct {
	begin, end Iter3[A, B, C]
}

func (s sortable3[A, B, C]) Len() int { return s.end.Distance(s.begin) }

func (s sortable3[A, B, C]) Less(i, j int) bool {
	return s.begin.Add(i).Row().Less(s.begin.Add(j).Row())
}

func (s sortable3[A, B, C]) Swap(i, j int) {
	s.begin.Add(i).Swap(s.begin.Add(j))
}

// Sort3 sorts a, b and c together: a is the primary sort key, b breaks ties,
// then c, with all three slices permuted in lock-step. It fails with
// ErrLengthMismatch when the slices disagree on length, leaving all three
// untouched.
func Sort3[A, B, C cmp.Ordered](a []A, b []B, c []C) error {
	begin, err := Begin3(a, b, c)
	if err != nil {
		return err
	}
	sort.Sort(Interface3(begin, End3(a, b, c)))
	return nil
}

// IsSorted3 reports whether a, b and c are already in the order Sort3
// produces.
func IsSorted3[A, B, C cmp.Ordered](a []A, b []B, c []C) (bool, error) {
	begin, err := Begin3(a, b, c)
	if err != nil {
		return false, err
	}
	return sort.IsSorted(Interface3(begin, End3(a, b, c))), nil
}
