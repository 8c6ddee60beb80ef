package zip

import (
	"cmp"
	"iter"
	"sort"
)

// Iter4 is a random-access position over four slices traversed in lock-step.
// It holds one cursor per slice; every movement operation moves all four
// cursors together, so the cursors always sit at the same offset.
type Iter4[A, B, C, D cmp.Ordered] struct {
	a cursor[A]
	b cursor[B]
	c cursor[C]
	d cursor[D]
}

// Begin4 returns an iterator positioned at the first elements of a, b, c and
// d. It fails with ErrLengthMismatch when the slices disagree on length; no
// iterator is returned in that case.
func Begin4[A, B, C, D cmp.Ordered](a []A, b []B, c []C, d []D) (Iter4[A, B, C, D], error) {
	if !allEqual(len(a), len(b), len(c), len(d)) {
		return Iter4[A, B, C, D]{}, ErrLengthMismatch
	}
	return Iter4[A, B, C, D]{
		a: cursor[A]{data: a},
		b: cursor[B]{data: b},
		c: cursor[C]{data: c},
		d: cursor[D]{data: d},
	}, nil
}

// End4 returns the position one past the last elements of a, b, c and d.
// Lengths are not validated here: an End4 built from slices of different
// lengths bounds an inconsistent range that can run past the shorter slices,
// so call Begin4 first.
func End4[A, B, C, D cmp.Ordered](a []A, b []B, c []C, d []D) Iter4[A, B, C, D] {
	return Iter4[A, B, C, D]{
		a: cursor[A]{data: a, pos: len(a)},
		b: cursor[B]{data: b, pos: len(b)},
		c: cursor[C]{data: c, pos: len(c)},
		d: cursor[D]{data: d, pos: len(d)},
	}
}

// Next moves every cursor forward one position.
func (it *Iter4[A, B, C, D]) Next() { it.Advance(1) }

// Prev moves every cursor back one position.
func (it *Iter4[A, B, C, D]) Prev() { it.Advance(-1) }

// Advance moves every cursor by n positions, in place. n may be negative.
// Moving outside [Begin4, End4] is a programming error.
func (it *Iter4[A, B, C, D]) Advance(n int) {
	it.a.step(n)
	it.b.step(n)
	it.c.step(n)
	it.d.step(n)
}

// Add returns a copy of the iterator advanced by n positions. The receiver
// is left where it was.
func (it Iter4[A, B, C, D]) Add(n int) Iter4[A, B, C, D] {
	it.Advance(n)
	return it
}

// Distance returns the signed number of positions from rhs to it. Both
// iterators must have been built from the same slices. Since cursors only
// move in lock-step, the first cursor stands in for the whole pack.
func (it Iter4[A, B, C, D]) Distance(rhs Iter4[A, B, C, D]) int {
	return it.a.distance(rhs.a)
}

// Compare orders two positions built from the same slices, cursor by cursor.
func (it Iter4[A, B, C, D]) Compare(rhs Iter4[A, B, C, D]) int {
	if c := it.a.compare(rhs.a); c != 0 {
		return c
	}
	if c := it.b.compare(rhs.b); c != 0 {
		return c
	}
	if c := it.c.compare(rhs.c); c != 0 {
		return c
	}
	return it.d.compare(rhs.d)
}

// Equal reports whether the two positions coincide.
func (it Iter4[A, B, C, D]) Equal(rhs Iter4[A, B, C, D]) bool { return it.Compare(rhs) == 0 }

// Less reports whether it sits before rhs.
func (it Iter4[A, B, C, D]) Less(rhs Iter4[A, B, C, D]) bool { return it.Compare(rhs) < 0 }

// Row returns the mutable view of the elements under the iterator.
// Dereferencing an end iterator panics.
func (it Iter4[A, B, C, D]) Row() Row4[A, B, C, D] {
	return Row4[A, B, C, D]{a: it.a.at(), b: it.b.at(), c: it.c.at(), d: it.d.at()}
}

// Swap exchanges the elements under it with the elements under rhs, slice by
// slice.
func (it Iter4[A, B, C, D]) Swap(rhs Iter4[A, B, C, D]) {
	it.Row().Swap(rhs.Row())
}

// All returns an iterator over the rows in [it, end). Writes through the
// yielded rows are visible in the underlying slices.
func (it Iter4[A, B, C, D]) All(end Iter4[A, B, C, D]) iter.Seq[Row4[A, B, C, D]] {
	return func(yield func(Row4[A, B, C, D]) bool) {
		for cur := it; cur.Less(end); cur.Next() {
			if !yield(cur.Row()) {
				return
			}
		}
	}
}

// Row4 is the view of one element from each of four zipped slices. Reads and
// writes go straight through to the slices the row was derived from.
type Row4[A, B, C, D cmp.Ordered] struct {
	a *A
	b *B
	c *C
	d *D
}

// First returns the element from the first slice.
func (r Row4[A, B, C, D]) First() A { return *r.a }

// SetFirst writes v through to the first slice.
func (r Row4[A, B, C, D]) SetFirst(v A) { *r.a = v }

// Second returns the element from the second slice.
func (r Row4[A, B, C, D]) Second() B { return *r.b }

// SetSecond writes v through to the second slice.
func (r Row4[A, B, C, D]) SetSecond(v B) { *r.b = v }

// Third returns the element from the third slice.
func (r Row4[A, B, C, D]) Third() C { return *r.c }

// SetThird writes v through to the third slice.
func (r Row4[A, B, C, D]) SetThird(v C) { *r.c = v }

// Fourth returns the element from the fourth slice.
func (r Row4[A, B, C, D]) Fourth() D { return *r.d }

// SetFourth writes v through to the fourth slice.
func (r Row4[A, B, C, D]) SetFourth(v D) { *r.d = v }

// Values returns the elements of the row in slice order.
func (r Row4[A, B, C, D]) Values() (A, B, C, D) { return *r.a, *r.b, *r.c, *r.d }

// Set writes every element of the row.
func (r Row4[A, B, C, D]) Set(a A, b B, c C, d D) {
	*r.a = a
	*r.b = b
	*r.c = c
	*r.d = d
}

// Compare orders two rows lexicographically: the first slice's element is
// the primary key and each later slice breaks ties for the ones before it.
func (r Row4[A, B, C, D]) Compare(rhs Row4[A, B, C, D]) int {
	if c := cmp.Compare(*r.a, *rhs.a); c != 0 {
		return c
	}
	if c := cmp.Compare(*r.b, *rhs.b); c != 0 {
		return c
	}
	if c := cmp.Compare(*r.c, *rhs.c); c != 0 {
		return c
	}
	return cmp.Compare(*r.d, *rhs.d)
}

// Equal reports whether both rows hold equal elements.
func (r Row4[A, B, C, D]) Equal(rhs Row4[A, B, C, D]) bool { return r.Compare(rhs) == 0 }

// Less reports whether r orders before rhs lexicographically.
func (r Row4[A, B, C, D]) Less(rhs Row4[A, B, C, D]) bool { return r.Compare(rhs) < 0 }

// Swap exchanges the elements of the two rows pairwise.
func (r Row4[A, B, C, D]) Swap(rhs Row4[A, B, C, D]) {
	*r.a, *rhs.a = *rhs.a, *r.a
	*r.b, *rhs.b = *rhs.b, *r.b
	*r.c, *rhs.c = *rhs.c, *r.c
	*r.d, *rhs.d = *rhs.d, *r.d
}

// Interface4 adapts the range [begin, end) to sort.Interface so the standard
// library's sorting and searching algorithms can drive the iterators
// directly. Element comparison and swapping go through the iterators' own
// Row ordering and Swap.
func Interface4[A, B, C, D cmp.Ordered](begin, end Iter4[A, B, C, D]) sort.Interface {
	return sortable4[A, B, C, D]{begin: begin, end: end}
}

type sortable4[A, B, C, D cmp.Ordered] struct {
	begin, end Iter4[A, B, C, D]
}

func (s sortable4[A, B, C, D]) Len() int { return s.end.Distance(s.begin) }

func (s sortable4[A, B, C, D]) Less(i, j int) bool {
	return s.begin.Add(i).Row().Less(s.begin.Add(j).Row())
}

func (s sortable4[A, B, C, D]) Swap(i, j int) {
	s.begin.Add(i).Swap(s.begin.Add(j))
}

// Sort4 sorts a, b, c and d together: a is the primary sort key and each
// later slice breaks ties, with all four slices permuted in lock-step. It
// fails with ErrLengthMismatch when the slices disagree on length, leaving
// all four untouched.
func Sort4[A, B, C, D cmp.Ordered](a []A, b []B, c []C, d []D) error {
	begin, err := Begin4(a, b, c, d)
	if err != nil {
		return err
	}
	sort.Sort(Interface4(begin, End4(a, b, c, d)))
	return nil
}

// IsSorted4 reports whether a, b, c and d are already in the order Sort4
// produces.
func IsSorted4[A, B, C, D cmp.Ordered](a []A, b []B, c []C, d []D) (bool, error) {
	begin, err := Begin4(a, b, c, d)
	if err != nil {
		return false, err
	}
	return sort.IsSorted(Interface4(begin, End4(a, b, c, d))), nil
}
