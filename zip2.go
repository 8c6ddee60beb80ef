package zip

import (
	"cmp"
	"iter"
	"sort"
)

// Iter2 is a random-access position over two slices traversed in lock-step.
// It holds one cursor per slice; every movement operation moves both cursors
// together, so the cursors always sit at the same offset.
type Iter2[A, B cmp.Ordered] struct {
	a cursor[A]
	b cursor[B]
}

// Begin2 returns an iterator positioned at the first elements of a and b.
// It fails with ErrLengthMismatch when the slices disagree on length; no
// iterator is returned in that case.
func Begin2[A, B cmp.Ordered](a []A, b []B) (Iter2[A, B], error) {
	if !allEqual(len(a), len(b)) {
		return Iter2[A, B]{}, ErrLengthMismatch
	}
	return Iter2[A, B]{
		a: cursor[A]{data: a},
		b: cursor[B]{data: b},
	}, nil
}

// End2 returns the position one past the last elements of a and b. Lengths
// are not validated here: an End2 built from slices of different lengths
// bounds an inconsistent range that can run past the shorter slice, so call
// Begin2 first.
func End2[A, B cmp.Ordered](a []A, b []B) Iter2[A, B] {
	return Iter2[A, B]{
		a: cursor[A]{data: a, pos: len(a)},
		b: cursor[B]{data: b, pos: len(b)},
	}
}

// Next moves every cursor forward one position.
func (it *Iter2[A, B]) Next() { it.Advance(1) }

// Prev moves every cursor back one position.
func (it *Iter2[A, B]) Prev() { it.Advance(-1) }

// Advance moves every cursor by n positions, in place. n may be negative.
// Moving outside [Begin2, End2] is a programming error.
func (it *Iter2[A, B]) Advance(n int) {
	it.a.step(n)
	it.b.step(n)
}

// Add returns a copy of the iterator advanced by n positions. The receiver
// is left where it was.
func (it Iter2[A, B]) Add(n int) Iter2[A, B] {
	it.Advance(n)
	return it
}

// Distance returns the signed number of positions from rhs to it. Both
// iterators must have been built from the same slices. Since cursors only
// move in lock-step, the first cursor stands in for the whole pack.
func (it Iter2[A, B]) Distance(rhs Iter2[A, B]) int {
	return it.a.distance(rhs.a)
}

// Compare orders two positions built from the same slices, cursor by cursor.
func (it Iter2[A, B]) Compare(rhs Iter2[A, B]) int {
	if c := it.a.compare(rhs.a); c != 0 {
		return c
	}
	return it.b.compare(rhs.b)
}

// Equal reports whether the two positions coincide.
func (it Iter2[A, B]) Equal(rhs Iter2[A, B]) bool { return it.Compare(rhs) == 0 }

// Less reports whether it sits before rhs.
func (it Iter2[A, B]) Less(rhs Iter2[A, B]) bool { return it.Compare(rhs) < 0 }

// Row returns the mutable view of the elements under the iterator.
// Dereferencing an end iterator panics.
func (it Iter2[A, B]) Row() Row2[A, B] {
	return Row2[A, B]{a: it.a.at(), b: it.b.at()}
}

// Swap exchanges the elements under it with the elements under rhs, slice by
// slice: the first slice's elements swap with each other, then the second's.
func (it Iter2[A, B]) Swap(rhs Iter2[A, B]) {
	it.Row().Swap(rhs.Row())
}

// All returns an iterator over the rows in [it, end). Writes through the
// yielded rows are visible in the underlying slices.
func (it Iter2[A, B]) All(end Iter2[A, B]) iter.Seq[Row2[A, B]] {
	return func(yield func(Row2[A, B]) bool) {
		for cur := it; cur.Less(end); cur.Next() {
			if !yield(cur.Row()) {
				return
			}
		}
	}
}

// Row2 is the view of one element from each of two zipped slices. Reads and
// writes go straight through to the slices the row was derived from.
type Row2[A, B cmp.Ordered] struct {
	a *A
	b *B
}

// First returns the element from the first slice.
func (r Row2[A, B]) First() A { return *r.a }

// SetFirst writes v through to the first slice.
func (r Row2[A, B]) SetFirst(v A) { *r.a = v }

// Second returns the element from the second slice.
func (r Row2[A, B]) Second() B { return *r.b }

// SetSecond writes v through to the second slice.
func (r Row2[A, B]) SetSecond(v B) { *r.b = v }

// Values returns the elements of the row in slice order.
func (r Row2[A, B]) Values() (A, B) { return *r.a, *r.b }

// Set writes every element of the row.
func (r Row2[A, B]) Set(a A, b B) {
	*r.a = a
	*r.b = b
}

// Compare orders two rows lexicographically: the first slice's element is
// the primary key and the second breaks ties.
func (r Row2[A, B]) Compare(rhs Row2[A, B]) int {
	if c := cmp.Compare(*r.a, *rhs.a); c != 0 {
		return c
	}
	return cmp.Compare(*r.b, *rhs.b)
}

// Equal reports whether both rows hold equal elements.
func (r Row2[A, B]) Equal(rhs Row2[A, B]) bool { return r.Compare(rhs) == 0 }

// Less reports whether r orders before rhs lexicographically.
func (r Row2[A, B]) Less(rhs Row2[A, B]) bool { return r.Compare(rhs) < 0 }

// Swap exchanges the elements of the two rows pairwise.
func (r Row2[A, B]) Swap(rhs Row2[A, B]) {
	*r.a, *rhs.a = *rhs.a, *r.a
	*r.b, *rhs.b = *rhs.b, *r.b
}

// Interface2 adapts the range [begin, end) to sort.Interface so the standard
// library's sorting and searching algorithms can drive the iterators
// directly. Element comparison and swapping go through the iterators' own
// Row ordering and Swap.
func Interface2[A, B cmp.Ordered](begin, end Iter2[A, B]) sort.Interface {
	return sortable2[A, B]{begin: begin, end: end}
}

type sortable2[A, B cmp.Ordered] struct {
	begin, end Iter2[A, B]
}

func (s sortable2[A, B]) Len() int { return s.end.Distance(s.begin) }

func (s sortable2[A, B]) Less(i, j int) bool {
	return s.begin.Add(i).Row().Less(s.begin.Add(j).Row())
}

func (s sortable2[A, B]) Swap(i, j int) {
	s.begin.Add(i).Swap(s.begin.Add(j))
}

// Sort2 sorts a and b together: a is the primary sort key and b breaks ties,
// with b permuted in lock-step with a. It fails with ErrLengthMismatch when
// the slices disagree on length, leaving both untouched.
func Sort2[A, B cmp.Ordered](a []A, b []B) error {
	begin, err := Begin2(a, b)
	if err != nil {
		return err
	}
	sort.Sort(Interface2(begin, End2(a, b)))
	return nil
}

// IsSorted2 reports whether a and b are already in the order Sort2 produces.
func IsSorted2[A, B cmp.Ordered](a []A, b []B) (bool, error) {
	begin, err := Begin2(a, b)
	if err != nil {
		return false, err
	}
	return sort.IsSorted(Interface2(begin, End2(a, b))), nil
}
