package zip

import (
	"cmp"
	"iter"
	"sort"
)

// Iter1 is the degenerate single-slice form of the iterator family. Zipping
// one slice behaves exactly like sorting or traversing that slice directly;
// it exists so arity-generic callers have a uniform surface.
type Iter1[A cmp.Ordered] struct {
	a cursor[A]
}

// Begin1 returns an iterator positioned at the first element of a. With a
// single slice there are no lengths to disagree, so it never fails; the
// error return keeps the Begin family uniform.
func Begin1[A cmp.Ordered](a []A) (Iter1[A], error) {
	return Iter1[A]{
		a: cursor[A]{data: a},
	}, nil
}

// End1 returns the position one past the last element of a.
func End1[A cmp.Ordered](a []A) Iter1[A] {
	return Iter1[A]{
		a: cursor[A]{data: a, pos: len(a)},
	}
}

// Next moves the cursor forward one position.
func (it *Iter1[A]) Next() { it.Advance(1) }

// Prev moves the cursor back one position.
func (it *Iter1[A]) Prev() { it.Advance(-1) }

// Advance moves the cursor by n positions, in place. n may be negative.
// Moving outside [Begin1, End1] is a programming error.
func (it *Iter1[A]) Advance(n int) {
	it.a.step(n)
}

// Add returns a copy of the iterator advanced by n positions. The receiver
// is left where it was.
func (it Iter1[A]) Add(n int) Iter1[A] {
	it.Advance(n)
	return it
}

// Distance returns the signed number of positions from rhs to it. Both
// iterators must have been built from the same slice.
func (it Iter1[A]) Distance(rhs Iter1[A]) int {
	return it.a.distance(rhs.a)
}

// Compare orders two positions built from the same slice.
func (it Iter1[A]) Compare(rhs Iter1[A]) int {
	return it.a.compare(rhs.a)
}

// Equal reports whether the two positions coincide.
func (it Iter1[A]) Equal(rhs Iter1[A]) bool { return it.Compare(rhs) == 0 }

// Less reports whether it sits before rhs.
func (it Iter1[A]) Less(rhs Iter1[A]) bool { return it.Compare(rhs) < 0 }

// Row returns the mutable view of the element under the iterator.
// Dereferencing an end iterator panics.
func (it Iter1[A]) Row() Row1[A] {
	return Row1[A]{a: it.a.at()}
}

// Swap exchanges the element under it with the element under rhs.
func (it Iter1[A]) Swap(rhs Iter1[A]) {
	it.Row().Swap(rhs.Row())
}

// All returns an iterator over the rows in [it, end). Writes through the
// yielded rows are visible in the underlying slice.
func (it Iter1[A]) All(end Iter1[A]) iter.Seq[Row1[A]] {
	return func(yield func(Row1[A]) bool) {
		for cur := it; cur.Less(end); cur.Next() {
			if !yield(cur.Row()) {
				return
			}
		}
	}
}

// Row1 is the view of one element of a zipped slice. Reads and writes go
// straight through to the slice the row was derived from.
type Row1[A cmp.Ordered] struct {
	a *A
}

// First returns the element.
func (r Row1[A]) First() A { return *r.a }

// SetFirst writes v through to the slice.
func (r Row1[A]) SetFirst(v A) { *r.a = v }

// Values returns the element of the row.
func (r Row1[A]) Values() A { return *r.a }

// Set writes the element of the row.
func (r Row1[A]) Set(a A) {
	*r.a = a
}

// Compare orders two rows by their element.
func (r Row1[A]) Compare(rhs Row1[A]) int {
	return cmp.Compare(*r.a, *rhs.a)
}

// Equal reports whether both rows hold equal elements.
func (r Row1[A]) Equal(rhs Row1[A]) bool { return r.Compare(rhs) == 0 }

// Less reports whether r orders before rhs.
func (r Row1[A]) Less(rhs Row1[A]) bool { return r.Compare(rhs) < 0 }

// Swap exchanges the elements of the two rows.
func (r Row1[A]) Swap(rhs Row1[A]) {
	*r.a, *rhs.a = *rhs.a, *r.a
}

// Interface1 adapts the range [begin, end) to sort.Interface so the standard
// library's sorting and searching algorithms can drive the iterators
// directly.
func Interface1[A cmp.Ordered](begin, end Iter1[A]) sort.Interface {
	return sortable1[A]{begin: begin, end: end}
}

type sortable1[A cmp.Ordered] struct {
	begin, end Iter1[A]
}

func (s sortable1[A]) Len() int { return s.end.Distance(s.begin) }

func (s sortable1[A]) Less(i, j int) bool {
	return s.begin.Add(i).Row().Less(s.begin.Add(j).Row())
}

func (s sortable1[A]) Swap(i, j int) {
	s.begin.Add(i).Swap(s.begin.Add(j))
}

// Sort1 sorts a in ascending order through the zipped view. It is
// equivalent to sorting the slice directly.
func Sort1[A cmp.Ordered](a []A) error {
	begin, err := Begin1(a)
	if err != nil {
		return err
	}
	sort.Sort(Interface1(begin, End1(a)))
	return nil
}

// IsSorted1 reports whether a is already in ascending order.
func IsSorted1[A cmp.Ordered](a []A) (bool, error) {
	begin, err := Begin1(a)
	if err != nil {
		return false, err
	}
	return sort.IsSorted(Interface1(begin, End1(a))), nil
}
