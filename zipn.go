package zip

import (
	"cmp"
	"iter"
	"slices"
	"sort"
)

// IterN is a random-access position over any number of slices sharing one
// element type, traversed in lock-step. It covers arities the fixed Iter2,
// Iter3 and Iter4 forms do not, at the cost of holding its cursors in a
// slice rather than in typed fields.
//
// An IterN copied by plain assignment shares its cursors with the original;
// use Add (Add(0) for a plain copy) to get an independent position.
type IterN[E cmp.Ordered] struct {
	cursors []cursor[E]
}

// BeginN returns an iterator positioned at the first elements of the given
// slices. It fails with ErrLengthMismatch when the slices disagree on
// length; no iterator is returned in that case. Zipping no slices yields an
// empty range.
func BeginN[E cmp.Ordered](vs ...[]E) (IterN[E], error) {
	lengths := make([]int, len(vs))
	for i, v := range vs {
		lengths[i] = len(v)
	}
	if !allEqual(lengths...) {
		return IterN[E]{}, ErrLengthMismatch
	}
	cursors := make([]cursor[E], len(vs))
	for i, v := range vs {
		cursors[i] = cursor[E]{data: v}
	}
	return IterN[E]{cursors: cursors}, nil
}

// EndN returns the position one past the last elements of the given slices.
// Lengths are not validated here: an EndN built from slices of different
// lengths bounds an inconsistent range that can run past the shorter slices,
// so call BeginN first.
func EndN[E cmp.Ordered](vs ...[]E) IterN[E] {
	cursors := make([]cursor[E], len(vs))
	for i, v := range vs {
		cursors[i] = cursor[E]{data: v, pos: len(v)}
	}
	return IterN[E]{cursors: cursors}
}

// Next moves every cursor forward one position.
func (it *IterN[E]) Next() { it.Advance(1) }

// Prev moves every cursor back one position.
func (it *IterN[E]) Prev() { it.Advance(-1) }

// Advance moves every cursor by n positions, in place. n may be negative.
// Moving outside [BeginN, EndN] is a programming error.
func (it *IterN[E]) Advance(n int) {
	for i := range it.cursors {
		it.cursors[i].step(n)
	}
}

// Add returns an independent copy of the iterator advanced by n positions.
// The receiver is left where it was.
func (it IterN[E]) Add(n int) IterN[E] {
	out := IterN[E]{cursors: slices.Clone(it.cursors)}
	out.Advance(n)
	return out
}

// Distance returns the signed number of positions from rhs to it. Both
// iterators must have been built from the same slices. Since cursors only
// move in lock-step, the first cursor stands in for the whole pack; two
// zero-arity iterators are at distance zero.
func (it IterN[E]) Distance(rhs IterN[E]) int {
	if len(it.cursors) == 0 {
		return 0
	}
	return it.cursors[0].distance(rhs.cursors[0])
}

// Compare orders two positions built from the same slices, cursor by cursor.
func (it IterN[E]) Compare(rhs IterN[E]) int {
	for i := range it.cursors {
		if c := it.cursors[i].compare(rhs.cursors[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether the two positions coincide.
func (it IterN[E]) Equal(rhs IterN[E]) bool { return it.Compare(rhs) == 0 }

// Less reports whether it sits before rhs.
func (it IterN[E]) Less(rhs IterN[E]) bool { return it.Compare(rhs) < 0 }

// Row returns the mutable view of the elements under the iterator.
// Dereferencing an end iterator panics.
func (it IterN[E]) Row() RowN[E] {
	elems := make([]*E, len(it.cursors))
	for i, c := range it.cursors {
		elems[i] = c.at()
	}
	return RowN[E]{elems: elems}
}

// Swap exchanges the elements under it with the elements under rhs, slice by
// slice.
func (it IterN[E]) Swap(rhs IterN[E]) {
	it.Row().Swap(rhs.Row())
}

// All returns an iterator over the rows in [it, end). Writes through the
// yielded rows are visible in the underlying slices.
func (it IterN[E]) All(end IterN[E]) iter.Seq[RowN[E]] {
	return func(yield func(RowN[E]) bool) {
		for cur := it.Add(0); cur.Less(end); cur.Next() {
			if !yield(cur.Row()) {
				return
			}
		}
	}
}

// RowN is the view of one element from each of the zipped slices. Reads and
// writes go straight through to the slices the row was derived from.
type RowN[E cmp.Ordered] struct {
	elems []*E
}

// Len returns the number of slices the row spans.
func (r RowN[E]) Len() int { return len(r.elems) }

// Get returns the element from the i-th slice.
func (r RowN[E]) Get(i int) E { return *r.elems[i] }

// Set writes v through to the i-th slice.
func (r RowN[E]) Set(i int, v E) { *r.elems[i] = v }

// Values returns the elements of the row in slice order.
func (r RowN[E]) Values() []E {
	vs := make([]E, len(r.elems))
	for i, p := range r.elems {
		vs[i] = *p
	}
	return vs
}

// Compare orders two rows lexicographically: the first slice's element is
// the primary key and each later slice breaks ties for the ones before it.
func (r RowN[E]) Compare(rhs RowN[E]) int {
	for i := range r.elems {
		if c := cmp.Compare(*r.elems[i], *rhs.elems[i]); c != 0 {
			return c
		}
	}
	return 0
}

// Equal reports whether both rows hold equal elements.
func (r RowN[E]) Equal(rhs RowN[E]) bool { return r.Compare(rhs) == 0 }

// Less reports whether r orders before rhs lexicographically.
func (r RowN[E]) Less(rhs RowN[E]) bool { return r.Compare(rhs) < 0 }

// Swap exchanges the elements of the two rows pairwise.
func (r RowN[E]) Swap(rhs RowN[E]) {
	for i := range r.elems {
		*r.elems[i], *rhs.elems[i] = *rhs.elems[i], *r.elems[i]
	}
}

// InterfaceN adapts the range [begin, end) to sort.Interface so the standard
// library's sorting and searching algorithms can drive the iterators
// directly. Element comparison and swapping go through the iterators' own
// Row ordering and Swap.
func InterfaceN[E cmp.Ordered](begin, end IterN[E]) sort.Interface {
	return sortableN[E]{begin: begin, end: end}
}

type sortableN[E cmp.Ordered] struct {
	begin, end IterN[E]
}

func (s sortableN[E]) Len() int { return s.end.Distance(s.begin) }

func (s sortableN[E]) Less(i, j int) bool {
	return s.begin.Add(i).Row().Less(s.begin.Add(j).Row())
}

func (s sortableN[E]) Swap(i, j int) {
	s.begin.Add(i).Swap(s.begin.Add(j))
}

// SortN sorts the given slices together: the first is the primary sort key
// and each later slice breaks ties, with every slice permuted in lock-step.
// It fails with ErrLengthMismatch when the slices disagree on length,
// leaving all of them untouched.
func SortN[E cmp.Ordered](vs ...[]E) error {
	begin, err := BeginN(vs...)
	if err != nil {
		return err
	}
	sort.Sort(InterfaceN(begin, EndN(vs...)))
	return nil
}

// IsSortedN reports whether the given slices are already in the order SortN
// produces.
func IsSortedN[E cmp.Ordered](vs ...[]E) (bool, error) {
	begin, err := BeginN(vs...)
	if err != nil {
		return false, err
	}
	return sort.IsSorted(InterfaceN(begin, EndN(vs...))), nil
}
