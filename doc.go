// Package zip lets several same-length slices be traversed and sorted in
// lock-step, as if they were one slice of tuples. It exists so that
// sort-style algorithms can run across parallel slices without first merging
// them into a slice of structs: put the key slice first and the remaining
// slices are permuted along with it.
//
// The package provides one iterator family per arity. Iter2, Iter3 and Iter4
// zip two, three and four slices of (possibly different) ordered element
// types; Iter1 covers the degenerate single-slice case; IterN zips any number
// of slices sharing one element type. Each iterator bundles one cursor per
// slice and moves all of them together, so the i-th elements of every slice
// always line up.
//
// Key features:
//   - Random-access iteration: Next, Prev, Add, Advance, Distance
//   - Mutable row views: reads and writes go straight through to the slices
//   - Lexicographic row ordering: slice order defines sort priority
//   - sort.Interface adapters so the standard library sorts the zipped range
//   - iter.Seq traversal of a half-open range via All
//
// Basic usage:
//
//	ages := []int{3, 1, 2}
//	names := []string{"carol", "alice", "bob"}
//
//	// Sort both slices by age, carrying names along.
//	if err := zip.Sort2(ages, names); err != nil {
//	    // slices had different lengths
//	}
//	// ages  = [1, 2, 3]
//	// names = ["alice", "bob", "carol"]
//
// Lower-level access uses the Begin/End pair directly:
//
//	begin, err := zip.Begin2(ages, names)
//	if err != nil {
//	    return err
//	}
//	for row := range begin.All(zip.End2(ages, names)) {
//	    fmt.Println(row.First(), row.Second())
//	}
//
// Error handling:
// the Begin, Sort and IsSorted families return ErrLengthMismatch when the
// zipped slices disagree on length. No other operation reports an error.
//
// Misuse is not checked. Advancing an iterator outside [Begin, End],
// dereferencing an end iterator, or comparing iterators built from different
// slice sets is a programming error; the package adds no bounds checking
// beyond the runtime's own slice checks, so such misuse panics at best and
// silently reads the wrong elements at worst. Iterators borrow the slices
// they were built from and are invalidated by anything that invalidates a
// slice reference, such as an append that reallocates.
//
// The package offers no locking: concurrent mutation of the underlying
// slices during iteration is the caller's responsibility.
package zip
