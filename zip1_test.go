package zip_test

import (
	"slices"
	"testing"

	"github.com/davidvella/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort1_MatchesDirectSort(t *testing.T) {
	a := []int{5, 3, 9, 1, 7, 3}
	want := slices.Clone(a)
	slices.Sort(want)

	require.NoError(t, zip.Sort1(a))
	assert.Equal(t, want, a)

	sorted, err := zip.IsSorted1(a)
	require.NoError(t, err)
	assert.True(t, sorted)
}

func TestBegin1_NeverFails(t *testing.T) {
	_, err := zip.Begin1([]string{"x"})
	assert.NoError(t, err)

	_, err = zip.Begin1[int](nil)
	assert.NoError(t, err)
}

func TestIter1_Traversal(t *testing.T) {
	a := []int{4, 2}

	begin, err := zip.Begin1(a)
	require.NoError(t, err)
	end := zip.End1(a)

	assert.Equal(t, 2, end.Distance(begin))

	begin.Swap(begin.Add(1))
	assert.Equal(t, []int{2, 4}, a)

	var got []int
	for row := range begin.All(end) {
		got = append(got, row.First())
	}
	assert.Equal(t, []int{2, 4}, got)
}

func TestIter1_RowWriteThrough(t *testing.T) {
	a := []int{1, 2, 3}

	begin, err := zip.Begin1(a)
	require.NoError(t, err)

	begin.Add(2).Row().SetFirst(0)
	assert.Equal(t, []int{1, 2, 0}, a)
	assert.Equal(t, 0, begin.Add(2).Row().Values())
}
