package zip_test

import (
	"testing"

	"github.com/davidvella/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBegin2(t *testing.T) {
	tests := []struct {
		name    string
		a       []int
		b       []string
		wantErr error
	}{
		{
			name: "equal lengths",
			a:    []int{1, 2, 3},
			b:    []string{"a", "b", "c"},
		},
		{
			name:    "first longer",
			a:       []int{1, 2, 3, 4},
			b:       []string{"a", "b", "c"},
			wantErr: zip.ErrLengthMismatch,
		},
		{
			name:    "second longer",
			a:       []int{1, 2, 3},
			b:       []string{"a", "b", "c", "d"},
			wantErr: zip.ErrLengthMismatch,
		},
		{
			name: "both empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := zip.Begin2(tt.a, tt.b)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestIter2_AdvanceRoundTrip(t *testing.T) {
	a := []int{1, 2, 3, 4, 5}
	b := []string{"a", "b", "c", "d", "e"}

	begin, err := zip.Begin2(a, b)
	require.NoError(t, err)

	it := begin
	it.Advance(4)
	it.Advance(-4)
	assert.True(t, it.Equal(begin))

	first, second := it.Row().Values()
	assert.Equal(t, 1, first)
	assert.Equal(t, "a", second)
}

func TestIter2_NextPrev(t *testing.T) {
	a := []int{10, 20, 30}
	b := []string{"x", "y", "z"}

	begin, err := zip.Begin2(a, b)
	require.NoError(t, err)

	it := begin
	it.Next()
	it.Next()
	assert.Equal(t, 30, it.Row().First())
	assert.Equal(t, "z", it.Row().Second())

	it.Prev()
	assert.Equal(t, 20, it.Row().First())
	assert.Equal(t, 1, it.Distance(begin))
}

func TestIter2_DistanceAdditionDuality(t *testing.T) {
	a := []int{1, 2, 3, 4, 5, 6}
	b := []string{"a", "b", "c", "d", "e", "f"}

	begin, err := zip.Begin2(a, b)
	require.NoError(t, err)
	end := zip.End2(a, b)

	assert.Equal(t, 6, end.Distance(begin))
	assert.Equal(t, -6, begin.Distance(end))

	mid := begin.Add(3)
	assert.True(t, begin.Add(mid.Distance(begin)).Equal(mid))
	assert.True(t, mid.Add(end.Distance(mid)).Equal(end))
}

func TestIter2_PositionOrdering(t *testing.T) {
	a := []int{1, 2, 3}
	b := []string{"a", "b", "c"}

	begin, err := zip.Begin2(a, b)
	require.NoError(t, err)
	end := zip.End2(a, b)

	assert.True(t, begin.Less(end))
	assert.False(t, end.Less(begin))
	assert.False(t, begin.Equal(end))
	assert.True(t, begin.Add(3).Equal(end))
	assert.Negative(t, begin.Compare(end))
	assert.Positive(t, end.Compare(begin))
}

func TestIter2_RowWriteThrough(t *testing.T) {
	a := []int{1, 2, 3}
	b := []string{"a", "b", "c"}

	begin, err := zip.Begin2(a, b)
	require.NoError(t, err)

	row := begin.Add(1).Row()
	row.SetFirst(42)
	row.SetSecond("zz")

	assert.Equal(t, []int{1, 42, 3}, a)
	assert.Equal(t, []string{"a", "zz", "c"}, b)

	got1, got2 := begin.Add(1).Row().Values()
	assert.Equal(t, 42, got1)
	assert.Equal(t, "zz", got2)

	begin.Add(2).Row().Set(7, "q")
	assert.Equal(t, []int{1, 42, 7}, a)
	assert.Equal(t, []string{"a", "zz", "q"}, b)
}

func TestIter2_SwapIsItsOwnInverse(t *testing.T) {
	a := []int{1, 2, 3}
	b := []string{"a", "b", "c"}

	begin, err := zip.Begin2(a, b)
	require.NoError(t, err)

	begin.Swap(begin.Add(2))
	assert.Equal(t, []int{3, 2, 1}, a)
	assert.Equal(t, []string{"c", "b", "a"}, b)

	begin.Swap(begin.Add(2))
	assert.Equal(t, []int{1, 2, 3}, a)
	assert.Equal(t, []string{"a", "b", "c"}, b)
}

func TestRow2_LexicographicOrdering(t *testing.T) {
	a := []int{1, 1, 2}
	b := []string{"a", "b", "a"}

	begin, err := zip.Begin2(a, b)
	require.NoError(t, err)

	r0 := begin.Row()
	r1 := begin.Add(1).Row()
	r2 := begin.Add(2).Row()

	// Equal firsts: the second slice decides.
	assert.True(t, r0.Less(r1))
	// Different firsts: the first slice decides regardless of the second.
	assert.True(t, r1.Less(r2))
	assert.False(t, r2.Less(r0))
	assert.True(t, r0.Equal(r0))
	assert.Zero(t, r0.Compare(r0))
}

func TestSort2(t *testing.T) {
	a := []int{3, 1, 2}
	b := []string{"c", "a", "b"}

	require.NoError(t, zip.Sort2(a, b))
	assert.Equal(t, []int{1, 2, 3}, a)
	assert.Equal(t, []string{"a", "b", "c"}, b)

	sorted, err := zip.IsSorted2(a, b)
	require.NoError(t, err)
	assert.True(t, sorted)
}

func TestSort2_TieBrokenBySecondSlice(t *testing.T) {
	a := []int{1, 1, 0}
	b := []string{"b", "a", "c"}

	require.NoError(t, zip.Sort2(a, b))
	assert.Equal(t, []int{0, 1, 1}, a)
	assert.Equal(t, []string{"c", "a", "b"}, b)
}

func TestSort2_LengthMismatchLeavesSlicesUntouched(t *testing.T) {
	a := []int{3, 1, 2}
	b := []string{"c", "a", "b", "d"}

	err := zip.Sort2(a, b)
	assert.ErrorIs(t, err, zip.ErrLengthMismatch)
	assert.Equal(t, []int{3, 1, 2}, a)
	assert.Equal(t, []string{"c", "a", "b", "d"}, b)
}

func TestIter2_All(t *testing.T) {
	a := []int{1, 2, 3}
	b := []string{"a", "b", "c"}

	begin, err := zip.Begin2(a, b)
	require.NoError(t, err)

	var firsts []int
	var seconds []string
	for row := range begin.All(zip.End2(a, b)) {
		firsts = append(firsts, row.First())
		seconds = append(seconds, row.Second())
	}

	assert.Equal(t, []int{1, 2, 3}, firsts)
	assert.Equal(t, []string{"a", "b", "c"}, seconds)
}

func TestIter2_AllWriteThrough(t *testing.T) {
	a := []int{1, 2, 3}
	b := []string{"a", "b", "c"}

	begin, err := zip.Begin2(a, b)
	require.NoError(t, err)

	for row := range begin.All(zip.End2(a, b)) {
		row.SetFirst(row.First() * 10)
	}

	assert.Equal(t, []int{10, 20, 30}, a)
	assert.Equal(t, []string{"a", "b", "c"}, b)
}

func TestIter2_AllEmptyRange(t *testing.T) {
	var a []int
	var b []string

	begin, err := zip.Begin2(a, b)
	require.NoError(t, err)

	for range begin.All(zip.End2(a, b)) {
		t.Fatal("empty range must not yield")
	}
}
