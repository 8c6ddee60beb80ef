package zip_test

import (
	"testing"

	"github.com/davidvella/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort4(t *testing.T) {
	a := []int{2, 1, 2, 1}
	b := []string{"b", "z", "a", "z"}
	c := []float64{0.9, 0.2, 0.4, 0.1}
	d := []int{1, 2, 3, 4}

	require.NoError(t, zip.Sort4(a, b, c, d))
	assert.Equal(t, []int{1, 1, 2, 2}, a)
	assert.Equal(t, []string{"z", "z", "a", "b"}, b)
	assert.Equal(t, []float64{0.1, 0.2, 0.4, 0.9}, c)
	assert.Equal(t, []int{4, 2, 3, 1}, d)

	sorted, err := zip.IsSorted4(a, b, c, d)
	require.NoError(t, err)
	assert.True(t, sorted)
}

func TestBegin4_LengthMismatch(t *testing.T) {
	_, err := zip.Begin4(
		[]int{1, 2},
		[]string{"a", "b"},
		[]float64{0.1},
		[]int{1, 2},
	)
	assert.ErrorIs(t, err, zip.ErrLengthMismatch)
}

func TestIter4_RowAccessors(t *testing.T) {
	a := []int{1}
	b := []string{"a"}
	c := []float64{0.1}
	d := []int{10}

	begin, err := zip.Begin4(a, b, c, d)
	require.NoError(t, err)

	row := begin.Row()
	assert.Equal(t, 1, row.First())
	assert.Equal(t, "a", row.Second())
	assert.Equal(t, 0.1, row.Third())
	assert.Equal(t, 10, row.Fourth())

	row.SetFourth(20)
	assert.Equal(t, []int{20}, d)

	v1, v2, v3, v4 := row.Values()
	assert.Equal(t, 1, v1)
	assert.Equal(t, "a", v2)
	assert.Equal(t, 0.1, v3)
	assert.Equal(t, 20, v4)
}
