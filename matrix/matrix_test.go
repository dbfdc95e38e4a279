package matrix

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m, err := New([][]float64{
		{1, 2, 3},
		{4, 5, 6},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, m.Rows())
	nCols, err := m.Cols()
	require.NoError(t, err)
	assert.Equal(t, 3, nCols)

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 6.0, v)
}

func TestNewCopiesInput(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}
	m, err := New(rows)
	require.NoError(t, err)

	rows[0][0] = 100
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestNewRejectsBadShapes(t *testing.T) {
	testCases := map[string][][]float64{
		"ragged":     {{1, 2, 3}, {4, 5}},
		"no rows":    {},
		"no columns": {{}},
	}

	for name, rows := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := New(rows)
			require.ErrorIs(t, err, ErrShape)
		})
	}
}

func TestNewFromFlat(t *testing.T) {
	m, err := NewFromFlat([]float64{1, 2, 3, 4, 5, 6}, 3)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}, {5, 6}}, m.Slices())
}

func TestNewFromFlatRejectsIndivisibleLength(t *testing.T) {
	values := make([]float64, 10)
	_, err := NewFromFlat(values, 3)
	require.ErrorIs(t, err, ErrShape)

	_, err = NewFromFlat(values, 0)
	require.ErrorIs(t, err, ErrShape)

	_, err = NewFromFlat(nil, 2)
	require.ErrorIs(t, err, ErrShape)
}

func TestAtOutOfRange(t *testing.T) {
	m, err := New([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	for _, idx := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(idx[0], idx[1])
		assert.ErrorIs(t, err, ErrOutOfRange, "At(%d, %d)", idx[0], idx[1])
	}
}

func TestAddConst(t *testing.T) {
	m, err := New([][]float64{{-1, 2}, {3, -4}})
	require.NoError(t, err)

	m.AddConst(4)
	assert.Equal(t, [][]float64{{3, 6}, {7, 0}}, m.Slices())
	assert.Equal(t, 0.0, m.Min())
}

func TestRemoveRow(t *testing.T) {
	m, err := New([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	require.NoError(t, m.RemoveRow(1))
	assert.Equal(t, [][]float64{{1, 2}, {5, 6}}, m.Slices())
	require.ErrorIs(t, m.RemoveRow(2), ErrOutOfRange)
}

func TestRemoveColumn(t *testing.T) {
	m, err := New([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	require.NoError(t, m.RemoveColumn(0))
	assert.Equal(t, [][]float64{{2, 3}, {5, 6}}, m.Slices())
	nCols, err := m.Cols()
	require.NoError(t, err)
	assert.Equal(t, 2, nCols)

	require.ErrorIs(t, m.RemoveColumn(2), ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestColsOfEmptyMatrix(t *testing.T) {
	m, err := New([][]float64{{1, 2}})
	require.NoError(t, err)

	require.NoError(t, m.RemoveRow(0))
	assert.Equal(t, 0, m.Rows())
	_, err = m.Cols()
	require.ErrorIs(t, err, ErrEmptyMatrix)
}

func TestCloneIsIndependent(t *testing.T) {
	m, err := New([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	clone := m.Clone()
	clone.AddConst(1)
	require.NoError(t, clone.RemoveRow(0))

	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, m.Slices())
	assert.Equal(t, [][]float64{{4, 5}}, clone.Slices())
}

func TestFormat(t *testing.T) {
	m, err := New([][]float64{{1, -2.5}, {0.3, 4}})
	require.NoError(t, err)

	assert.Equal(t, "1.00 -2.50 \n0.30 4.00 \n", m.Format(2))
	assert.Equal(t, "1.0 -2.5 \n0.3 4.0 \n", m.String())
}

func TestRandomInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(123))
	m, err := RandomInRange(rng, 4, 5, -3, 7)
	require.NoError(t, err)

	assert.Equal(t, 4, m.Rows())
	for _, row := range m.Slices() {
		require.Len(t, row, 5)
		for _, v := range row {
			assert.GreaterOrEqual(t, v, -3.0)
			assert.Less(t, v, 7.0)
		}
	}

	_, err = RandomInRange(rng, 2, 2, 5, 5)
	require.ErrorIs(t, err, ErrBadRange)

	_, err = Random(rng, 0, 2)
	require.ErrorIs(t, err, ErrShape)
}
