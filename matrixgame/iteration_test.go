package matrixgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstIterations(t *testing.T) {
	payoffs := [][]float64{
		{3, 0},
		{0, 3},
	}

	it := firstIteration(payoffs, 0)
	assert.Equal(t, 1, it.Round())
	assert.Equal(t, 0, it.RowStrategy())
	assert.Equal(t, []float64{3, 0}, it.Gains())
	assert.Equal(t, 1, it.ColumnStrategy())
	assert.Equal(t, []float64{0, 3}, it.Losses())
	assert.Equal(t, 1, it.NextRow())
	assert.Equal(t, 1.5, it.Value())

	it = it.Next()
	assert.Equal(t, 2, it.Round())
	assert.Equal(t, 1, it.RowStrategy())
	assert.Equal(t, []float64{3, 3}, it.Gains())
	// Columns are tied; the lowest index wins.
	assert.Equal(t, 0, it.ColumnStrategy())
	assert.Equal(t, []float64{3, 3}, it.Losses())
	assert.Equal(t, 0, it.NextRow())
	assert.Equal(t, 1.5, it.Value())
}

func TestNextDoesNotModifyPrevious(t *testing.T) {
	payoffs := [][]float64{
		{1, 4, 2},
		{3, 0, 5},
	}

	first := firstIteration(payoffs, 1)
	gains, losses := first.Gains(), first.Losses()
	second := first.Next()
	_ = second.Next()

	assert.Equal(t, gains, first.Gains())
	assert.Equal(t, losses, first.Losses())

	// Accessors return copies.
	g := second.Gains()
	g[0] = 1000
	assert.NotEqual(t, 1000.0, second.Gains()[0])
}

func TestIterationFormat(t *testing.T) {
	it := firstIteration([][]float64{
		{3, 0},
		{0, 3},
	}, 0)

	assert.Equal(t, "A0 3.00 0.00 B1 0.00 3.00 1.50", it.String())
	assert.Equal(t, "A0 3.0 0.0 B1 0.0 3.0 1.5", it.Format(1))
}
