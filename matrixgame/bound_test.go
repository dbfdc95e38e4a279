package matrixgame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowerBound(t *testing.T) {
	payoffs := [][]float64{
		{3, 1},
		{1, 2},
	}

	// Both rows have minimum 1; the first one wins.
	assert.Equal(t, Bound{Index: 0, Value: 1}, lowerBound(payoffs))
}

func TestUpperBound(t *testing.T) {
	payoffs := [][]float64{
		{4, 2, 5},
		{3, 5, 4},
	}

	// Column maxima are 4, 5, 5.
	assert.Equal(t, Bound{Index: 0, Value: 4}, upperBound(payoffs))

	tied := [][]float64{
		{2, 1},
		{1, 2},
	}
	assert.Equal(t, Bound{Index: 0, Value: 2}, upperBound(tied))
}

func TestFindSaddlePoint(t *testing.T) {
	sp, ok := findSaddlePoint([][]float64{
		{2, 1},
		{3, 4},
	})
	if !ok {
		t.Fatal("expected a saddle point")
	}

	assert.Equal(t, SaddlePoint{Row: 1, Column: 0, Value: 3}, sp)

	_, ok = findSaddlePoint([][]float64{
		{4, 2},
		{3, 5},
	})
	assert.False(t, ok)
}

func TestArgMinArgMaxTieBreak(t *testing.T) {
	v, idx := argMax([]float64{1, 5, 5, 2})
	assert.Equal(t, 5.0, v)
	assert.Equal(t, 1, idx)

	v, idx = argMin([]float64{3, 0, 4, 0})
	assert.Equal(t, 0.0, v)
	assert.Equal(t, 1, idx)

	v, idx = argMax([]float64{-7, -9})
	assert.Equal(t, -7.0, v)
	assert.Equal(t, 0, idx)
}
