package matrixgame

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/timpalpant/zerosum/matrix"
)

func TestFictitiousPlay_RockPaperScissors(t *testing.T) {
	winRateMatrix, err := matrix.New([][]float64{
		{0, 1, -1}, // Player 0 plays rock.
		{-1, 0, 1}, // Player 0 plays scissors.
		{1, -1, 0}, // Player 0 plays paper.
	})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(123))
	p0, p1, err := FictitiousPlay(winRateMatrix, 10000, 0, rng)
	require.NoError(t, err)
	t.Logf("Player 0 Nash equilibrium policy: %v", p0)
	t.Logf("Player 1 Nash equilibrium policy: %v", p1)

	for _, v := range append(p0, p1...) {
		assert.InDelta(t, 1.0/3, v, 0.05)
	}
}

func TestFictitiousPlay_PureEquilibrium(t *testing.T) {
	m, err := matrix.New([][]float64{
		{2, 1},
		{3, 4},
	})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(123))
	p0, p1, err := FictitiousPlay(m, 100, 0, rng)
	require.NoError(t, err)

	assert.Greater(t, p0[1], 0.95)
	assert.Greater(t, p1[0], 0.95)
}

func TestFictitiousPlay_Mixing(t *testing.T) {
	m, err := matrix.New([][]float64{
		{1, -1},
		{-1, 1},
	})
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	p0, p1, err := FictitiousPlay(m, 5000, 0.1, rng)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, sum(p0), epsilon)
	assert.InDelta(t, 1.0, sum(p1), epsilon)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, p0, 0.1)
	assert.InDeltaSlice(t, []float64{0.5, 0.5}, p1, 0.1)

	_, _, err = FictitiousPlay(m, 0, 0, rng)
	require.ErrorIs(t, err, ErrInvalidRounds)
}

func TestFictitiousPlay_NoColumns(t *testing.T) {
	m, err := matrix.New([][]float64{{1}, {2}})
	require.NoError(t, err)
	require.NoError(t, m.RemoveColumn(0))

	rng := rand.New(rand.NewSource(123))
	_, _, err = FictitiousPlay(m, 10, 0, rng)
	require.ErrorIs(t, err, matrix.ErrEmptyMatrix)
}
