// Package matrixgame solves finite two-player zero-sum games given by
// their payoff matrix.
//
// A game with a saddle point is solved exactly in pure strategies.
// Otherwise strictly dominated rows and columns are removed and the
// remaining game is solved approximately with Brown-Robinson fictitious
// play. Entry (i, j) of the matrix is what player 0 (the row player)
// wins and player 1 (the column player) loses when they play i and j.
package matrixgame

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/zerosum/matrix"
)

// Game is a zero-sum game over a fixed payoff matrix. Solve may be called
// more than once; each call starts over from the original matrix.
type Game struct {
	original *matrix.Matrix
	nRows    int
	nCols    int

	// State of the most recent call to Solve.
	reduced        *matrix.Matrix
	removedRows    []int
	removedColumns []int
	shift          float64
	iterations     []*Iteration
}

// NewGame creates a game over a copy of m.
func NewGame(m *matrix.Matrix) (*Game, error) {
	nCols, err := m.Cols()
	if err != nil {
		return nil, err
	} else if nCols == 0 {
		return nil, errors.Wrap(matrix.ErrEmptyMatrix, "no columns")
	}

	return &Game{
		original: m.Clone(),
		nRows:    m.Rows(),
		nCols:    nCols,
	}, nil
}

// LowerBound returns the maximin row of the payoff matrix and its value:
// the most player 0 can guarantee with a pure strategy.
func (g *Game) LowerBound() Bound {
	return lowerBound(g.original.Slices())
}

// UpperBound returns the minimax column of the payoff matrix and its value:
// the least player 1 can concede with a pure strategy.
func (g *Game) UpperBound() Bound {
	return upperBound(g.original.Slices())
}

// SaddlePoint returns the saddle point of the payoff matrix, if it has one.
func (g *Game) SaddlePoint() (SaddlePoint, bool) {
	return findSaddlePoint(g.original.Slices())
}

// Solve returns the solution of the game. If the game has a saddle point
// the result is exact. Otherwise it is the empirical play frequencies and
// value estimate after nRounds rounds of fictitious play on the game
// with dominated strategies removed.
func (g *Game) Solve(nRounds int) (*Result, error) {
	if nRounds < 1 {
		return nil, errors.Wrapf(ErrInvalidRounds, "got %d", nRounds)
	}

	g.reset()
	gamesSolved.Add(1)
	if sp, ok := g.SaddlePoint(); ok {
		glog.V(1).Infof("Found saddle point at (%d, %d) with value %v",
			sp.Row, sp.Column, sp.Value)
		exactGamesSolved.Add(1)
		g.reduced = g.original.Clone()
		return newSaddlePointResult(sp, g.nRows, g.nCols), nil
	}

	approximateGamesSolved.Add(1)
	working := g.original.Clone()
	red, err := newReduction(working)
	if err != nil {
		return nil, err
	}

	if err := red.run(min(g.nRows, g.nCols) - 1); err != nil {
		return nil, err
	}

	g.removedRows = red.removedRows()
	g.removedColumns = red.removedColumns()
	glog.V(1).Infof("Removed dominated rows %v and columns %v",
		g.removedRows, g.removedColumns)

	// Fictitious play is run on a non-negative matrix. The shift is
	// subtracted from the final value estimate.
	if minValue := working.Min(); minValue < 0 {
		g.shift = -minValue
		working.AddConst(g.shift)
	}

	g.reduced = working
	payoffs := working.Slices()
	g.iterations = playRounds(payoffs, nRounds)

	p := scatter(rowFrequencies(g.iterations, len(payoffs)), red.rowOrigin, g.nRows)
	q := scatter(columnFrequencies(g.iterations, len(payoffs[0])), red.colOrigin, g.nCols)
	value := g.iterations[nRounds-1].Value() - g.shift
	glog.V(1).Infof("Value after %d rounds: %v", nRounds, value)
	return &Result{p: p, q: q, value: value}, nil
}

func (g *Game) reset() {
	g.reduced = nil
	g.removedRows = nil
	g.removedColumns = nil
	g.shift = 0
	g.iterations = nil
}

// playRounds runs nRounds rounds of fictitious play, starting player 0 on
// the maximin row.
func playRounds(payoffs [][]float64, nRounds int) []*Iteration {
	result := make([]*Iteration, nRounds)
	result[0] = firstIteration(payoffs, lowerBound(payoffs).Index)
	logEvery := max(nRounds/10, 1)
	for k := 1; k < nRounds; k++ {
		result[k] = result[k-1].Next()
		if (k+1)%logEvery == 0 {
			glog.V(2).Infof("After %d rounds, value estimate: %v", k+1, result[k].Value())
		}
	}

	iterationsRun.Add(int64(nRounds))
	return result
}

func rowFrequencies(iterations []*Iteration, nRows int) []float64 {
	counts := make([]int, nRows)
	for _, it := range iterations {
		counts[it.RowStrategy()]++
	}

	return normalize(counts)
}

func columnFrequencies(iterations []*Iteration, nCols int) []float64 {
	counts := make([]int, nCols)
	for _, it := range iterations {
		counts[it.ColumnStrategy()]++
	}

	return normalize(counts)
}

// scatter expands reduced into a vector of length n, placing reduced[i]
// at origin[i] and 0 everywhere else.
func scatter(reduced []float64, origin []int, n int) []float64 {
	result := make([]float64, n)
	for i, v := range reduced {
		result[origin[i]] = v
	}

	return result
}

// RemovedRows returns the original indices of the rows removed by the last
// call to Solve, in ascending order.
func (g *Game) RemovedRows() []int {
	return append([]int(nil), g.removedRows...)
}

// RemovedColumns returns the original indices of the columns removed by
// the last call to Solve, in ascending order.
func (g *Game) RemovedColumns() []int {
	return append([]int(nil), g.removedColumns...)
}

// NumIterations returns the number of rounds of fictitious play run by the
// last call to Solve. It is 0 if the game had a saddle point.
func (g *Game) NumIterations() int {
	return len(g.iterations)
}

// Iteration returns round k+1 of the last call to Solve.
func (g *Game) Iteration(k int) (*Iteration, error) {
	if k < 0 || k >= len(g.iterations) {
		return nil, errors.Wrapf(matrix.ErrOutOfRange,
			"iteration %d of %d", k, len(g.iterations))
	}

	return g.iterations[k], nil
}

// Shift returns the constant that was added to the reduced matrix to make
// it non-negative during the last call to Solve.
func (g *Game) Shift() float64 {
	return g.shift
}

// Matrix returns a copy of the original payoff matrix.
func (g *Game) Matrix() *matrix.Matrix {
	return g.original.Clone()
}

// Reduced returns a copy of the matrix fictitious play was run on during
// the last call to Solve, or nil if Solve has not been called.
func (g *Game) Reduced() *matrix.Matrix {
	if g.reduced == nil {
		return nil
	}

	return g.reduced.Clone()
}
