package matrixgame

import (
	"fmt"
	"strings"
)

// Iteration is an immutable snapshot of one round of Brown-Robinson
// fictitious play. Player 0 plays a row chosen from the previous round,
// player 1 best-responds to player 0's cumulative gains, and player 0's
// next row is the best response to player 1's cumulative losses.
type Iteration struct {
	round int
	// payoffs is the reduced matrix. It is shared by every Iteration of a
	// chain and never written to.
	payoffs [][]float64

	row int
	col int
	// gains[j] is player 0's total payoff over rounds 1..round had
	// player 1 always played column j.
	gains []float64
	// losses[i] is player 1's total loss over rounds 1..round had
	// player 0 always played row i.
	losses []float64

	nextRow int
	value   float64
}

// newIteration plays round number round with player 0 on row. gains and
// losses hold the totals after the previous round and are taken over
// by the new Iteration.
func newIteration(round int, payoffs [][]float64, row int, gains, losses []float64) *Iteration {
	for j, v := range payoffs[row] {
		gains[j] += v
	}

	minGain, col := argMin(gains)
	for i := range losses {
		losses[i] += payoffs[i][col]
	}

	maxLoss, nextRow := argMax(losses)
	return &Iteration{
		round:   round,
		payoffs: payoffs,
		row:     row,
		col:     col,
		gains:   gains,
		losses:  losses,
		nextRow: nextRow,
		value:   (maxLoss + minGain) / 2 / float64(round),
	}
}

// firstIteration seeds the chain at round 1 from all-zero totals.
func firstIteration(payoffs [][]float64, row int) *Iteration {
	gains := make([]float64, len(payoffs[0]))
	losses := make([]float64, len(payoffs))
	return newIteration(1, payoffs, row, gains, losses)
}

// Next plays the following round. The receiver is not modified.
func (it *Iteration) Next() *Iteration {
	return newIteration(it.round+1, it.payoffs, it.nextRow, it.Gains(), it.Losses())
}

// Round returns the 1-based round number.
func (it *Iteration) Round() int { return it.round }

// RowStrategy returns the row player 0 played this round.
func (it *Iteration) RowStrategy() int { return it.row }

// ColumnStrategy returns the column player 1 played this round.
func (it *Iteration) ColumnStrategy() int { return it.col }

// NextRow returns the row player 0 will play next round.
func (it *Iteration) NextRow() int { return it.nextRow }

// Value returns the running estimate of the game value after this round.
func (it *Iteration) Value() float64 { return it.value }

// Gains returns a copy of player 0's cumulative gains, one per column.
func (it *Iteration) Gains() []float64 {
	return append([]float64(nil), it.gains...)
}

// Losses returns a copy of player 1's cumulative losses, one per row.
func (it *Iteration) Losses() []float64 {
	return append([]float64(nil), it.losses...)
}

// Format renders the round as
//
//	A<row> <gains...> B<col> <losses...> <value>
//
// with numbers printed to the given number of decimal places.
func (it *Iteration) Format(precision int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "A%d ", it.row)
	for _, v := range it.gains {
		fmt.Fprintf(&sb, "%.*f ", precision, v)
	}

	fmt.Fprintf(&sb, "B%d ", it.col)
	for _, v := range it.losses {
		fmt.Fprintf(&sb, "%.*f ", precision, v)
	}

	fmt.Fprintf(&sb, "%.*f", precision, it.value)
	return sb.String()
}

// String implements fmt.Stringer.
func (it *Iteration) String() string {
	return it.Format(2)
}
