package matrixgame

import (
	"fmt"
	"strings"
)

// Result holds the optimal (or approximately optimal) mixed strategy of
// each player and the value of the game.
type Result struct {
	p     []float64
	q     []float64
	value float64
	exact bool
}

func newSaddlePointResult(sp SaddlePoint, nRows, nCols int) *Result {
	p := make([]float64, nRows)
	p[sp.Row] = 1
	q := make([]float64, nCols)
	q[sp.Column] = 1
	return &Result{p: p, q: q, value: sp.Value, exact: true}
}

// P returns player 0's probability of playing each row.
func (r *Result) P() []float64 {
	return append([]float64(nil), r.p...)
}

// Q returns player 1's probability of playing each column.
func (r *Result) Q() []float64 {
	return append([]float64(nil), r.q...)
}

// Value returns the value of the game to player 0.
func (r *Result) Value() float64 { return r.value }

// Exact reports whether the game had a saddle point, in which case the
// strategies are pure and the value is exact.
func (r *Result) Exact() bool { return r.exact }

// Format renders the result as
//
//	p0=..; p1=..;
//	q0=..; q1=..;
//	value
//
// with numbers printed to the given number of decimal places.
func (r *Result) Format(precision int) string {
	var sb strings.Builder
	for i, v := range r.p {
		fmt.Fprintf(&sb, "p%d=%.*f; ", i, precision, v)
	}

	sb.WriteByte('\n')
	for j, v := range r.q {
		fmt.Fprintf(&sb, "q%d=%.*f; ", j, precision, v)
	}

	fmt.Fprintf(&sb, "\n%.*f", precision, r.value)
	return sb.String()
}

// String implements fmt.Stringer.
func (r *Result) String() string {
	return r.Format(2)
}
