package matrixgame

import (
	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/zerosum/matrix"
)

// reduction removes strictly dominated strategies from a working matrix
// while tracking where each surviving row and column came from.
type reduction struct {
	m *matrix.Matrix
	// rowOrigin[i] is the index in the original matrix of current row i.
	rowOrigin []int
	// colOrigin[j] is the index in the original matrix of current column j.
	colOrigin []int
	nRows     int
	nCols     int
}

func newReduction(m *matrix.Matrix) (*reduction, error) {
	nCols, err := m.Cols()
	if err != nil {
		return nil, err
	}

	return &reduction{
		m:         m,
		rowOrigin: identity(m.Rows()),
		colOrigin: identity(nCols),
		nRows:     m.Rows(),
		nCols:     nCols,
	}, nil
}

// run alternates row and column passes for at most maxRounds rounds,
// stopping early once a round removes nothing.
func (r *reduction) run(maxRounds int) error {
	for round := 0; round < maxRounds; round++ {
		nRowsRemoved, err := r.removeDominatedRows()
		if err != nil {
			return err
		}

		nColsRemoved, err := r.removeDominatedColumns()
		if err != nil {
			return err
		}

		glog.V(2).Infof("Domination round %d removed %d rows and %d columns",
			round+1, nRowsRemoved, nColsRemoved)
		if nRowsRemoved == 0 && nColsRemoved == 0 {
			break
		}
	}

	return nil
}

func (r *reduction) removeDominatedRows() (int, error) {
	dominated := dominatedRows(r.m.Slices())
	for k := len(dominated) - 1; k >= 0; k-- {
		i := dominated[k]
		if err := r.m.RemoveRow(i); err != nil {
			return 0, errors.Wrapf(err, "removing dominated row %d", r.rowOrigin[i])
		}

		r.rowOrigin = append(r.rowOrigin[:i], r.rowOrigin[i+1:]...)
	}

	rowsRemoved.Add(int64(len(dominated)))
	return len(dominated), nil
}

func (r *reduction) removeDominatedColumns() (int, error) {
	dominated := dominatedColumns(r.m.Slices())
	for k := len(dominated) - 1; k >= 0; k-- {
		j := dominated[k]
		if err := r.m.RemoveColumn(j); err != nil {
			return 0, errors.Wrapf(err, "removing dominated column %d", r.colOrigin[j])
		}

		r.colOrigin = append(r.colOrigin[:j], r.colOrigin[j+1:]...)
	}

	columnsRemoved.Add(int64(len(dominated)))
	return len(dominated), nil
}

// removedRows returns the original indices of every removed row, ascending.
func (r *reduction) removedRows() []int {
	return complement(r.rowOrigin, r.nRows)
}

// removedColumns returns the original indices of every removed column,
// ascending.
func (r *reduction) removedColumns() []int {
	return complement(r.colOrigin, r.nCols)
}

// dominatedRows returns, in ascending order, every row i for which some
// other row k is at least as large in every column and strictly larger
// in at least one.
func dominatedRows(payoffs [][]float64) []int {
	var result []int
	for i := range payoffs {
		for k := range payoffs {
			if k != i && dominates(payoffs[k], payoffs[i]) {
				result = append(result, i)
				break
			}
		}
	}

	return result
}

// dominatedColumns returns, in ascending order, every column j for which
// some other column k is at most as large in every row and strictly
// smaller in at least one. Player 1 minimizes, so a smaller column is
// the better one.
func dominatedColumns(payoffs [][]float64) []int {
	nCols := len(payoffs[0])
	columns := make([][]float64, nCols)
	for j := range columns {
		columns[j] = column(payoffs, j)
	}

	var result []int
	for j := range columns {
		for k := range columns {
			if k != j && dominates(columns[j], columns[k]) {
				result = append(result, j)
				break
			}
		}
	}

	return result
}

// dominates reports whether a >= b element-wise with a > b somewhere.
func dominates(a, b []float64) bool {
	strict := false
	for i := range a {
		if a[i] < b[i] {
			return false
		} else if a[i] > b[i] {
			strict = true
		}
	}

	return strict
}

func identity(n int) []int {
	result := make([]int, n)
	for i := range result {
		result[i] = i
	}

	return result
}

// complement returns the integers in [0, n) that are not in kept.
// kept must be ascending.
func complement(kept []int, n int) []int {
	result := make([]int, 0, n-len(kept))
	k := 0
	for i := 0; i < n; i++ {
		if k < len(kept) && kept[k] == i {
			k++
			continue
		}

		result = append(result, i)
	}

	return result
}
