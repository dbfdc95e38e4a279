// Package matrix implements the dense, shrinkable payoff matrix that the
// game solver reduces by deleting dominated rows and columns.
package matrix

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Matrix is a mutable R x C grid of float64 values. Every row always has
// the same number of elements, including after rows or columns are removed.
type Matrix struct {
	elements [][]float64
	nCols    int
}

// New creates a Matrix from a rectangular grid. The input is copied.
func New(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 {
		return nil, errors.Wrap(ErrShape, "no rows")
	}

	nCols := len(rows[0])
	if nCols == 0 {
		return nil, errors.Wrap(ErrShape, "no columns")
	}

	elements := make([][]float64, len(rows))
	for i, row := range rows {
		if len(row) != nCols {
			return nil, errors.Wrapf(ErrShape,
				"row %d has %d elements, expected %d", i, len(row), nCols)
		}

		elements[i] = append([]float64(nil), row...)
	}

	return &Matrix{elements: elements, nCols: nCols}, nil
}

// NewFromFlat creates a Matrix with nRows rows from values laid out in
// row-major order. len(values) must be an exact multiple of nRows.
func NewFromFlat(values []float64, nRows int) (*Matrix, error) {
	if nRows <= 0 {
		return nil, errors.Wrapf(ErrShape, "row count %d", nRows)
	}

	if len(values) == 0 || len(values)%nRows != 0 {
		return nil, errors.Wrapf(ErrShape,
			"%d values cannot be split into %d rows", len(values), nRows)
	}

	nCols := len(values) / nRows
	elements := make([][]float64, nRows)
	for i := range elements {
		elements[i] = append([]float64(nil), values[i*nCols:(i+1)*nCols]...)
	}

	return &Matrix{elements: elements, nCols: nCols}, nil
}

// At returns the element at row i, column j.
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= len(m.elements) || j < 0 || j >= m.nCols {
		return 0, errors.Wrapf(ErrOutOfRange,
			"(%d, %d) in %dx%d matrix", i, j, len(m.elements), m.nCols)
	}

	return m.elements[i][j], nil
}

// Rows returns the current number of rows.
func (m *Matrix) Rows() int {
	return len(m.elements)
}

// Cols returns the current number of columns. It fails with ErrEmptyMatrix
// once every row has been removed.
func (m *Matrix) Cols() (int, error) {
	if len(m.elements) == 0 {
		return 0, ErrEmptyMatrix
	}

	return m.nCols, nil
}

// AddConst adds v to every element in place.
func (m *Matrix) AddConst(v float64) {
	for _, row := range m.elements {
		for j := range row {
			row[j] += v
		}
	}
}

// RemoveRow deletes row i. Rows after i move up by one.
func (m *Matrix) RemoveRow(i int) error {
	if i < 0 || i >= len(m.elements) {
		return errors.Wrapf(ErrOutOfRange, "row %d of %d", i, len(m.elements))
	}

	m.elements = append(m.elements[:i], m.elements[i+1:]...)
	return nil
}

// RemoveColumn deletes column j from every row. Columns after j move left
// by one.
func (m *Matrix) RemoveColumn(j int) error {
	if j < 0 || j >= m.nCols {
		return errors.Wrapf(ErrOutOfRange, "column %d of %d", j, m.nCols)
	}

	for i, row := range m.elements {
		m.elements[i] = append(row[:j], row[j+1:]...)
	}

	m.nCols--
	return nil
}

// Min returns the smallest element. It returns 0 for a matrix with no
// elements.
func (m *Matrix) Min() float64 {
	var result float64
	first := true
	for _, row := range m.elements {
		for _, v := range row {
			if first || v < result {
				result = v
				first = false
			}
		}
	}

	return result
}

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	return &Matrix{elements: m.Slices(), nCols: m.nCols}
}

// Slices returns a deep copy of the elements as a row-major grid.
func (m *Matrix) Slices() [][]float64 {
	result := make([][]float64, len(m.elements))
	for i, row := range m.elements {
		result[i] = append([]float64(nil), row...)
	}

	return result
}

// Format renders the matrix one row per line, with each element printed
// using the given number of decimal places.
func (m *Matrix) Format(precision int) string {
	var sb strings.Builder
	for _, row := range m.elements {
		for _, v := range row {
			fmt.Fprintf(&sb, "%.*f ", precision, v)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String implements fmt.Stringer.
func (m *Matrix) String() string {
	return m.Format(1)
}
