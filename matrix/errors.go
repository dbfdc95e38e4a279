package matrix

import "errors"

var (
	// ErrShape is returned when a matrix cannot be built as a non-empty
	// rectangle from its input.
	ErrShape = errors.New("matrix: invalid shape")
	// ErrOutOfRange is returned for a row or column index outside the
	// current bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")
	// ErrEmptyMatrix is returned when the column count of a matrix with
	// no rows is requested.
	ErrEmptyMatrix = errors.New("matrix: no rows")
	// ErrBadRange is returned by RandomInRange when hi <= lo.
	ErrBadRange = errors.New("matrix: upper bound must be greater than lower bound")
)
