package matrix

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Random returns a rows x cols matrix with elements drawn uniformly
// from [-10, 10).
func Random(rng *rand.Rand, rows, cols int) (*Matrix, error) {
	return RandomInRange(rng, rows, cols, -10, 10)
}

// RandomInRange returns a rows x cols matrix with elements drawn uniformly
// from [lo, hi).
func RandomInRange(rng *rand.Rand, rows, cols int, lo, hi float64) (*Matrix, error) {
	if hi <= lo {
		return nil, errors.Wrapf(ErrBadRange, "[%v, %v)", lo, hi)
	}

	if rows <= 0 || cols <= 0 {
		return nil, errors.Wrapf(ErrShape, "%dx%d", rows, cols)
	}

	values := make([]float64, rows*cols)
	for i := range values {
		values[i] = lo + rng.Float64()*(hi-lo)
	}

	return NewFromFlat(values, rows)
}
