package matrixgame

// Bound is an extremal value together with the row or column index
// where it was found.
type Bound struct {
	Index int
	Value float64
}

// SaddlePoint is an entry that is both the minimum of its row and the
// maximum of its column.
type SaddlePoint struct {
	Row    int
	Column int
	Value  float64
}

// lowerBound returns the maximin row: the row whose minimum element is
// largest. Ties go to the lowest row index.
func lowerBound(payoffs [][]float64) Bound {
	rowMins := make([]float64, len(payoffs))
	for i, row := range payoffs {
		rowMins[i], _ = argMin(row)
	}

	value, idx := argMax(rowMins)
	return Bound{Index: idx, Value: value}
}

// upperBound returns the minimax column: the column whose maximum element
// is smallest. Ties go to the lowest column index.
func upperBound(payoffs [][]float64) Bound {
	colMaxs := make([]float64, len(payoffs[0]))
	for j := range colMaxs {
		colMaxs[j], _ = argMax(column(payoffs, j))
	}

	value, idx := argMin(colMaxs)
	return Bound{Index: idx, Value: value}
}

func findSaddlePoint(payoffs [][]float64) (SaddlePoint, bool) {
	lower, upper := lowerBound(payoffs), upperBound(payoffs)
	if lower.Value != upper.Value {
		return SaddlePoint{}, false
	}

	return SaddlePoint{Row: lower.Index, Column: upper.Index, Value: lower.Value}, true
}

func column(payoffs [][]float64, j int) []float64 {
	result := make([]float64, len(payoffs))
	for i, row := range payoffs {
		result[i] = row[j]
	}

	return result
}

// argMax returns the largest value in vs and its index. A later element
// only wins on strict improvement, so ties go to the lowest index.
func argMax(vs []float64) (float64, int) {
	best, bestIdx := vs[0], 0
	for i := 1; i < len(vs); i++ {
		if vs[i] > best {
			best = vs[i]
			bestIdx = i
		}
	}

	return best, bestIdx
}

// argMin is argMax with the comparison reversed.
func argMin(vs []float64) (float64, int) {
	best, bestIdx := vs[0], 0
	for i := 1; i < len(vs); i++ {
		if vs[i] < best {
			best = vs[i]
			bestIdx = i
		}
	}

	return best, bestIdx
}
