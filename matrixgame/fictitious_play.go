package matrixgame

import (
	"math/rand"

	"github.com/golang/glog"
	"github.com/pkg/errors"

	"github.com/timpalpant/zerosum/matrix"
)

// FictitiousPlay runs nIter rounds of simultaneous fictitious play, in
// which both players best-respond to the opponent's empirical play counts
// in every round. With probability mixingLambda a player instead picks a
// strategy uniformly at random. It returns the play frequencies of each
// player. Unlike Game.Solve it does not look for saddle points or remove
// dominated strategies.
func FictitiousPlay(payoffs *matrix.Matrix, nIter int, mixingLambda float64, rng *rand.Rand) ([]float64, []float64, error) {
	if nIter < 1 {
		return nil, nil, errors.Wrapf(ErrInvalidRounds, "got %d", nIter)
	}

	nCols, err := payoffs.Cols()
	if err != nil {
		return nil, nil, err
	} else if nCols == 0 {
		return nil, nil, errors.Wrap(matrix.ErrEmptyMatrix, "no columns")
	}

	m := payoffs.Slices()
	p0PlayCounts := make([]int, len(m))
	p1PlayCounts := make([]int, nCols)
	logEvery := max(nIter/10, 1)
	for i := 1; i <= nIter; i++ {
		var p0Selected int
		if rng.Float64() < mixingLambda {
			p0Selected = rng.Intn(len(p0PlayCounts))
		} else {
			p0Selected = getP0BestResponse(m, p1PlayCounts)
		}

		var p1Selected int
		if rng.Float64() < mixingLambda {
			p1Selected = rng.Intn(len(p1PlayCounts))
		} else {
			p1Selected = getP1BestResponse(m, p0PlayCounts)
		}

		p0PlayCounts[p0Selected]++
		p1PlayCounts[p1Selected]++

		if i%logEvery == 0 {
			glog.V(2).Infof("After %d iterations, player 0 weights: %v", i, normalize(p0PlayCounts))
			glog.V(2).Infof("After %d iterations, player 1 weights: %v", i, normalize(p1PlayCounts))
		}
	}

	iterationsRun.Add(int64(nIter))
	return normalize(p0PlayCounts), normalize(p1PlayCounts), nil
}

func getP0BestResponse(payoffs [][]float64, p1PlayCounts []int) int {
	utilities := make([]float64, len(payoffs))
	for j, c := range p1PlayCounts {
		for i := range utilities {
			utilities[i] += float64(c) * payoffs[i][j]
		}
	}

	_, br := argMax(utilities)
	return br
}

func getP1BestResponse(payoffs [][]float64, p0PlayCounts []int) int {
	utilities := make([]float64, len(payoffs[0]))
	for i, c := range p0PlayCounts {
		for j := range utilities {
			utilities[j] -= float64(c) * payoffs[i][j]
		}
	}

	_, br := argMax(utilities)
	return br
}

func normalize(counts []int) []float64 {
	total := 0
	for _, v := range counts {
		total += v
	}

	result := make([]float64, len(counts))
	for i, v := range counts {
		result[i] = float64(v) / float64(total)
	}

	return result
}
