package matrixgame

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/timpalpant/zerosum/matrix"
)

// SolveAll solves each game independently with nRounds rounds, running at
// most parallelism solves at once (no limit if parallelism <= 0). Results
// are returned in the order of games. The first failure cancels the
// solves that have not started yet.
func SolveAll(ctx context.Context, games []*matrix.Matrix, nRounds, parallelism int) ([]*Result, error) {
	results := make([]*Result, len(games))
	g, ctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}

	for i, m := range games {
		i, m := i, m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			game, err := NewGame(m)
			if err != nil {
				return errors.Wrapf(err, "game %d", i)
			}

			result, err := game.Solve(nRounds)
			if err != nil {
				return errors.Wrapf(err, "game %d", i)
			}

			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
