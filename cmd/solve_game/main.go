// Solve two-player zero-sum matrix games read from an HCL game file, or a
// randomly generated game, and print each player's strategy and the value.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/golang/glog"

	"github.com/timpalpant/zerosum/gamefile"
	"github.com/timpalpant/zerosum/matrix"
	"github.com/timpalpant/zerosum/matrixgame"
)

const (
	brownRobinson = "brown_robinson"
	simultaneous  = "simultaneous"
	vanillaCFR    = "cfr"
)

type RunParams struct {
	GameFile       string
	Rounds         int
	Precision      int
	Method         string
	MixingLambda   float64
	Parallel       int
	Seed           int64
	RandomRows     int
	RandomCols     int
	ShowIterations bool
	DebugAddr      string
}

type namedGame struct {
	name   string
	rounds int
	m      *matrix.Matrix
}

func main() {
	var params RunParams
	flag.StringVar(&params.GameFile, "game_file", "", "HCL file with game definitions")
	flag.IntVar(&params.Rounds, "rounds", 0,
		"Rounds of fictitious play (overrides rounds set in the game file)")
	flag.IntVar(&params.Precision, "precision", 2, "Decimal places to print")
	flag.StringVar(&params.Method, "method", brownRobinson,
		"Solution method: brown_robinson, simultaneous or cfr")
	flag.Float64Var(&params.MixingLambda, "mixing_lambda", 0,
		"Probability of a uniform random move (simultaneous only)")
	flag.IntVar(&params.Parallel, "parallel", 4, "Number of games to solve in parallel")
	flag.Int64Var(&params.Seed, "seed", 123, "Random seed")
	flag.IntVar(&params.RandomRows, "random_rows", 3,
		"Rows of the random game to solve if no game file is given")
	flag.IntVar(&params.RandomCols, "random_cols", 3,
		"Columns of the random game to solve if no game file is given")
	flag.BoolVar(&params.ShowIterations, "show_iterations", false,
		"Print every round of fictitious play")
	flag.StringVar(&params.DebugAddr, "debug_addr", "",
		"Address to serve pprof and expvar on (disabled if empty)")
	flag.Parse()
	defer glog.Flush()

	if params.DebugAddr != "" {
		go http.ListenAndServe(params.DebugAddr, nil)
	}

	rng := rand.New(rand.NewSource(params.Seed))
	games, err := loadGames(params, rng)
	if err != nil {
		glog.Exit(err)
	}

	switch params.Method {
	case brownRobinson:
		err = solveBrownRobinson(params, games)
	case simultaneous:
		err = solveSimultaneous(params, games, rng)
	case vanillaCFR:
		err = solveCFR(params, games)
	default:
		err = fmt.Errorf("unknown method: %q", params.Method)
	}

	if err != nil {
		glog.Exit(err)
	}
}

func loadGames(params RunParams, rng *rand.Rand) ([]namedGame, error) {
	if params.GameFile == "" {
		glog.Infof("Generating random %dx%d game", params.RandomRows, params.RandomCols)
		m, err := matrix.Random(rng, params.RandomRows, params.RandomCols)
		if err != nil {
			return nil, err
		}

		return []namedGame{{name: "random", rounds: roundsFor(params, gamefile.DefaultRounds), m: m}}, nil
	}

	f, err := gamefile.Load(params.GameFile)
	if err != nil {
		return nil, err
	}

	glog.Infof("Loaded %d games from %s", len(f.Games), params.GameFile)
	result := make([]namedGame, len(f.Games))
	for i, game := range f.Games {
		m, err := game.Matrix()
		if err != nil {
			return nil, err
		}

		result[i] = namedGame{name: game.Name, rounds: roundsFor(params, game.Rounds), m: m}
	}

	return result, nil
}

func roundsFor(params RunParams, fromFile int) int {
	if params.Rounds > 0 {
		return params.Rounds
	}

	return fromFile
}

func solveBrownRobinson(params RunParams, games []namedGame) error {
	if params.ShowIterations {
		for _, game := range games {
			if err := solveVerbose(params, game); err != nil {
				return err
			}
		}

		return nil
	}

	// Games in a file may ask for different numbers of rounds, so they
	// are batched by round count.
	byRounds := make(map[int][]int)
	var order []int
	for i, game := range games {
		if _, ok := byRounds[game.rounds]; !ok {
			order = append(order, game.rounds)
		}
		byRounds[game.rounds] = append(byRounds[game.rounds], i)
	}

	results := make([]*matrixgame.Result, len(games))
	for _, rounds := range order {
		idx := byRounds[rounds]
		batch := make([]*matrix.Matrix, len(idx))
		for k, i := range idx {
			batch[k] = games[i].m
		}

		solved, err := matrixgame.SolveAll(context.Background(), batch, rounds, params.Parallel)
		if err != nil {
			return err
		}

		for k, i := range idx {
			results[i] = solved[k]
		}
	}

	for i, game := range games {
		printResult(game, results[i], params.Precision)
	}

	return nil
}

func solveVerbose(params RunParams, game namedGame) error {
	g, err := matrixgame.NewGame(game.m)
	if err != nil {
		return err
	}

	result, err := g.Solve(game.rounds)
	if err != nil {
		return err
	}

	fmt.Printf("== %s\n%s", game.name, game.m.Format(params.Precision))
	if !result.Exact() {
		fmt.Printf("Removed rows %v, columns %v, shift %v\n",
			g.RemovedRows(), g.RemovedColumns(), g.Shift())
		fmt.Print(g.Reduced().Format(params.Precision))
		for k := 0; k < g.NumIterations(); k++ {
			it, err := g.Iteration(k)
			if err != nil {
				return err
			}

			fmt.Printf("%d: %s\n", it.Round(), it.Format(params.Precision))
		}
	}

	fmt.Println(result.Format(params.Precision))
	return nil
}

func solveSimultaneous(params RunParams, games []namedGame, rng *rand.Rand) error {
	for _, game := range games {
		p, q, err := matrixgame.FictitiousPlay(game.m, game.rounds, params.MixingLambda, rng)
		if err != nil {
			return err
		}

		fmt.Printf("== %s (%d rounds, simultaneous)\n", game.name, game.rounds)
		fmt.Printf("p = %.*f\nq = %.*f\n", params.Precision, p, params.Precision, q)
	}

	return nil
}

func solveCFR(params RunParams, games []namedGame) error {
	for _, game := range games {
		result, err := matrixgame.SolveCFR(game.m, game.rounds)
		if err != nil {
			return err
		}

		fmt.Printf("== %s (%d iterations, cfr)\n%s\n", game.name, game.rounds,
			result.Format(params.Precision))
	}

	return nil
}

func printResult(game namedGame, result *matrixgame.Result, precision int) {
	kind := "approximate"
	if result.Exact() {
		kind = "saddle point"
	}

	fmt.Fprintf(os.Stdout, "== %s (%d rounds, %s)\n%s\n", game.name, game.rounds, kind,
		result.Format(precision))
}
