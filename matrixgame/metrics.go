package matrixgame

import "expvar"

var (
	gamesSolved            = expvar.NewInt("games_solved")
	exactGamesSolved       = expvar.NewInt("games_solved/exact")
	approximateGamesSolved = expvar.NewInt("games_solved/approximate")
	rowsRemoved            = expvar.NewInt("rows_removed")
	columnsRemoved         = expvar.NewInt("columns_removed")
	iterationsRun          = expvar.NewInt("iterations_run")
	cfrNodesVisited        = expvar.NewInt("cfr_nodes_visited")
)
