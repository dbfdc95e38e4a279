package matrixgame

import "errors"

// ErrInvalidRounds is returned when asked for fewer than one round or
// iteration.
var ErrInvalidRounds = errors.New("matrixgame: number of rounds must be positive")
