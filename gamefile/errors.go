package gamefile

import "errors"

var (
	// ErrNoGames is returned for a file without any game blocks.
	ErrNoGames = errors.New("gamefile: no games defined")
	// ErrDuplicateName is returned when two game blocks share a label.
	ErrDuplicateName = errors.New("gamefile: duplicate game name")
	// ErrNoPayoffs is returned for a game that sets neither payoffs nor
	// values.
	ErrNoPayoffs = errors.New("gamefile: game has neither payoffs nor values")
	// ErrAmbiguousPayoffs is returned for a game that sets both payoffs
	// and values.
	ErrAmbiguousPayoffs = errors.New("gamefile: game has both payoffs and values")
	// ErrInvalidRounds is returned for a game with rounds set below one.
	ErrInvalidRounds = errors.New("gamefile: rounds must be positive")
)
