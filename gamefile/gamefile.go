// Package gamefile loads payoff matrices from HCL game definition files.
//
// A file holds one or more labelled game blocks. The payoffs are given
// either as a list of rows or as a flat row-major list with a row count:
//
//	game "matching_pennies" {
//	  rounds  = 1000
//	  payoffs = [[1, -1], [-1, 1]]
//	}
//
//	game "coordination" {
//	  values    = [3, 0, 0, 3]
//	  row_count = 2
//	}
package gamefile

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/pkg/errors"

	"github.com/timpalpant/zerosum/matrix"
)

// DefaultRounds is the number of fictitious play rounds used for games
// that do not set rounds.
const DefaultRounds = 1000

// File is the decoded contents of a game definition file.
type File struct {
	Games []Game `hcl:"game,block"`
}

// Game is a single game block.
type Game struct {
	Name     string      `hcl:"name,label"`
	Rounds   int         `hcl:"rounds,optional"`
	Payoffs  [][]float64 `hcl:"payoffs,optional"`
	Values   []float64   `hcl:"values,optional"`
	RowCount int         `hcl:"row_count,optional"`
}

// Load reads and validates the game definition file at filename.
func Load(filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to parse %s", filename)
	}

	return decode(file)
}

// Parse decodes and validates game definitions from src. filename is
// used only in diagnostics.
func Parse(src []byte, filename string) (*File, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrapf(diags, "failed to parse %s", filename)
	}

	return decode(file)
}

func decode(file *hcl.File) (*File, error) {
	var result File
	if diags := gohcl.DecodeBody(file.Body, nil, &result); diags.HasErrors() {
		return nil, errors.Wrap(diags, "failed to decode games")
	}

	if len(result.Games) == 0 {
		return nil, ErrNoGames
	}

	seen := make(map[string]bool, len(result.Games))
	for i := range result.Games {
		game := &result.Games[i]
		if seen[game.Name] {
			return nil, errors.Wrapf(ErrDuplicateName, "%q", game.Name)
		}
		seen[game.Name] = true

		if game.Rounds == 0 {
			game.Rounds = DefaultRounds
		} else if game.Rounds < 0 {
			return nil, errors.Wrapf(ErrInvalidRounds, "game %q has rounds = %d", game.Name, game.Rounds)
		}

		if _, err := game.Matrix(); err != nil {
			return nil, err
		}
	}

	return &result, nil
}

// Matrix builds the payoff matrix of the game.
func (g *Game) Matrix() (*matrix.Matrix, error) {
	hasPayoffs := len(g.Payoffs) > 0
	hasValues := len(g.Values) > 0 || g.RowCount != 0
	switch {
	case hasPayoffs && hasValues:
		return nil, errors.Wrapf(ErrAmbiguousPayoffs, "game %q", g.Name)
	case hasPayoffs:
		m, err := matrix.New(g.Payoffs)
		return m, errors.Wrapf(err, "game %q", g.Name)
	case hasValues:
		m, err := matrix.NewFromFlat(g.Values, g.RowCount)
		return m, errors.Wrapf(err, "game %q", g.Name)
	default:
		return nil, errors.Wrapf(ErrNoPayoffs, "game %q", g.Name)
	}
}

// Matrices builds the payoff matrix of every game in the file, in order.
func (f *File) Matrices() ([]*matrix.Matrix, error) {
	result := make([]*matrix.Matrix, len(f.Games))
	for i := range f.Games {
		m, err := f.Games[i].Matrix()
		if err != nil {
			return nil, err
		}

		result[i] = m
	}

	return result, nil
}
