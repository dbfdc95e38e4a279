package matrixgame

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/timpalpant/go-cfr"

	"github.com/timpalpant/zerosum/matrix"
)

// The two information sets of a matrix game. Player 1 does not see the
// row player 0 picked, so every column decision shares one key.
const (
	rowInfoSetKey    = "row"
	columnInfoSetKey = "column"
)

// matrixInfoSet implements cfr.InfoSet.
type matrixInfoSet struct {
	key string
}

// Key implements cfr.InfoSet.
func (is *matrixInfoSet) Key() string {
	return is.key
}

func (is *matrixInfoSet) MarshalBinary() ([]byte, error) {
	return []byte(is.key), nil
}

func (is *matrixInfoSet) UnmarshalBinary(buf []byte) error {
	is.key = string(buf)
	return nil
}

// cfrNode implements cfr.GameTreeNode for the extensive form of a matrix
// game: player 0 picks a row at the root, player 1 then picks a column
// without seeing the row, and each leaf pays out entry (row, column).
type cfrNode struct {
	payoffs [][]float64
	// row and col are -1 until the corresponding player has moved.
	row int
	col int

	children []cfrNode
	parent   *cfrNode
}

// Verify that we implement the interface.
var _ cfr.GameTreeNode = &cfrNode{}

func newCFRRoot(payoffs [][]float64) *cfrNode {
	return &cfrNode{payoffs: payoffs, row: -1, col: -1}
}

// Type implements cfr.GameTreeNode.
func (n *cfrNode) Type() cfr.NodeType {
	if n.col >= 0 {
		return cfr.TerminalNodeType
	}

	return cfr.PlayerNodeType
}

// Player implements cfr.GameTreeNode.
func (n *cfrNode) Player() int {
	if n.row < 0 {
		return 0
	}

	return 1
}

// InfoSet implements cfr.GameTreeNode.
func (n *cfrNode) InfoSet(player int) cfr.InfoSet {
	if player == 0 {
		return &matrixInfoSet{key: rowInfoSetKey}
	}

	return &matrixInfoSet{key: columnInfoSetKey}
}

// Utility implements cfr.GameTreeNode.
func (n *cfrNode) Utility(player int) float64 {
	if n.Type() != cfr.TerminalNodeType {
		panic("cannot get the utility of a non-terminal node")
	}

	u := n.payoffs[n.row][n.col]
	if player == 0 {
		return u
	}

	return -u
}

// NumChildren implements cfr.GameTreeNode.
func (n *cfrNode) NumChildren() int {
	switch {
	case n.row < 0:
		return len(n.payoffs)
	case n.col < 0:
		return len(n.payoffs[n.row])
	default:
		return 0
	}
}

// GetChild implements cfr.GameTreeNode.
func (n *cfrNode) GetChild(i int) cfr.GameTreeNode {
	if n.children == nil {
		n.buildChildren()
	}

	return &n.children[i]
}

func (n *cfrNode) buildChildren() {
	n.children = make([]cfrNode, n.NumChildren())
	for i := range n.children {
		child := cfrNode{payoffs: n.payoffs, row: n.row, col: n.col, parent: n}
		if n.row < 0 {
			child.row = i
		} else {
			child.col = i
		}

		n.children[i] = child
	}
}

// Parent implements cfr.GameTreeNode.
func (n *cfrNode) Parent() cfr.GameTreeNode {
	if n.parent == nil {
		return nil
	}

	return n.parent
}

// GetChildProbability implements cfr.GameTreeNode.
func (n *cfrNode) GetChildProbability(i int) float64 {
	panic("matrix games have no chance nodes")
}

// SampleChild implements cfr.GameTreeNode.
func (n *cfrNode) SampleChild() (cfr.GameTreeNode, float64) {
	panic("matrix games have no chance nodes")
}

// Close implements cfr.GameTreeNode.
func (n *cfrNode) Close() {
	cfrNodesVisited.Add(1)
	n.children = nil
}

func (n *cfrNode) String() string {
	return fmt.Sprintf("cfrNode{row: %d, col: %d}", n.row, n.col)
}

// SolveCFR approximates the solution of the game over payoffs with nIter
// iterations of vanilla counterfactual regret minimization. The returned
// strategies are each player's average strategy, and the value is the
// expected payoff when both play them. Like FictitiousPlay it works on
// the full matrix and never reports an exact result.
func SolveCFR(payoffs *matrix.Matrix, nIter int) (*Result, error) {
	if nIter < 1 {
		return nil, errors.Wrapf(ErrInvalidRounds, "got %d", nIter)
	}

	nCols, err := payoffs.Cols()
	if err != nil {
		return nil, err
	} else if nCols == 0 {
		return nil, errors.Wrap(matrix.ErrEmptyMatrix, "no columns")
	}

	m := payoffs.Slices()
	root := newCFRRoot(m)
	solver := cfr.NewVanilla()
	var expectedValue float64
	logEvery := max(nIter/10, 1)
	for i := 1; i <= nIter; i++ {
		expectedValue += float64(solver.Run(root))
		if i%logEvery == 0 {
			glog.V(2).Infof("After %d iterations, expected value: %.4f", i, expectedValue/float64(i))
		}
	}

	iterationsRun.Add(int64(nIter))
	p := averageStrategy(solver, root)
	q := averageStrategy(solver, root.GetChild(0))
	value := 0.0
	for i, row := range m {
		for j, v := range row {
			value += p[i] * v * q[j]
		}
	}

	return &Result{p: p, q: q, value: value}, nil
}

func averageStrategy(profile cfr.StrategyProfile, node cfr.GameTreeNode) []float64 {
	strat := profile.GetPolicy(node).GetAverageStrategy()
	result := make([]float64, len(strat))
	for i, v := range strat {
		result[i] = float64(v)
	}

	return result
}
