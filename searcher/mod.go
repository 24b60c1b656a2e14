package searcher

import (
	"pacman/experiments/metrics"
	"pacman/game"

	"github.com/pkg/errors"
)

type Strategy string

const (
	MinimaxStrategy    Strategy = "minimax"
	AlphaBetaStrategy  Strategy = "alphabeta"
	ExpectimaxStrategy Strategy = "expectimax"
)

var ErrNotImplemented = errors.New("search strategy not implemented")

// Result is the action chosen for pacman at the root and its backed-up value.
type Result struct {
	Action game.Action
	Value  float64
}

type Searcher interface {
	// Search returns pacman's best action from state, or game.Stop if pacman cannot move
	Search(state game.State) (Result, metrics.SearchMetric)
}

// New returns the searcher implementing strategy.
func New(strategy Strategy, options ...Option) (Searcher, error) {
	switch strategy {
	case MinimaxStrategy:
		return NewMinimax(options...), nil
	case AlphaBetaStrategy:
		return NewAlphaBeta(options...), nil
	case ExpectimaxStrategy:
		return NewExpectimax(options...), nil
	default:
		return nil, errors.Wrapf(ErrNotImplemented, "%q", strategy)
	}
}
