package searcher

import (
	"math"
	"pacman/experiments/metrics"
	"pacman/game"
)

// AlphaBeta returns the same action and value as Minimax while skipping siblings that
// cannot change the decision.
type AlphaBeta struct {
	search
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	return &AlphaBeta{search: newSearch(options...)}
}

func (ab *AlphaBeta) Search(state game.State) (Result, metrics.SearchMetric) {
	ab.metrics.Start(string(AlphaBetaStrategy), ab.depth)

	// The root is a max node with beta at +inf: it never cuts, but raises alpha for later children
	alpha := math.Inf(-1)
	result := ab.root(state, func(child game.State, agent, depth int) float64 {
		v := ab.value(child, agent, depth, alpha, math.Inf(1))
		alpha = max(alpha, v)
		return v
	})
	return result, ab.metrics.Complete()
}

// value fails soft: a result below alpha or above beta is a bound, anything in between is exact.
func (ab *AlphaBeta) value(state game.State, agent, depth int, alpha, beta float64) float64 {
	ab.metrics.AddNode()

	if ab.isCutoff(state, depth) {
		return ab.leaf(state)
	}
	actions := state.LegalActions(agent)
	if len(actions) == 0 {
		return ab.leaf(state)
	}

	nextAgent, nextDepth := next(agent, depth, state.NumAgents())
	if agent == 0 {
		best := math.Inf(-1)
		for _, action := range actions {
			best = max(best, ab.value(state.Successor(agent, action), nextAgent, nextDepth, alpha, beta))
			if best > beta { // beta cut-off
				ab.metrics.AddPrune()
				return best
			}
			alpha = max(alpha, best)
		}
		return best
	}

	best := math.Inf(1)
	for _, action := range actions {
		best = min(best, ab.value(state.Successor(agent, action), nextAgent, nextDepth, alpha, beta))
		if best < alpha { // alpha cut-off
			ab.metrics.AddPrune()
			return best
		}
		beta = min(beta, best)
	}
	return best
}
