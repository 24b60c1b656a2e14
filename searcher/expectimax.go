package searcher

import (
	"math"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/utils"
)

// Expectimax treats every ghost as choosing uniformly at random among its legal actions.
type Expectimax struct {
	search
}

func NewExpectimax(options ...Option) *Expectimax {
	return &Expectimax{search: newSearch(options...)}
}

func (e *Expectimax) Search(state game.State) (Result, metrics.SearchMetric) {
	e.metrics.Start(string(ExpectimaxStrategy), e.depth)
	result := e.root(state, e.value)
	return result, e.metrics.Complete()
}

func (e *Expectimax) value(state game.State, agent, depth int) float64 {
	e.metrics.AddNode()

	if e.isCutoff(state, depth) {
		return e.leaf(state)
	}
	actions := state.LegalActions(agent)
	if len(actions) == 0 {
		return e.leaf(state)
	}

	nextAgent, nextDepth := next(agent, depth, state.NumAgents())
	if agent == 0 {
		best := math.Inf(-1)
		for _, action := range actions {
			best = max(best, e.value(state.Successor(agent, action), nextAgent, nextDepth))
		}
		return best
	}

	// Chance node: every action is an equally likely outcome, equal values included
	outcomes := make([]float64, 0, len(actions))
	for _, action := range actions {
		outcomes = append(outcomes, e.value(state.Successor(agent, action), nextAgent, nextDepth))
	}
	return utils.Mean(outcomes)
}
