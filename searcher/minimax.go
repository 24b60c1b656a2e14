package searcher

import (
	"math"
	"pacman/experiments/metrics"
	"pacman/game"
)

// Minimax treats every ghost as an adversary minimizing pacman's evaluation.
type Minimax struct {
	search
}

func NewMinimax(options ...Option) *Minimax {
	return &Minimax{search: newSearch(options...)}
}

func (m *Minimax) Search(state game.State) (Result, metrics.SearchMetric) {
	m.metrics.Start(string(MinimaxStrategy), m.depth)
	result := m.root(state, m.value)
	return result, m.metrics.Complete()
}

func (m *Minimax) value(state game.State, agent, depth int) float64 {
	m.metrics.AddNode()

	if m.isCutoff(state, depth) {
		return m.leaf(state)
	}
	actions := state.LegalActions(agent)
	if len(actions) == 0 {
		return m.leaf(state)
	}

	nextAgent, nextDepth := next(agent, depth, state.NumAgents())
	if agent == 0 {
		best := math.Inf(-1)
		for _, action := range actions {
			best = max(best, m.value(state.Successor(agent, action), nextAgent, nextDepth))
		}
		return best
	}

	best := math.Inf(1)
	for _, action := range actions {
		best = min(best, m.value(state.Successor(agent, action), nextAgent, nextDepth))
	}
	return best
}
