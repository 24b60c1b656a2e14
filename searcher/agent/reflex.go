package agent

import (
	"math"
	"pacman/experiments/metrics"
	"pacman/game"

	"golang.org/x/exp/rand"
)

type reflexAgent struct {
	evaluate game.EvaluateAction
	rand     *rand.Rand
}

// NewReflexAgent returns a pacman agent that looks a single move ahead and picks uniformly
// among the actions with the best evaluation.
func NewReflexAgent(evaluate game.EvaluateAction, r *rand.Rand) Agent {
	return &reflexAgent{evaluate: evaluate, rand: r}
}

func (a *reflexAgent) GetAction(state game.State) (game.Action, metrics.SearchMetric) {
	actions := state.LegalActions(0)
	metric := metrics.SearchMetric{Strategy: "reflex", Nodes: 1 + len(actions), Evaluations: len(actions)}
	if len(actions) == 0 {
		return game.Stop, metric
	}

	best := []game.Action{}
	bestScore := math.Inf(-1)
	for i, action := range actions {
		score := a.evaluate(state, action)
		switch {
		case i == 0 || score > bestScore:
			bestScore = score
			best = append(best[:0], action)
		case score == bestScore:
			best = append(best, action)
		}
	}
	return best[a.rand.Intn(len(best))], metric
}
