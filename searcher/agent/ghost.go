package agent

import (
	"pacman/experiments/metrics"
	"pacman/game"

	"golang.org/x/exp/rand"
)

const (
	DefaultAttack = 0.8 // Probability mass a directional ghost puts on chasing
	DefaultFlee   = 0.8 // Probability mass a scared directional ghost puts on fleeing
)

type weighted struct {
	action game.Action
	prob   float64
}

type randomGhost struct {
	index int
	rand  *rand.Rand
}

// NewRandomGhost returns a ghost that picks uniformly among its legal actions.
func NewRandomGhost(index int, r *rand.Rand) Agent {
	return &randomGhost{index: index, rand: r}
}

func (g *randomGhost) GetAction(state game.State) (game.Action, metrics.SearchMetric) {
	actions := state.LegalActions(g.index)
	if len(actions) == 0 {
		return game.Stop, metrics.SearchMetric{}
	}
	return actions[g.rand.Intn(len(actions))], metrics.SearchMetric{}
}

type directionalGhost struct {
	index  int
	rand   *rand.Rand
	attack float64
	flee   float64
}

// NewDirectionalGhost returns a ghost that moves toward pacman with probability attack, or
// away from pacman with probability flee while scared, and otherwise moves at random.
func NewDirectionalGhost(index int, r *rand.Rand, attack, flee float64) Agent {
	return &directionalGhost{index: index, rand: r, attack: attack, flee: flee}
}

func (g *directionalGhost) GetAction(state game.State) (game.Action, metrics.SearchMetric) {
	actions := state.LegalActions(g.index)
	if len(actions) == 0 {
		return game.Stop, metrics.SearchMetric{}
	}
	return sample(g.rand, g.distribution(state, actions)), metrics.SearchMetric{}
}

func (g *directionalGhost) distribution(state game.State, actions []game.Action) []weighted {
	board, ok := state.(game.Board)
	if !ok {
		panic("unexpected state type")
	}
	ghost := board.GhostStates()[g.index-1]
	pacman := board.PacmanPosition()

	distances := make([]int, len(actions))
	for i, action := range actions {
		distances[i] = game.Manhattan(ghost.Position.Add(action), pacman)
	}

	// Scared ghosts favour the farthest cells, others the nearest
	bestProb := g.attack
	better := func(d, best int) bool { return d < best }
	if ghost.IsScared() {
		bestProb = g.flee
		better = func(d, best int) bool { return d > best }
	}
	best := distances[0]
	for _, d := range distances[1:] {
		if better(d, best) {
			best = d
		}
	}
	numBest := 0
	for _, d := range distances {
		if d == best {
			numBest++
		}
	}

	policy := make([]weighted, len(actions))
	sum := 0.0
	for i, action := range actions {
		prob := (1 - bestProb) / float64(len(actions))
		if distances[i] == best {
			prob += bestProb / float64(numBest)
		}
		policy[i] = weighted{action: action, prob: prob}
		sum += prob
	}
	// Normalize
	for i := range policy {
		policy[i].prob /= sum
	}
	return policy
}

func sample(r *rand.Rand, policy []weighted) game.Action {
	sampled := r.Float64()
	cumulative := 0.0
	var lastAction game.Action
	for _, w := range policy {
		lastAction = w.action
		cumulative += w.prob
		if sampled < cumulative {
			return w.action
		}
	}
	return lastAction // Fallback in case of rounding errors
}
