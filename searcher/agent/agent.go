package agent

import (
	"maps"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/searcher"
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

var ErrUnknownAgent = errors.New("unknown agent")

type Agent interface {
	// GetAction returns a legal action for the agent's turn, or game.Stop if it has none, with
	// the metrics of the search that produced it (zero for agents that do not search)
	GetAction(state game.State) (game.Action, metrics.SearchMetric)
}

var ghostNames = []string{"RandomGhost", "DirectionalGhost"}

var strategies = map[string]searcher.Strategy{
	"MinimaxAgent":    searcher.MinimaxStrategy,
	"AlphaBetaAgent":  searcher.AlphaBetaStrategy,
	"ExpectimaxAgent": searcher.ExpectimaxStrategy,
}

// NewPacman builds the named pacman agent. Searching agents evaluate cutoff states with the
// named evaluation function and look depth rounds ahead.
func NewPacman(name, evaluation string, depth int, seed uint64) (Agent, error) {
	if name == "ReflexAgent" {
		return NewReflexAgent(game.ReflexEvaluation, rand.New(rand.NewSource(seed))), nil
	}

	strategy, ok := strategies[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAgent, "pacman %q", name)
	}
	evaluate, err := game.LookupEvaluation(evaluation)
	if err != nil {
		return nil, err
	}
	if depth < 0 {
		return nil, errors.Errorf("depth must not be negative, got %d", depth)
	}
	s, err := searcher.New(strategy, searcher.WithDepth(depth), searcher.WithEvaluationFn(evaluate), searcher.WithMetrics())
	if err != nil {
		return nil, err
	}
	return NewSearchAgent(s), nil
}

// NewGhost builds the named ghost agent playing as agent index.
func NewGhost(name string, index int, seed uint64) (Agent, error) {
	if index < 1 {
		return nil, errors.Errorf("ghost index must be positive, got %d", index)
	}
	r := rand.New(rand.NewSource(seed))
	switch name {
	case "RandomGhost":
		return NewRandomGhost(index, r), nil
	case "DirectionalGhost":
		return NewDirectionalGhost(index, r, DefaultAttack, DefaultFlee), nil
	default:
		return nil, errors.Wrapf(ErrUnknownAgent, "ghost %q", name)
	}
}

// PacmanNames lists the pacman agents NewPacman builds.
func PacmanNames() []string {
	return append([]string{"ReflexAgent"}, slices.Sorted(maps.Keys(strategies))...)
}

// GhostNames lists the ghost agents NewGhost builds.
func GhostNames() []string {
	return slices.Clone(ghostNames)
}
