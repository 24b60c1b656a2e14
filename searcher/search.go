package searcher

import (
	"math"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/meta"
)

type Option func(s *search)

// search holds what every strategy shares: the round limit, the cutoff evaluation and the
// metrics collector.
type search struct {
	depth    int
	evaluate game.Evaluate
	metrics  metrics.Collector
}

// WithDepth sets the number of full rounds searched. Zero searches a single round.
func WithDepth(depth int) Option {
	return func(s *search) {
		if depth >= 0 {
			s.depth = depth
		}
	}
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *search) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *search) {
		s.metrics = metrics.NewCollector()
	}
}

func newSearch(options ...Option) search {
	s := search{ // Default values
		depth:    meta.DEPTH,
		evaluate: game.ScoreEvaluation,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

// rounds is the number of full rounds played out before the evaluation function takes over.
func (s *search) rounds() int {
	return max(s.depth, 1)
}

// isCutoff reports whether state should be evaluated instead of expanded. Depth only grows
// when play returns to pacman, so the limit always falls on a round boundary.
func (s *search) isCutoff(state game.State, depth int) bool {
	return depth >= s.rounds() || game.IsTerminal(state)
}

func (s *search) leaf(state game.State) float64 {
	s.metrics.AddEvaluation()
	return s.evaluate(state)
}

// root picks pacman's action with the highest child value, keeping the first on ties.
func (s *search) root(state game.State, value func(child game.State, agent, depth int) float64) Result {
	s.metrics.AddNode()

	actions := state.LegalActions(0)
	if game.IsTerminal(state) || len(actions) == 0 {
		return Result{Action: game.Stop, Value: s.leaf(state)}
	}

	agent, depth := next(0, 0, state.NumAgents())
	best := Result{Action: actions[0], Value: math.Inf(-1)}
	for _, action := range actions {
		v := value(state.Successor(0, action), agent, depth)
		if v > best.Value {
			best = Result{Action: action, Value: v}
		}
	}
	return best
}

// next returns whose turn follows agent, and the round that turn belongs to.
func next(agent, depth, numAgents int) (int, int) {
	if agent+1 >= numAgents {
		return 0, depth + 1
	}
	return agent + 1, depth
}
