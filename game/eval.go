package game

import (
	"maps"
	"slices"

	"github.com/pkg/errors"
)

const (
	GhostPenalty     = 1000.0 // Non-scared ghost within reach
	ScaredGhostBonus = 2000.0 // Scared ghost within reach
	FoodBonus        = 10.0   // Pacman standing on food
	CapsuleBonus     = 150.0
	FoodLeftPenalty  = 2.0 // Per remaining pellet
)

var ErrUnknownEvaluation = errors.New("unknown evaluation function")

var evaluations = map[string]Evaluate{
	"scoreEvaluationFunction":  ScoreEvaluation,
	"betterEvaluationFunction": BetterEvaluation,
	"better":                   BetterEvaluation,
}

// LookupEvaluation returns the registered evaluation function with the given name.
func LookupEvaluation(name string) (Evaluate, error) {
	if evaluate, ok := evaluations[name]; ok {
		return evaluate, nil
	}
	return nil, errors.Wrapf(ErrUnknownEvaluation, "%q (known: %v)", name, EvaluationNames())
}

func EvaluationNames() []string {
	return slices.Sorted(maps.Keys(evaluations))
}

// ScoreEvaluation returns the raw game score.
func ScoreEvaluation(s State) float64 {
	return s.Score()
}

// ReflexEvaluation scores pacman's action by the position it leads to: the successor's score,
// a heavy penalty when a ghost is within one step, and the reciprocal distance to the nearest food.
func ReflexEvaluation(s State, action Action) float64 {
	successor := asBoard(asBoard(s).Successor(0, action))
	pacman := successor.PacmanPosition()

	score := successor.Score()
	if d, ok := nearest(pacman, successor.GhostPositions()); ok && d <= 1 {
		score -= GhostPenalty
	}
	if d, ok := nearest(pacman, successor.Food().List()); ok {
		score += reciprocal(d)
	}
	return score
}

// BetterEvaluation is the static evaluation used at search cutoffs. It rewards eating and
// approaching food and capsules, penalizes leftover food, and reacts to ghosts within one step:
// a threat when active, prey when scared.
func BetterEvaluation(s State) float64 {
	board := asBoard(s)
	pacman := board.PacmanPosition()
	food := board.Food()
	pellets := food.List()

	score := 0.0
	if food.At(pacman) {
		score += FoodBonus
	}
	for _, capsule := range board.Capsules() {
		score += CapsuleBonus / float64(1+Manhattan(pacman, capsule))
	}
	score -= FoodLeftPenalty * float64(len(pellets))
	if d, ok := nearest(pacman, pellets); ok {
		score += reciprocal(d)
	}
	for _, ghost := range board.GhostStates() {
		if Manhattan(pacman, ghost.Position) > 1 {
			continue
		}
		if ghost.IsScared() {
			score += ScaredGhostBonus
		} else {
			score -= GhostPenalty
		}
	}

	return board.Score() + score
}

func asBoard(s State) Board {
	b, ok := s.(Board)
	if !ok {
		panic("unexpected state type")
	}
	return b
}

// nearest returns the smallest manhattan distance from p to targets, false if there are none
func nearest(p Position, targets []Position) (int, bool) {
	if len(targets) == 0 {
		return 0, false
	}
	best := Manhattan(p, targets[0])
	for _, t := range targets[1:] {
		best = min(best, Manhattan(p, t))
	}
	return best, true
}

// reciprocal is 1/d, or 0 when d is not positive
func reciprocal(d int) float64 {
	if d <= 0 {
		return 0
	}
	return 1.0 / float64(d)
}
