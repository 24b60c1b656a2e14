package engine

import "pacman/experiments/metrics"

const (
	PacmanWins = "pacman"
	GhostsWin  = "ghosts"
)

type Engine interface {
	// Run plays a game till pacman wins or loses or a max number of moves is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

type Option func(e *localEngine)

// WithMaxMoves caps the number of moves played by all agents together
func WithMaxMoves(maxMoves int) Option {
	return func(e *localEngine) {
		if maxMoves > 0 {
			e.maxMoves = maxMoves
		}
	}
}
