package experiments

import (
	"pacman/config"
	"pacman/engine"
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/searcher/agent"
	"pacman/utils"

	"github.com/rs/zerolog/log"
)

// Summary aggregates the games of one experiment.
type Summary struct {
	Games        int
	Wins         int
	Losses       int
	AverageScore float64
	AverageNodes float64 // Per pacman move
	GameMetrics  []metrics.GameMetric
}

// Run plays the configured number of games and summarizes them. Every agent of every game
// gets its own seed derived from the configured one, so a config always replays the same games.
func Run(cfg config.Config) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	l, err := game.LoadLayout(cfg.Layout)
	if err != nil {
		return Summary{}, err
	}

	log.Info().Msgf("starting %d games of %s (%s, depth %d) against %s on %s...",
		cfg.Games, cfg.Pacman, cfg.Evaluation, cfg.Depth, cfg.Ghosts, l.Name)

	summary := Summary{Games: cfg.Games}
	scores := []float64{}
	nodes := []float64{}
	numAgents := uint64(1 + len(l.Ghosts))
	for i := 0; i < cfg.Games; i++ {
		log.Info().Msgf("starting game %d of %d...", i+1, cfg.Games)

		winner, gameMetric, moveMetrics, err := runGame(cfg, l, cfg.Seed+uint64(i)*numAgents)
		if err != nil {
			return Summary{}, err
		}
		switch winner {
		case engine.PacmanWins:
			summary.Wins++
		case engine.GhostsWin:
			summary.Losses++
		}
		summary.GameMetrics = append(summary.GameMetrics, gameMetric)
		scores = append(scores, gameMetric.Score)
		for _, mm := range moveMetrics {
			if mm.Agent == 0 {
				nodes = append(nodes, float64(mm.Nodes))
			}
		}

		log.Info().Msgf("completed game %d of %d with winner: %q", i+1, cfg.Games, winner)
	}

	summary.AverageScore = utils.Mean(scores)
	summary.AverageNodes = utils.Mean(nodes)
	log.Info().Msgf("completed %d games: %d won, %d lost, average score %.2f", summary.Games, summary.Wins, summary.Losses, summary.AverageScore)
	return summary, nil
}

// runGame plays a single game, pacman seeded with seed and ghost i with seed+i
func runGame(cfg config.Config, l *game.Layout, seed uint64) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	pacman, err := agent.NewPacman(cfg.Pacman, cfg.Evaluation, cfg.Depth, seed)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	ghosts := make([]agent.Agent, len(l.Ghosts))
	for i := range ghosts {
		ghosts[i], err = agent.NewGhost(cfg.Ghosts, i+1, seed+uint64(i+1))
		if err != nil {
			return "", metrics.GameMetric{}, nil, err
		}
	}

	e := engine.LocalEngine(l, game.NewStandardRules(), pacman, ghosts, engine.WithMaxMoves(cfg.MaxMoves))
	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}
