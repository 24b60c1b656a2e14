package engine

import (
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/meta"
	"pacman/searcher/agent"
	"pacman/utils"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type localEngine struct {
	layout   *game.Layout
	state    game.State
	agents   []agent.Agent // Pacman at index 0, ghosts after
	maxMoves int
}

// LocalEngine sets up a game on a layout with one agent per ghost of the layout.
func LocalEngine(l *game.Layout, rules game.Rules, pacman agent.Agent, ghosts []agent.Agent, options ...Option) Engine {
	if len(ghosts) != len(l.Ghosts) {
		panic("number of ghost agents does not match layout")
	}

	e := &localEngine{
		layout:   l,
		state:    game.NewGameState(l, rules),
		agents:   append([]agent.Agent{pacman}, ghosts...),
		maxMoves: meta.MAX_MOVES,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Run executes the entire game loop, agents moving in turn starting with pacman.
func (e *localEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric) {
	gameMetric := metrics.GameMetric{
		ID:        uuid.New(),
		Layout:    e.layout.Name,
		StartTime: time.Now(),
	}
	log.Info().Msgf("game %s starting on %s with %d ghosts", gameMetric.ID, e.layout.Name, len(e.agents)-1)

	moveMetrics := []metrics.MoveMetric{}
	moves := 0
	for !game.IsTerminal(e.state) && moves < e.maxMoves {
		index := moves % len(e.agents)
		action, searchMetric := e.agents[index].GetAction(e.state)

		legal := e.state.LegalActions(index)
		if utils.FindIndex(legal, action) < 0 {
			log.Warn().Msgf("agent %d returned illegal action %s, playing %s instead", index, action, legal[0])
			action = legal[0]
		}

		e.state = e.state.Successor(index, action)
		moves++
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         moves,
			Agent:        index,
			Action:       action.String(),
			SearchMetric: searchMetric,
		})
	}

	gameMetric.Winner = winner(e.state)
	gameMetric.Score = e.state.Score()
	gameMetric.TotalMoves = moves
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)

	if gameMetric.Winner == "" {
		log.Info().Msgf("game %s stopped after %d moves with score %.0f", gameMetric.ID, moves, gameMetric.Score)
	} else {
		log.Info().Msgf("game %s won by %s after %d moves with score %.0f", gameMetric.ID, gameMetric.Winner, moves, gameMetric.Score)
	}
	return gameMetric.Winner, gameMetric, moveMetrics
}

func winner(s game.State) string {
	switch {
	case s.IsWin():
		return PacmanWins
	case s.IsLose():
		return GhostsWin
	default:
		return ""
	}
}
