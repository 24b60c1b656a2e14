package agent

import (
	"pacman/experiments/metrics"
	"pacman/game"
	"pacman/searcher"

	"github.com/rs/zerolog/log"
)

type searchAgent struct {
	searcher searcher.Searcher
}

// NewSearchAgent returns a pacman agent playing the root action of a game-tree search.
func NewSearchAgent(s searcher.Searcher) Agent {
	return searchAgent{searcher: s}
}

func (a searchAgent) GetAction(state game.State) (game.Action, metrics.SearchMetric) {
	result, metric := a.searcher.Search(state)
	log.Debug().Msgf("%s chose %s with value %.2f after %d nodes", metric.Strategy, result.Action, result.Value, metric.Nodes)
	return result.Action, metric
}
