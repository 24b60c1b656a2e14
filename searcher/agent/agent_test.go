package agent

import (
	"pacman/game"
	"pacman/searcher"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func mustState(t *testing.T, text string) *game.GameState {
	t.Helper()
	l, err := game.ParseLayout(t.Name(), text)
	require.NoError(t, err)
	return game.NewGameState(l, game.NewStandardRules())
}

const (
	corridor = "%%%%%%\n%.P G%\n%%%%%%"
	twoFoods = "%%%%%%%\n%. P .%\n%%%%%%%"
	openRoom = "%%%%%%%\n%P   G%\n%     %\n%%%%%%%"
	fleeRoom = "%%%%%%%\n%Po  G%\n%     %\n%%%%%%%"
)

func TestNewPacman(t *testing.T) {
	t.Run("builds every pacman agent", func(t *testing.T) {
		require.Equal(t, []string{"ReflexAgent", "AlphaBetaAgent", "ExpectimaxAgent", "MinimaxAgent"}, PacmanNames())
		for _, name := range PacmanNames() {
			a, err := NewPacman(name, "scoreEvaluationFunction", 2, 1)

			require.NoError(t, err, name)
			require.NotNil(t, a, name)
		}
	})

	t.Run("rejects an unknown agent", func(t *testing.T) {
		_, err := NewPacman("GreedyAgent", "scoreEvaluationFunction", 2, 1)

		require.True(t, errors.Is(err, ErrUnknownAgent), "Error should wrap ErrUnknownAgent")
	})

	t.Run("rejects an unknown evaluation", func(t *testing.T) {
		_, err := NewPacman("MinimaxAgent", "nope", 2, 1)

		require.True(t, errors.Is(err, game.ErrUnknownEvaluation), "Error should wrap ErrUnknownEvaluation")
	})

	t.Run("rejects a negative depth", func(t *testing.T) {
		_, err := NewPacman("AlphaBetaAgent", "better", -1, 1)

		require.Error(t, err)
	})
}

func TestNewGhost(t *testing.T) {
	t.Run("builds every ghost agent", func(t *testing.T) {
		for _, name := range GhostNames() {
			a, err := NewGhost(name, 1, 1)

			require.NoError(t, err, name)
			require.NotNil(t, a, name)
		}
	})

	t.Run("rejects an unknown ghost", func(t *testing.T) {
		_, err := NewGhost("Blinky", 1, 1)

		require.True(t, errors.Is(err, ErrUnknownAgent), "Error should wrap ErrUnknownAgent")
	})

	t.Run("rejects pacman's index", func(t *testing.T) {
		_, err := NewGhost("RandomGhost", 0, 1)

		require.Error(t, err)
	})
}

func TestSearchAgent(t *testing.T) {
	for _, name := range []string{"MinimaxAgent", "AlphaBetaAgent", "ExpectimaxAgent"} {
		t.Run(name+" eats the last food", func(t *testing.T) {
			a, err := NewPacman(name, "scoreEvaluationFunction", 1, 1)
			require.NoError(t, err)

			action, metric := a.GetAction(mustState(t, corridor))

			require.Equal(t, game.West, action)
			require.Equal(t, 1, metric.Depth)
			require.Positive(t, metric.Nodes, "Search agents should report their metrics")
		})
	}

	t.Run("reports the strategy of the wrapped searcher", func(t *testing.T) {
		_, metric := NewSearchAgent(searcher.NewExpectimax(searcher.WithMetrics())).GetAction(mustState(t, corridor))

		require.Equal(t, string(searcher.ExpectimaxStrategy), metric.Strategy)
	})
}

func TestReflexAgent(t *testing.T) {
	t.Run("eats the last food", func(t *testing.T) {
		a := NewReflexAgent(game.ReflexEvaluation, rand.New(rand.NewSource(1)))

		action, metric := a.GetAction(mustState(t, corridor))

		require.Equal(t, game.West, action)
		require.Equal(t, 3, metric.Evaluations, "Should score West, East and Stop")
	})

	t.Run("breaks ties at random", func(t *testing.T) {
		a := NewReflexAgent(game.ReflexEvaluation, rand.New(rand.NewSource(7)))
		state := mustState(t, twoFoods)

		seen := map[game.Action]int{}
		for i := 0; i < 50; i++ {
			action, _ := a.GetAction(state)
			seen[action]++
		}

		require.Len(t, seen, 2, "Should only pick the tied East and West")
		require.Positive(t, seen[game.East])
		require.Positive(t, seen[game.West])
	})

	t.Run("stops on a terminal state", func(t *testing.T) {
		a := NewReflexAgent(game.ReflexEvaluation, rand.New(rand.NewSource(1)))
		won := mustState(t, corridor).Successor(0, game.West)

		action, _ := a.GetAction(won)

		require.Equal(t, game.Stop, action)
	})
}

func TestRandomGhost(t *testing.T) {
	t.Run("only plays legal actions", func(t *testing.T) {
		state := mustState(t, openRoom)
		g := NewRandomGhost(1, rand.New(rand.NewSource(3)))

		for i := 0; i < 20; i++ {
			action, _ := g.GetAction(state)
			require.Contains(t, state.LegalActions(1), action)
		}
	})

	t.Run("stops on a terminal state", func(t *testing.T) {
		g := NewRandomGhost(1, rand.New(rand.NewSource(3)))
		won := mustState(t, corridor).Successor(0, game.West)

		action, _ := g.GetAction(won)

		require.Equal(t, game.Stop, action)
	})
}

func TestDirectionalGhost(t *testing.T) {
	t.Run("chases pacman", func(t *testing.T) {
		g := NewDirectionalGhost(1, rand.New(rand.NewSource(5)), 1, 1)

		for i := 0; i < 20; i++ {
			action, _ := g.GetAction(mustState(t, openRoom))
			require.Equal(t, game.West, action, "West closes the distance to 3, South opens it to 5")
		}
	})

	t.Run("flees while scared", func(t *testing.T) {
		g := NewDirectionalGhost(1, rand.New(rand.NewSource(5)), 1, 1)
		scared := mustState(t, fleeRoom).Successor(0, game.East)
		require.True(t, scared.(game.Board).GhostStates()[0].IsScared())

		for i := 0; i < 20; i++ {
			action, _ := g.GetAction(scared)
			require.Equal(t, game.South, action, "South keeps 4 cells away, West only 2")
		}
	})

	t.Run("spreads the rest of the mass over every action", func(t *testing.T) {
		g := &directionalGhost{index: 1, attack: 0.8, flee: 0.8}
		state := mustState(t, openRoom)

		policy := g.distribution(state, state.LegalActions(1))

		sum := 0.0
		for _, w := range policy {
			sum += w.prob
			if w.action == game.West {
				require.InDelta(t, 0.9, w.prob, 1e-9, "0.8 for the best action plus 0.2/2")
			}
		}
		require.InDelta(t, 1.0, sum, 1e-9)
	})
}

func TestSample(t *testing.T) {
	t.Run("follows the distribution", func(t *testing.T) {
		r := rand.New(rand.NewSource(11))
		policy := []weighted{{action: game.North, prob: 0.75}, {action: game.South, prob: 0.25}}

		counts := map[game.Action]int{}
		for i := 0; i < 4000; i++ {
			counts[sample(r, policy)]++
		}

		require.InDelta(t, 3000, counts[game.North], 200)
		require.InDelta(t, 1000, counts[game.South], 200)
	})

	t.Run("falls back to the last action on rounding errors", func(t *testing.T) {
		r := rand.New(rand.NewSource(11))
		policy := []weighted{{action: game.North, prob: 0}, {action: game.East, prob: 0}}

		require.Equal(t, game.East, sample(r, policy))
	})
}
