package game

// State is the view of a game that adversarial search needs. Agent 0 is pacman, agents
// 1..NumAgents()-1 are ghosts.
// State should be immutable - Successor always returns a new copy
type State interface {
	NumAgents() int
	// LegalActions returns the ordered legal actions of an agent, empty in terminal states
	LegalActions(agent int) []Action
	// Successor panics if action is not legal for agent
	Successor(agent int, action Action) State
	IsWin() bool
	IsLose() bool
	Score() float64
}

// Board exposes the pacman-specific observations used by evaluation functions.
type Board interface {
	State
	PacmanPosition() Position
	GhostStates() []GhostState
	GhostPositions() []Position
	// Food is shared with the state and must not be modified
	Food() Grid
	Capsules() []Position
}

type GhostState struct {
	Position    Position
	ScaredTimer int
}

func (g GhostState) IsScared() bool {
	return g.ScaredTimer > 0
}

// Evaluates a game state to a score where higher is better for pacman.
type Evaluate func(State) float64

// Evaluates the state reached by pacman playing action from the given state.
type EvaluateAction func(State, Action) float64

func IsTerminal(s State) bool {
	return s.IsWin() || s.IsLose()
}
