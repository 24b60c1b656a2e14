package game

import (
	"fmt"
	"pacman/utils"
)

type agentState struct {
	Position    Position
	Start       Position
	ScaredTimer int
}

// GameState is a snapshot of a pacman game. Walls and rules are shared between snapshots;
// food and capsules are copied on write.
type GameState struct {
	layout   *Layout
	rules    Rules
	food     Grid
	capsules []Position
	agents   []agentState // Pacman at index 0, ghosts after
	score    float64
	won      bool
	lost     bool
}

// NewGameState initializes the starting state of a layout.
func NewGameState(l *Layout, rules Rules) *GameState {
	agents := make([]agentState, 0, 1+len(l.Ghosts))
	agents = append(agents, agentState{Position: l.Pacman, Start: l.Pacman})
	for _, g := range l.Ghosts {
		agents = append(agents, agentState{Position: g, Start: g})
	}
	capsules := make([]Position, len(l.Capsules))
	copy(capsules, l.Capsules)

	return &GameState{
		layout:   l,
		rules:    rules,
		food:     l.Food.Copy(),
		capsules: capsules,
		agents:   agents,
	}
}

func (gs *GameState) copy() *GameState {
	agents := make([]agentState, len(gs.agents))
	copy(agents, gs.agents)

	return &GameState{
		layout:   gs.layout, // Static
		rules:    gs.rules,  // Static
		food:     gs.food,   // Copied by whoever eats
		capsules: gs.capsules,
		agents:   agents,
		score:    gs.score,
		won:      gs.won,
		lost:     gs.lost,
	}
}

func (gs *GameState) NumAgents() int {
	return len(gs.agents)
}

func (gs *GameState) LegalActions(agent int) []Action {
	gs.checkAgent(agent)
	if gs.won || gs.lost {
		return []Action{}
	}

	from := gs.agents[agent].Position
	actions := []Action{}
	for _, a := range directions {
		if !gs.layout.IsWall(from.Add(a)) {
			actions = append(actions, a)
		}
	}
	// Pacman may always stand still, ghosts only when boxed in
	if agent == 0 || len(actions) == 0 {
		actions = append(actions, Stop)
	}
	return actions
}

func (gs *GameState) Successor(agent int, action Action) State {
	if gs.won || gs.lost {
		panic("cannot generate successor of a terminal state")
	}
	if utils.FindIndex(gs.LegalActions(agent), action) < 0 {
		panic(fmt.Sprintf("illegal action %s for agent %d at %+v", action, agent, gs.agents[agent].Position))
	}

	next := gs.copy()
	if agent == 0 {
		next.movePacman(action)
		for ghost := 1; ghost < len(next.agents); ghost++ {
			next.checkCollision(ghost)
		}
	} else {
		next.moveGhost(agent, action)
		next.checkCollision(agent)
	}
	return next
}

func (gs *GameState) movePacman(action Action) {
	pacman := &gs.agents[0]
	pacman.Position = pacman.Position.Add(action)
	gs.score -= gs.rules.TimePenalty()

	pos := pacman.Position
	if gs.food.At(pos) {
		gs.food = gs.food.Copy()
		gs.food[pos.X][pos.Y] = false
		gs.score += gs.rules.FoodReward()
		if gs.food.Count() == 0 {
			gs.score += gs.rules.WinReward()
			gs.won = true
		}
	}

	if i := utils.FindIndex(gs.capsules, pos); i >= 0 {
		capsules := make([]Position, 0, len(gs.capsules)-1)
		capsules = append(capsules, gs.capsules[:i]...)
		gs.capsules = append(capsules, gs.capsules[i+1:]...)
		for ghost := 1; ghost < len(gs.agents); ghost++ {
			gs.agents[ghost].ScaredTimer = gs.rules.ScaredTime()
		}
	}
}

func (gs *GameState) moveGhost(agent int, action Action) {
	ghost := &gs.agents[agent]
	if ghost.ScaredTimer > 0 {
		ghost.ScaredTimer--
	}
	ghost.Position = ghost.Position.Add(action)
}

func (gs *GameState) checkCollision(ghost int) {
	g := &gs.agents[ghost]
	if g.Position != gs.agents[0].Position {
		return
	}
	if g.ScaredTimer > 0 {
		gs.score += gs.rules.GhostReward()
		g.Position = g.Start
		g.ScaredTimer = 0
		return
	}
	// A winning move is never undone by a collision
	if !gs.won {
		gs.score -= gs.rules.LosePenalty()
		gs.lost = true
	}
}

func (gs *GameState) checkAgent(agent int) {
	if agent < 0 || agent >= len(gs.agents) {
		panic(fmt.Sprintf("invalid agent index %d for %d agents", agent, len(gs.agents)))
	}
}

func (gs *GameState) IsWin() bool {
	return gs.won
}

func (gs *GameState) IsLose() bool {
	return gs.lost
}

func (gs *GameState) Score() float64 {
	return gs.score
}

func (gs *GameState) PacmanPosition() Position {
	return gs.agents[0].Position
}

func (gs *GameState) GhostStates() []GhostState {
	ghosts := make([]GhostState, 0, len(gs.agents)-1)
	for _, g := range gs.agents[1:] {
		ghosts = append(ghosts, GhostState{Position: g.Position, ScaredTimer: g.ScaredTimer})
	}
	return ghosts
}

func (gs *GameState) GhostPositions() []Position {
	positions := make([]Position, 0, len(gs.agents)-1)
	for _, g := range gs.agents[1:] {
		positions = append(positions, g.Position)
	}
	return positions
}

func (gs *GameState) Food() Grid {
	return gs.food
}

func (gs *GameState) Capsules() []Position {
	capsules := make([]Position, len(gs.capsules))
	copy(capsules, gs.capsules)
	return capsules
}
