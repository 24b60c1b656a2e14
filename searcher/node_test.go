package searcher

import (
	"fmt"
	"pacman/game"
	"strconv"

	"golang.org/x/exp/rand"
)

// treeState is a hand-built game tree. Actions are child indices, the evaluation of a node is
// its value, and playing out of turn panics so tests catch broken agent rotation.
type treeState struct {
	agents   int
	turn     int
	children []*treeState
	value    float64
	win      bool
	lose     bool
}

func (s *treeState) NumAgents() int {
	return s.agents
}

func (s *treeState) LegalActions(agent int) []game.Action {
	s.checkTurn(agent)
	actions := make([]game.Action, len(s.children))
	for i := range s.children {
		actions[i] = game.Action(strconv.Itoa(i))
	}
	return actions
}

func (s *treeState) Successor(agent int, action game.Action) game.State {
	s.checkTurn(agent)
	i, err := strconv.Atoi(string(action))
	if err != nil || i < 0 || i >= len(s.children) {
		panic(fmt.Sprintf("illegal action %q", action))
	}
	return s.children[i]
}

func (s *treeState) checkTurn(agent int) {
	if agent != s.turn {
		panic(fmt.Sprintf("agent %d played on agent %d's turn", agent, s.turn))
	}
}

func (s *treeState) IsWin() bool {
	return s.win
}

func (s *treeState) IsLose() bool {
	return s.lose
}

func (s *treeState) Score() float64 {
	return s.value
}

func leaf(value float64) *treeState {
	return &treeState{value: value}
}

func node(children ...*treeState) *treeState {
	return &treeState{children: children}
}

// valued is an inner node whose own evaluation is value
func valued(value float64, children ...*treeState) *treeState {
	return &treeState{value: value, children: children}
}

// tree assigns the agent count and turns of every node below root, starting with pacman.
func tree(agents int, root *treeState) *treeState {
	root.assign(agents, 0)
	return root
}

func (s *treeState) assign(agents, turn int) {
	s.agents = agents
	s.turn = turn
	for _, child := range s.children {
		child.assign(agents, (turn+1)%agents)
	}
}

// randomTree grows a tree exactly rounds rounds deep, with occasional terminal and stuck
// nodes and small integer values so ties are common.
func randomTree(r *rand.Rand, agents, rounds int) *treeState {
	var grow func(turn, depth int) *treeState
	grow = func(turn, depth int) *treeState {
		s := &treeState{agents: agents, turn: turn, value: float64(r.Intn(21) - 10)}
		if depth >= rounds {
			return s
		}
		switch r.Intn(12) {
		case 0:
			s.win = true
			return s
		case 1:
			s.lose = true
			return s
		case 2:
			return s // No legal actions
		}
		nextTurn, nextDepth := next(turn, depth, agents)
		for k := 1 + r.Intn(3); k > 0; k-- {
			s.children = append(s.children, grow(nextTurn, nextDepth))
		}
		return s
	}
	return grow(0, 0)
}
