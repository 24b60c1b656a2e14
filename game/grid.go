package game

import "pacman/utils"

// Position is an integer cell coordinate, X grows east and Y grows north.
type Position struct {
	X int
	Y int
}

func (p Position) Add(a Action) Position {
	dx, dy := a.Vector()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the grid distance between two cells.
func Manhattan(a, b Position) int {
	return utils.Abs(a.X-b.X) + utils.Abs(a.Y-b.Y)
}

// Grid is a boolean matrix indexed [x][y].
type Grid [][]bool

func NewGrid(width, height int) Grid {
	g := make(Grid, width)
	for x := range g {
		g[x] = make([]bool, height)
	}
	return g
}

func (g Grid) Width() int {
	return len(g)
}

func (g Grid) Height() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// At reports the cell value, false outside the grid.
func (g Grid) At(p Position) bool {
	if p.X < 0 || p.X >= g.Width() || p.Y < 0 || p.Y >= g.Height() {
		return false
	}
	return g[p.X][p.Y]
}

func (g Grid) Count() int {
	count := 0
	for _, column := range g {
		for _, v := range column {
			if v {
				count++
			}
		}
	}
	return count
}

// List returns the set cells ordered by x then y.
func (g Grid) List() []Position {
	cells := []Position{}
	for x, column := range g {
		for y, v := range column {
			if v {
				cells = append(cells, Position{X: x, Y: y})
			}
		}
	}
	return cells
}

func (g Grid) Copy() Grid {
	c := make(Grid, len(g))
	for x, column := range g {
		c[x] = make([]bool, len(column))
		copy(c[x], column)
	}
	return c
}
