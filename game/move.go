package game

// Action is a move direction for a single agent.
type Action string

const (
	North Action = "North"
	South Action = "South"
	East  Action = "East"
	West  Action = "West"
	// Stop doubles as the no-op returned when pacman has no legal action
	Stop Action = "Stop"
)

var directions = []Action{North, South, East, West}

// Vector returns the unit displacement of the action.
func (a Action) Vector() (dx, dy int) {
	switch a {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

func (a Action) String() string {
	return string(a)
}
