// meta/meta.go
package meta

// DEPTH defines the default number of full rounds searched by adversarial agents.
const DEPTH = 2

// EVALUATION names the default cutoff evaluation function.
const EVALUATION = "scoreEvaluationFunction"

// PACMAN names the default pacman agent.
const PACMAN = "MinimaxAgent"

// GHOSTS names the default ghost agent.
const GHOSTS = "RandomGhost"

// LAYOUT names the default built-in layout.
const LAYOUT = "minimaxClassic"

// NUM_GAMES defines the number of games per experiment.
const NUM_GAMES = 1

// MAX_MOVES caps the number of moves (all agents) in a single game.
const MAX_MOVES = 1000

// SCARED_TIME defines how many of its own moves a ghost stays scared after a capsule.
const SCARED_TIME = 40
