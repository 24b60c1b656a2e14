package config

import (
	"os"
	"pacman/game"
	"pacman/meta"
	"pacman/searcher/agent"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// Config describes a batch of games. Fields missing from a file keep the defaults.
type Config struct {
	Layout     string `yaml:"layout"`
	Pacman     string `yaml:"pacman"`
	Evaluation string `yaml:"evaluation"`
	Depth      int    `yaml:"depth"`
	Ghosts     string `yaml:"ghosts"`
	Games      int    `yaml:"games"`
	Seed       uint64 `yaml:"seed"`
	MaxMoves   int    `yaml:"max_moves"`
}

func Default() Config {
	return Config{
		Layout:     meta.LAYOUT,
		Pacman:     meta.PACMAN,
		Evaluation: meta.EVALUATION,
		Depth:      meta.DEPTH,
		Ghosts:     meta.GHOSTS,
		Games:      meta.NUM_GAMES,
		Seed:       1,
		MaxMoves:   meta.MAX_MOVES,
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "failed to parse config %s", path)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if pacmen := agent.PacmanNames(); !slices.Contains(pacmen, c.Pacman) {
		return errors.Wrapf(agent.ErrUnknownAgent, "pacman %q, expected one of %v", c.Pacman, pacmen)
	}
	if ghosts := agent.GhostNames(); !slices.Contains(ghosts, c.Ghosts) {
		return errors.Wrapf(agent.ErrUnknownAgent, "ghost %q, expected one of %v", c.Ghosts, ghosts)
	}
	if _, err := game.LookupEvaluation(c.Evaluation); err != nil {
		return err
	}
	if c.Depth < 0 {
		return errors.Errorf("depth must not be negative, got %d", c.Depth)
	}
	if c.Games < 1 {
		return errors.Errorf("games must be positive, got %d", c.Games)
	}
	if c.MaxMoves < 1 {
		return errors.Errorf("max_moves must be positive, got %d", c.MaxMoves)
	}
	if c.Layout == "" {
		return errors.New("layout must not be empty")
	}
	return nil
}
