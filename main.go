package main

import (
	"flag"
	"os"
	"pacman/config"
	"pacman/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "YAML config file, flags take precedence")
	layout := flag.String("layout", "", "Built-in layout name or layout file")
	pacman := flag.String("pacman", "", "Pacman agent: ReflexAgent, MinimaxAgent, AlphaBetaAgent or ExpectimaxAgent")
	evaluation := flag.String("eval", "", "Cutoff evaluation function")
	depth := flag.Int("depth", 0, "Number of rounds searched, 0 plays a single round")
	ghosts := flag.String("ghosts", "", "Ghost agent: RandomGhost or DirectionalGhost")
	games := flag.Int("games", 0, "Number of games")
	seed := flag.Uint64("seed", 0, "Seed of the first game")
	maxMoves := flag.Int("max-moves", 0, "Move cap per game")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	level, err := zerolog.ParseLevel(*logLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	cfg := config.Default()
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	// Only flags given on the command line override the config
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "layout":
			cfg.Layout = *layout
		case "pacman":
			cfg.Pacman = *pacman
		case "eval":
			cfg.Evaluation = *evaluation
		case "depth":
			cfg.Depth = *depth
		case "ghosts":
			cfg.Ghosts = *ghosts
		case "games":
			cfg.Games = *games
		case "seed":
			cfg.Seed = *seed
		case "max-moves":
			cfg.MaxMoves = *maxMoves
		}
	})

	summary, err := experiments.Run(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("experiment failed")
	}
	log.Info().
		Int("games", summary.Games).
		Int("wins", summary.Wins).
		Int("losses", summary.Losses).
		Float64("average_score", summary.AverageScore).
		Float64("average_nodes", summary.AverageNodes).
		Msg("summary")
}
