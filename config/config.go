package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"copsrobber/game"
	"copsrobber/meta"

	"github.com/rs/zerolog"
)

type Board struct {
	GridSize int
	CopA     int
	CopB     int
	Robber   int
}

type Rules struct {
	HopLimit  int
	MaxRounds int
}

type Experiment struct {
	Games       int
	Seed        uint64
	Temperature float64
}

type Config struct {
	Board      Board
	Rules      Rules
	Experiment Experiment
	LogLevel   string
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func getenvUint(key string, def uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.ParseUint(v, 10, 64); err == nil {
			return i
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Load reads the configuration from the environment, falling back to the
// standard rules and placements.
func Load() Config {
	return Config{
		Board: Board{
			GridSize: getenvInt("CR_GRID_SIZE", meta.TILES_PER_ROW),
			CopA:     getenvInt("CR_COP_A", meta.INITIAL_COP_A),
			CopB:     getenvInt("CR_COP_B", meta.INITIAL_COP_B),
			Robber:   getenvInt("CR_ROBBER", meta.INITIAL_ROBBER),
		},
		Rules: Rules{
			HopLimit:  getenvInt("CR_HOP_LIMIT", meta.HOP_LIMIT),
			MaxRounds: getenvInt("CR_MAX_ROUNDS", meta.MAX_ROUNDS),
		},
		Experiment: Experiment{
			Games:       getenvInt("CR_GAMES", meta.GAMES),
			Seed:        getenvUint("CR_SEED", 1),
			Temperature: getenvFloat("CR_TEMPERATURE", 0.5),
		},
		LogLevel: getenv("CR_LOG_LEVEL", "info"),
	}
}

// Validate checks the values a session would otherwise reject later.
func (c Config) Validate() error {
	b := c.Board
	if b.GridSize < 1 {
		return fmt.Errorf("%w: %d", game.ErrInvalidGridSize, b.GridSize)
	}
	tiles := b.GridSize * b.GridSize
	for _, t := range []int{b.CopA, b.CopB, b.Robber} {
		if t < 0 || t >= tiles {
			return fmt.Errorf("%w: %d on a %dx%d board", game.ErrTileOutOfRange, t, b.GridSize, b.GridSize)
		}
	}
	if b.CopA == b.CopB || b.CopA == b.Robber || b.CopB == b.Robber {
		return game.ErrTilesOverlap
	}
	if c.Rules.HopLimit < 1 {
		return game.ErrInvalidHops
	}
	if c.Rules.MaxRounds < 1 {
		return game.ErrInvalidRounds
	}
	if c.Experiment.Games < 1 {
		return fmt.Errorf("games must be at least 1, got %d", c.Experiment.Games)
	}
	if c.Experiment.Temperature <= 0 {
		return fmt.Errorf("temperature must be positive, got %v", c.Experiment.Temperature)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.InfoLevel, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}

// Cops returns the starting tiles of both cops.
func (b Board) Cops() [game.NumCops]int {
	return [game.NumCops]int{b.CopA, b.CopB}
}

// GameRules builds the rules the session plays by.
func (c Config) GameRules() (game.Rules, error) {
	rules, err := game.NewRules(c.Rules.HopLimit, c.Rules.MaxRounds)
	if err != nil {
		return nil, err
	}
	return rules, nil
}
