// Package config provides YAML-based game configuration loading and
// difficulty presets for word snake.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/wordsnake/internal/engine"
	"github.com/vovakirdan/wordsnake/internal/grid"
	"github.com/vovakirdan/wordsnake/internal/spawn"
	"github.com/vovakirdan/wordsnake/internal/words"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// WordSnakeConfig contains all configuration for a word snake round.
type WordSnakeConfig struct {
	Board     BoardConfig    `yaml:"board"`
	Rules     RulesConfig    `yaml:"rules"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Players   PlayersConfig  `yaml:"players"`
	Words     WordsConfig    `yaml:"words"`
	Spawn     SpawnConfig    `yaml:"spawn"`
}

// BoardConfig defines the board in board units (pixels of the original
// playfield). Cells are CellSize units wide.
type BoardConfig struct {
	Width       int  `yaml:"width"`
	Height      int  `yaml:"height"`
	CellSize    int  `yaml:"cell_size"`
	FitTerminal bool `yaml:"fit_terminal"` // Shrink the board to the terminal
}

// RulesConfig defines scoring and pacing.
type RulesConfig struct {
	PickupReward    int `yaml:"pickup_reward"`
	CompletionBonus int `yaml:"completion_bonus"`
	FreezeTicks     int `yaml:"freeze_ticks"`
	SlowTicks       int `yaml:"slow_ticks"`
	LettersPerChar  int `yaml:"letters_per_char"`
}

// ObstacleConfig defines terrain and hazard spawning.
type ObstacleConfig struct {
	Enabled     bool     `yaml:"enabled"`
	Scale       bool     `yaml:"scale"`      // Grow the count with the leading score
	BaseCount   int      `yaml:"base_count"` // Obstacles at score 0
	ScoreStep   int      `yaml:"score_step"` // One extra obstacle per this many points
	MaxCount    int      `yaml:"max_count"`  // 0 = uncapped
	HazardEvery int      `yaml:"hazard_every"`
	Kinds       []string `yaml:"kinds"`
}

// PlayersConfig defines who competes.
type PlayersConfig struct {
	SecondPlayer bool `yaml:"second_player"`
	AICount      int  `yaml:"ai_count"`
}

// WordsConfig defines the target word source.
type WordsConfig struct {
	List      []string `yaml:"list"`
	Validate  bool     `yaml:"validate"` // Check every word against the dictionary
	MinLength int      `yaml:"min_length"`
}

// SpawnConfig defines random placement limits.
type SpawnConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
	Margin      int `yaml:"margin"` // Actor spawn distance from the edges, in cells
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, s)
	}
}

// Validate checks the configuration for values the engine cannot run with.
func (c WordSnakeConfig) Validate() error {
	b := c.Board
	switch {
	case b.CellSize <= 0:
		return fmt.Errorf("%w: board.cell_size must be positive", ErrInvalidConfig)
	case b.Width <= 0 || b.Height <= 0:
		return fmt.Errorf("%w: board size %dx%d", ErrInvalidConfig, b.Width, b.Height)
	case b.Width%b.CellSize != 0 || b.Height%b.CellSize != 0:
		return fmt.Errorf("%w: board %dx%d is not a multiple of cell size %d",
			ErrInvalidConfig, b.Width, b.Height, b.CellSize)
	case c.Rules.LettersPerChar < 1:
		return fmt.Errorf("%w: rules.letters_per_char must be at least 1", ErrInvalidConfig)
	case c.Rules.FreezeTicks < 0 || c.Rules.SlowTicks < 0:
		return fmt.Errorf("%w: timers must not be negative", ErrInvalidConfig)
	case c.Players.AICount < 1:
		return fmt.Errorf("%w: players.ai_count must be at least 1", ErrInvalidConfig)
	case len(c.Words.List) == 0:
		return fmt.Errorf("%w: words.list is empty", ErrInvalidConfig)
	case c.Words.MinLength < 2:
		return fmt.Errorf("%w: words.min_length must be at least 2", ErrInvalidConfig)
	case c.Obstacles.BaseCount < 0 || c.Obstacles.MaxCount < 0:
		return fmt.Errorf("%w: obstacle counts must not be negative", ErrInvalidConfig)
	case c.Spawn.Margin < 0 || c.Spawn.MaxAttempts < 0:
		return fmt.Errorf("%w: spawn limits must not be negative", ErrInvalidConfig)
	}
	if _, err := c.obstacleKinds(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

func (c WordSnakeConfig) obstacleKinds() ([]spawn.Kind, error) {
	if len(c.Obstacles.Kinds) == 0 {
		return spawn.AllKinds, nil
	}
	kinds := make([]spawn.Kind, 0, len(c.Obstacles.Kinds))
	for _, name := range c.Obstacles.Kinds {
		k, err := spawn.ParseKind(name)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// WordSet builds the playable word set. With words.validate set every word
// must pass the oracle.
func (c WordSnakeConfig) WordSet(oracle words.Oracle) (*words.Set, error) {
	if c.Words.Validate && oracle != nil {
		return words.Validated(c.Words.List, c.Words.MinLength, oracle)
	}
	return words.NewSet(c.Words.List, c.Words.MinLength)
}

// EngineConfig validates c and converts it into engine parameters.
func (c WordSnakeConfig) EngineConfig(oracle words.Oracle) (engine.Config, error) {
	if err := c.Validate(); err != nil {
		return engine.Config{}, err
	}
	set, err := c.WordSet(oracle)
	if err != nil {
		return engine.Config{}, fmt.Errorf("config: words: %w", err)
	}
	kinds, _ := c.obstacleKinds()

	return engine.Config{
		Bounds:           grid.Bounds{Width: c.Board.Width, Height: c.Board.Height, CellSize: c.Board.CellSize},
		PickupReward:     c.Rules.PickupReward,
		CompletionBonus:  c.Rules.CompletionBonus,
		FreezeTicks:      c.Rules.FreezeTicks,
		SlowTicks:        c.Rules.SlowTicks,
		LettersPerChar:   c.Rules.LettersPerChar,
		ObstaclesEnabled: c.Obstacles.Enabled,
		ObstacleKinds:    kinds,
		Scaler:           NewDifficultyManager(c.Obstacles),
		HazardEvery:      c.Obstacles.HazardEvery,
		SecondPlayer:     c.Players.SecondPlayer,
		AICount:          c.Players.AICount,
		Words:            set,
		SpawnMargin:      c.Spawn.Margin,
		MaxAttempts:      c.Spawn.MaxAttempts,
	}, nil
}

// FitBoard shrinks the board so it fits into a terminal of cols x rows
// characters, where each cell takes cellW columns and reserved rows are kept
// for the HUD. The board never grows and keeps at least 8x6 cells.
func (c *WordSnakeConfig) FitBoard(cols, rows, cellW, reserved int) {
	if !c.Board.FitTerminal || cols <= 0 || rows <= 0 || cellW <= 0 {
		return
	}
	cs := c.Board.CellSize
	maxCols := max((cols-2)/cellW, 8)
	maxRows := max(rows-reserved-2, 6)
	c.Board.Width = min(c.Board.Width, maxCols*cs)
	c.Board.Height = min(c.Board.Height, maxRows*cs)
}
