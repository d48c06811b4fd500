package config

import (
	_ "embed"

	"github.com/vovakirdan/wordsnake/internal/words"
)

//go:embed defaults/wordsnake.yaml
var defaultWordSnakeYAML []byte

// DefaultWordSnakeConfig returns the default word snake configuration.
func DefaultWordSnakeConfig() WordSnakeConfig {
	return WordSnakeConfig{
		Board: BoardConfig{
			Width:       800,
			Height:      480,
			CellSize:    20,
			FitTerminal: true,
		},
		Rules: RulesConfig{
			PickupReward:    1,
			CompletionBonus: 3,
			FreezeTicks:     40,
			SlowTicks:       10,
			LettersPerChar:  3,
		},
		Obstacles: ObstacleConfig{
			Enabled:     true,
			Scale:       true,
			BaseCount:   5,
			ScoreStep:   5,
			MaxCount:    0,
			HazardEvery: 5,
			Kinds:       []string{"water", "fire", "pit", "eagle"},
		},
		Players: PlayersConfig{
			SecondPlayer: false,
			AICount:      1,
		},
		Words: WordsConfig{
			List:      append([]string(nil), words.KnownWords...),
			Validate:  false,
			MinLength: 3,
		},
		Spawn: SpawnConfig{
			MaxAttempts: 1000,
			Margin:      2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultWordSnakeYAML
}
