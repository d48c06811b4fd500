package engine

import (
	"github.com/vovakirdan/wordsnake/internal/grid"
	"github.com/vovakirdan/wordsnake/internal/hazard"
	"github.com/vovakirdan/wordsnake/internal/spawn"
	"github.com/vovakirdan/wordsnake/internal/words"
)

// ObstacleScaler decides how many obstacles a word cycle gets from the
// leading human score.
type ObstacleScaler interface {
	ObstacleCount(leading int) int
}

// LinearScaler grows the obstacle count by one every Step points.
// Max <= 0 means uncapped.
type LinearScaler struct {
	Base int
	Step int
	Max  int
}

// ObstacleCount returns Base + leading/Step, capped by Max.
func (s LinearScaler) ObstacleCount(leading int) int {
	n := s.Base
	if s.Step > 0 {
		n += leading / s.Step
	}
	if s.Max > 0 && n > s.Max {
		n = s.Max
	}
	return max(n, 0)
}

// Config parameterizes a World.
type Config struct {
	Bounds grid.Bounds

	PickupReward    int
	CompletionBonus int
	FreezeTicks     int // AI freeze after a rival completes a word
	SlowTicks       int // human slowdown after an AI completes a word
	LettersPerChar  int

	ObstaclesEnabled bool
	ObstacleKinds    []spawn.Kind
	Scaler           ObstacleScaler
	HazardEvery      int

	SecondPlayer bool
	AICount      int

	Words       *words.Set
	SpawnMargin int
	MaxAttempts int
}

// DefaultConfig returns the single-player rules over the built-in word set.
func DefaultConfig() Config {
	set, _ := words.NewSet(words.KnownWords, 3)
	return Config{
		Bounds:           grid.NewBounds(40, 24, 20),
		PickupReward:     1,
		CompletionBonus:  3,
		FreezeTicks:      40,
		SlowTicks:        10,
		LettersPerChar:   3,
		ObstaclesEnabled: true,
		ObstacleKinds:    spawn.AllKinds,
		Scaler:           LinearScaler{Base: 5, Step: 5},
		HazardEvery:      hazard.DefaultEvery,
		AICount:          1,
		Words:            set,
		SpawnMargin:      2,
		MaxAttempts:      spawn.DefaultMaxAttempts,
	}
}
