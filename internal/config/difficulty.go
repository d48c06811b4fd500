package config

// DifficultyManager derives the per-word obstacle count from the leading score.
type DifficultyManager struct {
	cfg ObstacleConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg ObstacleConfig) *DifficultyManager {
	return &DifficultyManager{cfg: cfg}
}

// IsEnabled returns whether the obstacle count grows with the score.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Scale && d.cfg.ScoreStep > 0
}

// ObstacleCount returns base_count plus one obstacle per score_step points of
// the leading score, capped by max_count when it is set.
func (d *DifficultyManager) ObstacleCount(leading int) int {
	n := d.cfg.BaseCount
	if d.IsEnabled() && leading > 0 {
		n += leading / d.cfg.ScoreStep
	}
	if d.cfg.MaxCount > 0 {
		n = min(n, d.cfg.MaxCount)
	}
	return max(n, 0)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *WordSnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.FreezeTicks = 50
		cfg.Rules.SlowTicks = 5
		cfg.Obstacles.Scale = true
		cfg.Obstacles.BaseCount = 3
		cfg.Obstacles.ScoreStep = 8
		cfg.Obstacles.HazardEvery = 8
		cfg.Players.AICount = 1
	case DifficultyHard:
		cfg.Rules.FreezeTicks = 30
		cfg.Rules.SlowTicks = 15
		cfg.Obstacles.Scale = true
		cfg.Obstacles.BaseCount = 8
		cfg.Obstacles.ScoreStep = 4
		cfg.Obstacles.HazardEvery = 3
		cfg.Players.AICount = max(cfg.Players.AICount, 2)
	case DifficultyFixed:
		cfg.Obstacles.Scale = false
	default:
		cfg.Obstacles.Scale = true
	}
}
