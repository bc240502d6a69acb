// Package config provides YAML-based game configuration loading and
// difficulty management for the chomp arcade.
package config

// ChompConfig contains all configuration for the chomp maze-chase game.
type ChompConfig struct {
	Speeds   ChompSpeeds   `yaml:"speeds"`
	Timing   ChompTiming   `yaml:"timing"`
	Scoring  ChompScoring  `yaml:"scoring"`
	Gameplay ChompGameplay `yaml:"gameplay"`
}

// ChompSpeeds defines agent base speeds in tiles per second. Ghost and
// frightened speeds are further scaled per level by the difficulty curve.
type ChompSpeeds struct {
	Player     float64 `yaml:"player"`
	Ghost      float64 `yaml:"ghost"`
	Frightened float64 `yaml:"frightened"`
}

// ChompTiming defines global behavior timers in seconds.
type ChompTiming struct {
	ModeDuration  float64 `yaml:"mode_duration"`  // scatter/chase alternation period
	EatenFailsafe float64 `yaml:"eaten_failsafe"` // max return time for an eaten ghost
}

// ChompScoring defines point values.
type ChompScoring struct {
	Dot         int `yaml:"dot"`
	PowerPellet int `yaml:"power_pellet"`
	GhostBase   int `yaml:"ghost_base"` // doubles per ghost within one frightened window
}

// ChompGameplay defines the remaining gameplay knobs.
type ChompGameplay struct {
	Lives           int     `yaml:"lives"`
	CollisionRadius float64 `yaml:"collision_radius"`
	Fruit           bool    `yaml:"fruit"`
	FixedCurve      bool    `yaml:"fixed_curve"` // freeze difficulty at level-1 values
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyChompPreset modifies the config based on a difficulty preset.
func ApplyChompPreset(cfg *ChompConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Speeds.Ghost = 4.0
		cfg.Timing.ModeDuration = 15.0
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Speeds.Ghost = 5.0
		cfg.Timing.ModeDuration = 25.0
	case DifficultyFixed:
		cfg.Gameplay.FixedCurve = true
	}
}
