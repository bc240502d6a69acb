package config

import (
	_ "embed"
)

//go:embed defaults/chomp.yaml
var defaultChompYAML []byte

// DefaultChompConfig returns the default chomp configuration.
func DefaultChompConfig() ChompConfig {
	return ChompConfig{
		Speeds: ChompSpeeds{
			Player:     6.0,
			Ghost:      4.5,
			Frightened: 3.0,
		},
		Timing: ChompTiming{
			ModeDuration:  20.0,
			EatenFailsafe: 15.0,
		},
		Scoring: ChompScoring{
			Dot:         10,
			PowerPellet: 50,
			GhostBase:   200,
		},
		Gameplay: ChompGameplay{
			Lives:           3,
			CollisionRadius: 0.7,
			Fruit:           true,
			FixedCurve:      false,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "chomp":
		return defaultChompYAML
	default:
		return nil
	}
}
