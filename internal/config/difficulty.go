package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
// Presets only choose the constant obstacle speed for a round.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty validates a preset name. An empty name keeps the config as loaded.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name), nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
}

// ObstacleSpeedForPreset returns the asteroid speed in units per tick.
func ObstacleSpeedForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyHard:
		return 3
	default:
		return 2
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *CollectorConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Obstacles.Speed = ObstacleSpeedForPreset(preset)
}
