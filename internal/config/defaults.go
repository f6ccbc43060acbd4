package config

import (
	_ "embed"
)

//go:embed defaults/collector.yaml
var defaultCollectorYAML []byte

// DefaultCollectorConfig returns the built-in configuration.
func DefaultCollectorConfig() CollectorConfig {
	return CollectorConfig{
		Field: FieldConfig{
			Boundary:    290,
			Border:      300,
			SpawnMargin: 280,
		},
		Player: PlayerConfig{
			Step:   10,
			StartX: 0,
			StartY: -250,
		},
		Collectible: CollectibleConfig{
			MinY: -250,
			MaxY: 0,
		},
		Obstacles: ObstacleConfig{
			Speed:  2,
			SpawnY: 300,
			WrapY:  -300,
		},
		Collision: CollisionConfig{
			Radius: 20,
		},
		Timing: TimingConfig{
			TickMillis: 10,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCollectorYAML
}
