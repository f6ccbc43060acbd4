// Package config provides YAML-based game configuration loading and
// difficulty presets for The Collector.
package config

import "time"

// CollectorConfig contains all tunable parameters for a round.
type CollectorConfig struct {
	Field       FieldConfig       `yaml:"field"`
	Player      PlayerConfig      `yaml:"player"`
	Collectible CollectibleConfig `yaml:"collectible"`
	Obstacles   ObstacleConfig    `yaml:"obstacles"`
	Collision   CollisionConfig   `yaml:"collision"`
	Timing      TimingConfig      `yaml:"timing"`
}

// FieldConfig describes the square playing field, in world units from its center.
type FieldConfig struct {
	Boundary    float64 `yaml:"boundary"`     // Player loses when |x| or |y| exceeds this
	Border      float64 `yaml:"border"`       // Half-width of the drawn border
	SpawnMargin int     `yaml:"spawn_margin"` // Spawned x is drawn from [-margin, margin]
}

// PlayerConfig defines the ship.
type PlayerConfig struct {
	Step   float64 `yaml:"step"` // Distance moved per key press
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
}

// CollectibleConfig bounds the vertical respawn band of the crate.
type CollectibleConfig struct {
	MinY int `yaml:"min_y"`
	MaxY int `yaml:"max_y"`
}

// ObstacleConfig defines asteroid motion.
type ObstacleConfig struct {
	Speed  float64 `yaml:"speed"`   // Units moved downwards per tick
	SpawnY float64 `yaml:"spawn_y"` // Entry height at the top of the field
	WrapY  float64 `yaml:"wrap_y"`  // Obstacles below this height re-enter at SpawnY
}

// CollisionConfig holds the proximity radius shared by all entity pairs.
type CollisionConfig struct {
	Radius float64 `yaml:"radius"`
}

// TimingConfig controls the tick cadence.
type TimingConfig struct {
	TickMillis int `yaml:"tick_ms"`
}

// TickInterval returns the configured delay between ticks.
func (t TimingConfig) TickInterval() time.Duration {
	if t.TickMillis <= 0 {
		return 10 * time.Millisecond
	}
	return time.Duration(t.TickMillis) * time.Millisecond
}
