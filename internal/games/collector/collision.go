package collector

import (
	"math"

	"github.com/vovakirdan/the-collector/internal/config"
)

// State is the mutable state of one round. It is owned by Game and handed by
// pointer to the collision engine from both the tick and the key handler.
type State struct {
	Arena     *Arena
	Score     int
	HighScore int
	Terminal  bool
	Ticks     int
}

// Rules are the fixed thresholds the collision engine checks against.
type Rules struct {
	Radius   float64 // Proximity radius for every entity pair
	Boundary float64 // Ship is lost beyond |x| or |y| of this
}

// RulesFrom extracts the collision rules from a round configuration.
func RulesFrom(cfg config.CollectorConfig) Rules {
	return Rules{
		Radius:   cfg.Collision.Radius,
		Boundary: cfg.Field.Boundary,
	}
}

// Outcome reports what a single evaluation detected.
type Outcome struct {
	PickedUp    bool
	Spawned     bool // A new asteroid took a free slot after the pickup
	Hits        int  // Asteroids within the radius
	OutOfBounds bool
}

// Terminal reports whether the evaluation ended the round.
func (o Outcome) Terminal() bool {
	return o.Hits > 0 || o.OutOfBounds
}

// EvaluateCollisions applies the pickup, hazard and boundary rules once.
// A state that is already terminal is left untouched.
func EvaluateCollisions(s *State, r Rules) Outcome {
	var out Outcome
	if s.Terminal {
		return out
	}

	a := s.Arena
	ship := a.Player.Pos

	if ship.Within(a.Collectible.Pos, r.Radius) {
		s.Score++
		a.RespawnCollectible()
		out.PickedUp = true
		out.Spawned = a.SpawnObstacle()
	}

	// Every asteroid is checked, even after a hit.
	for _, o := range a.Obstacles() {
		if ship.Within(o.Pos, r.Radius) {
			out.Hits++
		}
	}

	if math.Abs(ship.X) > r.Boundary || math.Abs(ship.Y) > r.Boundary {
		out.OutOfBounds = true
	}

	if out.Terminal() {
		s.Terminal = true
	}
	return out
}
