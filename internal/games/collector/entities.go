package collector

import "github.com/vovakirdan/the-collector/internal/core"

// Direction is the ship's facing.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Unit returns the unit displacement for the direction.
func (d Direction) Unit() core.Vec {
	switch d {
	case DirUp:
		return core.V(0, 1)
	case DirDown:
		return core.V(0, -1)
	case DirLeft:
		return core.V(-1, 0)
	case DirRight:
		return core.V(1, 0)
	}
	return core.Vec{}
}

// DirectionFor maps a movement action to a direction.
func DirectionFor(a core.Action) (Direction, bool) {
	switch a {
	case core.ActionUp:
		return DirUp, true
	case core.ActionDown:
		return DirDown, true
	case core.ActionLeft:
		return DirLeft, true
	case core.ActionRight:
		return DirRight, true
	}
	return 0, false
}

// Player is the ship. It is never destroyed during a round.
type Player struct {
	Pos    core.Vec
	Facing Direction
}

// Variant selects which crate sprite a collectible uses.
type Variant int

const (
	VariantCrateA Variant = iota
	VariantCrateB
	variantCount
)

// Collectible is the single crate on the field.
type Collectible struct {
	Pos     core.Vec
	Variant Variant
}

// Obstacle is a falling asteroid.
type Obstacle struct {
	Pos core.Vec
}
