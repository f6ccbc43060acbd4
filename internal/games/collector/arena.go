package collector

import (
	"math/rand"

	"github.com/vovakirdan/the-collector/internal/config"
	"github.com/vovakirdan/the-collector/internal/core"
)

// MaxObstacles is the number of asteroid slots in the arena.
const MaxObstacles = 10

// Arena holds the live entities of a round: the ship, the crate, and a fixed
// set of asteroid slots filled in creation order. Slots are never freed during
// a round; asteroids that leave the field are moved back to the top instead.
type Arena struct {
	Player      Player
	Collectible Collectible

	slots [MaxObstacles]Obstacle
	count int

	rng *rand.Rand
	cfg *config.CollectorConfig
}

// NewArena creates an empty arena drawing positions from a seeded RNG.
func NewArena(seed int64, cfg *config.CollectorConfig) *Arena {
	return &Arena{
		rng: rand.New(rand.NewSource(seed)),
		cfg: cfg,
	}
}

// Reset clears all asteroids, reseeds the RNG and puts the ship at its start.
func (a *Arena) Reset(seed int64) {
	a.count = 0
	a.slots = [MaxObstacles]Obstacle{}
	a.rng = rand.New(rand.NewSource(seed))
	a.Player = Player{
		Pos:    core.V(a.cfg.Player.StartX, a.cfg.Player.StartY),
		Facing: DirUp,
	}
}

// Obstacles returns the occupied slots in creation order.
// The slice aliases arena storage.
func (a *Arena) Obstacles() []Obstacle {
	return a.slots[:a.count]
}

// ObstacleCount returns the number of occupied slots.
func (a *Arena) ObstacleCount() int {
	return a.count
}

// SpawnObstacle fills the next free slot with an asteroid at the top of the
// field. It is a silent no-op when every slot is taken.
func (a *Arena) SpawnObstacle() bool {
	if a.count >= MaxObstacles {
		return false
	}
	a.slots[a.count] = Obstacle{Pos: core.V(a.randomX(), a.cfg.Obstacles.SpawnY)}
	a.count++
	return true
}

// RespawnCollectible moves the crate to a random spot in the lower half of the
// field and picks a new variant.
func (a *Arena) RespawnCollectible() {
	minY, maxY := a.cfg.Collectible.MinY, a.cfg.Collectible.MaxY
	y := minY + a.rng.Intn(maxY-minY+1)
	a.Collectible = Collectible{
		Pos:     core.V(a.randomX(), float64(y)),
		Variant: Variant(a.rng.Intn(int(variantCount))),
	}
}

// AdvanceObstacles moves every asteroid down by the configured speed and sends
// any that fell below the wrap line back to the top at a new x.
func (a *Arena) AdvanceObstacles() {
	for i := range a.slots[:a.count] {
		o := &a.slots[i]
		o.Pos.Y -= a.cfg.Obstacles.Speed
		if o.Pos.Y < a.cfg.Obstacles.WrapY {
			o.Pos = core.V(a.randomX(), a.cfg.Obstacles.SpawnY)
		}
	}
}

// randomX returns an integer x in [-margin, margin].
func (a *Arena) randomX() float64 {
	m := a.cfg.Field.SpawnMargin
	return float64(a.rng.Intn(2*m+1) - m)
}
