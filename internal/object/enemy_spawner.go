package object

import (
	"math/rand/v2"

	"github.com/tomz197/spaaace/internal/physics"
)

// EnemySpawnOffset is how far above the top edge new enemies appear.
const EnemySpawnOffset = 100.0

// EnemySpawner adds a random enemy every interval seconds.
type EnemySpawner struct {
	interval    float64
	rng         *rand.Rand
	lastSpawnAt float64
}

// NewEnemySpawner creates a spawner that waits interval seconds between
// enemies and draws kinds and positions from rng.
func NewEnemySpawner(interval float64, rng *rand.Rand) *EnemySpawner {
	if interval < 0 {
		interval = 0
	}
	return &EnemySpawner{
		interval: interval,
		rng:      rng,
	}
}

// LastSpawnAt returns the simulation time of the most recent spawn.
func (s *EnemySpawner) LastSpawnAt() float64 {
	return s.lastSpawnAt
}

// Update spawns at most one enemy once the interval has elapsed.
// A long tick never produces more than one enemy.
func (s *EnemySpawner) Update(ctx UpdateContext) bool {
	if ctx.Now <= s.lastSpawnAt+s.interval || ctx.Spawner == nil {
		return false
	}

	kind := EnemyKinds[s.rng.IntN(len(EnemyKinds))]
	x := s.rng.Float64() * ctx.Arena.Width
	ctx.Spawner.Spawn(NewEntity(kind, physics.Vec(x, -EnemySpawnOffset), ctx.Now))

	s.lastSpawnAt = ctx.Now
	return true
}
