package loop

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/tomz197/spaaace/internal/asset"
	"github.com/tomz197/spaaace/internal/input"
	"github.com/tomz197/spaaace/internal/object"
	"github.com/tomz197/spaaace/internal/physics"
)

// noSpawn keeps the enemy spawner quiet for the length of a test.
const noSpawn = 1e9

func newTestWorld(t *testing.T, spawnInterval float64) *World {
	t.Helper()
	return NewWorld(WorldOptions{
		Arena:         object.Arena{Width: 800, Height: 600},
		Metrics:       asset.DefaultSheet(),
		SpawnInterval: spawnInterval,
		Rand:          rand.New(rand.NewPCG(1, 2)),
		Logger:        zaptest.NewLogger(t),
	})
}

// place adds an entity to the world immediately.
func place(w *World, k object.Kind, x, y float64) *object.Entity {
	e := object.NewEntity(k, physics.Vec(x, y), w.time)
	w.Spawn(e)
	w.FlushSpawned()
	return e
}

func ids(w *World) []object.EntityID {
	out := make([]object.EntityID, 0, w.Len())
	for _, e := range w.entities {
		out = append(out, e.ID)
	}
	return out
}

func countCategory(w *World, c object.Category) int {
	n := 0
	for _, e := range w.entities {
		if e.Category() == c {
			n++
		}
	}
	return n
}

func TestNewWorldHoldsCenteredPlayer(t *testing.T) {
	w := newTestWorld(t, noSpawn)

	require.Equal(t, 1, w.Len())
	p := w.Player()
	assert.Equal(t, object.KindPlayer, p.Kind)
	assert.Equal(t, physics.Vec(400, 300), p.Position)
	assert.Zero(t, w.Time())
}

func TestNewWorldDefaults(t *testing.T) {
	w := NewWorld(WorldOptions{})
	assert.Equal(t, object.Arena{Width: 800, Height: 600}, w.Arena())
	assert.Equal(t, physics.Vec(400, 300), w.Player().Position)
}

func TestSetArenaIgnoresEmptyBounds(t *testing.T) {
	w := newTestWorld(t, noSpawn)

	w.SetArena(object.Arena{Width: 0, Height: 100})
	assert.Equal(t, object.Arena{Width: 800, Height: 600}, w.Arena())

	w.SetArena(object.Arena{Width: 400, Height: 300})
	assert.Equal(t, object.Arena{Width: 400, Height: 300}, w.Arena())
}

func TestPlayerClampedAfterArenaShrinks(t *testing.T) {
	w := newTestWorld(t, noSpawn)
	w.SetArena(object.Arena{Width: 200, Height: 100})

	w.Update(0.016, nil)

	assert.Equal(t, physics.Vec(175, 80), w.Player().Position)
}

func TestPlayerStaysInArenaUnderHugeDelta(t *testing.T) {
	w := newTestWorld(t, noSpawn)

	w.Update(1e6, input.NewSet(input.Down, input.Right))
	assert.Equal(t, physics.Vec(775, 580), w.Player().Position)

	w.Update(1e6, input.NewSet(input.Up, input.Left))
	assert.Equal(t, physics.Vec(25, 20), w.Player().Position)
}

func TestPlayerIsNeverCulled(t *testing.T) {
	w := newTestWorld(t, noSpawn)
	w.player.Position = physics.Vec(5000, -5000)

	w.Update(0.016, nil)

	require.Equal(t, 1, w.Len())
	assert.Equal(t, physics.Vec(775, 20), w.Player().Position)
}

func TestCullOutOfBounds(t *testing.T) {
	w := newTestWorld(t, noSpawn)
	gone := place(w, object.KindEnemyProjectile, 1001, 300)
	edge := place(w, object.KindEnemyProjectile, 1000, 300)
	above := place(w, object.KindShip1, 400, -201)
	kept := place(w, object.KindShip1, 400, -200)

	w.Update(0.01, nil)

	got := ids(w)
	assert.NotContains(t, got, gone.ID)
	assert.NotContains(t, got, above.ID)
	assert.Contains(t, got, edge.ID)
	assert.Contains(t, got, kept.ID)
}

func TestEnemySpawnTiming(t *testing.T) {
	w := newTestWorld(t, 3)

	for range 6 {
		w.Update(0.5, nil)
		assert.Zero(t, countCategory(w, object.CategoryEnemy), "time %g", w.Time())
	}

	w.Update(0.5, nil)
	require.Equal(t, 1, countCategory(w, object.CategoryEnemy))
	assert.Equal(t, 3.5, w.LastEnemySpawnAt())

	for _, e := range w.entities {
		if e.Category() == object.CategoryEnemy {
			assert.Contains(t, object.EnemyKinds, e.Kind)
			assert.GreaterOrEqual(t, e.Position.X, 0.0)
			assert.Less(t, e.Position.X, 800.0)
		}
	}
}

func TestLongTickSpawnsOneEnemy(t *testing.T) {
	w := newTestWorld(t, 3)

	w.Update(100, nil)

	assert.Equal(t, 1, countCategory(w, object.CategoryEnemy))
}

func TestPlayerProjectileMovesOnTheTickItIsFired(t *testing.T) {
	w := newTestWorld(t, noSpawn)
	enemy := place(w, object.KindShip1, 100, 100)

	w.Update(1.5, input.NewSet(input.Fire))

	var player, fromEnemy []object.Entity
	for _, e := range w.Entities() {
		switch e.Kind {
		case object.KindPlayerProjectile:
			player = append(player, e)
		case object.KindEnemyProjectile:
			fromEnemy = append(fromEnemy, e)
		}
	}

	require.Len(t, player, 1)
	assert.Equal(t, physics.Vec(400, 0), player[0].Position)

	// Fired during the entity phase, so it has not moved yet.
	require.Len(t, fromEnemy, 1)
	assert.Equal(t, physics.Vec(100, 145), fromEnemy[0].Position)
	assert.Equal(t, physics.Vec(100, 145), enemy.Position)
}

func TestEnemyFireSpacing(t *testing.T) {
	w := newTestWorld(t, noSpawn)
	place(w, object.KindShip1, 100, 100)

	seen := make(map[object.EntityID]bool)
	var shots []float64
	for range 600 {
		w.Update(1.0/60, nil)
		for _, e := range w.entities {
			if e.Kind == object.KindEnemyProjectile && !seen[e.ID] {
				seen[e.ID] = true
				shots = append(shots, e.LastShotAt)
			}
		}
	}

	require.GreaterOrEqual(t, len(shots), 8)
	for i := 1; i < len(shots); i++ {
		assert.GreaterOrEqual(t, shots[i]-shots[i-1], object.KindShip1.Cooldown())
	}
}

func TestVisitDrawsProjectilesFirst(t *testing.T) {
	w := newTestWorld(t, noSpawn)
	place(w, object.KindShip1, 100, 100)
	place(w, object.KindPlayerProjectile, 200, 100)
	place(w, object.KindShip2, 300, 100)
	place(w, object.KindEnemyProjectile, 400, 100)

	var kinds []object.Kind
	w.Visit(func(e object.Entity) { kinds = append(kinds, e.Kind) })

	assert.Equal(t, []object.Kind{
		object.KindPlayerProjectile,
		object.KindEnemyProjectile,
		object.KindPlayer,
		object.KindShip1,
		object.KindShip2,
	}, kinds)
}

func TestEntitiesReturnsCopies(t *testing.T) {
	w := newTestWorld(t, noSpawn)

	es := w.Entities()
	es[0].Position = physics.Vec(-1, -1)

	assert.Equal(t, physics.Vec(400, 300), w.Player().Position)
}

func TestSpawnAssignsUniqueIDs(t *testing.T) {
	w := newTestWorld(t, noSpawn)
	a := place(w, object.KindShip1, 0, 0)
	b := place(w, object.KindShip1, 0, 0)

	assert.NotEqual(t, a.ID, b.ID)
	assert.NotEqual(t, w.Player().ID, a.ID)
}
