package object

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnemySpawnerWaitsForInterval(t *testing.T) {
	s := NewEnemySpawner(3, rand.New(rand.NewPCG(1, 2)))

	for _, now := range []float64{0.5, 1, 2.9, 3} {
		ctx, c := newContext(0.5, now)
		assert.False(t, s.Update(ctx), "now %g", now)
		assert.Empty(t, c.spawned)
	}

	ctx, c := newContext(0.5, 3.01)
	require.True(t, s.Update(ctx))
	require.Len(t, c.spawned, 1)

	e := c.spawned[0]
	assert.Equal(t, CategoryEnemy, e.Category())
	assert.Equal(t, -EnemySpawnOffset, e.Position.Y)
	assert.Equal(t, 3.01, e.LastShotAt)
	assert.Equal(t, 3.01, s.LastSpawnAt())

	// The timer restarts from the spawn.
	ctx, c = newContext(0.5, 6)
	assert.False(t, s.Update(ctx))
	assert.Empty(t, c.spawned)
}

func TestEnemySpawnerNoCatchUp(t *testing.T) {
	s := NewEnemySpawner(3, rand.New(rand.NewPCG(1, 2)))

	ctx, c := newContext(100, 100)
	require.True(t, s.Update(ctx))
	assert.Len(t, c.spawned, 1)
}

func TestEnemySpawnerDistribution(t *testing.T) {
	const n = 8000
	s := NewEnemySpawner(0, rand.New(rand.NewPCG(7, 11)))

	counts := make(map[Kind]int)
	var sumX float64
	for i := 1; i <= n; i++ {
		ctx, c := newContext(1, float64(i))
		require.True(t, s.Update(ctx))
		e := c.spawned[0]

		counts[e.Kind]++
		assert.GreaterOrEqual(t, e.Position.X, 0.0)
		assert.Less(t, e.Position.X, ctx.Arena.Width)
		sumX += e.Position.X
	}

	require.Len(t, counts, len(EnemyKinds))
	for _, k := range EnemyKinds {
		assert.InDelta(t, n/4, counts[k], n/20, "kind %s", k)
	}
	assert.InDelta(t, 400, sumX/n, 20)
}
