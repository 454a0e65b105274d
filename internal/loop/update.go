package loop

import "github.com/tomz197/spaaace/internal/object"

// Update advances the world by dt seconds. Phases run in order: clock, cull,
// spawn, player, other entities, collisions. keys is only read.
func (w *World) Update(dt float64, keys object.Input) {
	w.time += dt

	w.cullOutOfBounds()

	ctx := object.UpdateContext{
		Delta:   dt,
		Now:     w.time,
		Input:   keys,
		Arena:   w.arena,
		Metrics: w.metrics,
		Spawner: w,
	}

	w.spawner.Update(ctx)
	w.FlushSpawned()

	w.player.Update(ctx)
	w.FlushSpawned()

	ctx.Player = w.player.Position
	w.updateEntities(ctx)
	w.FlushSpawned()

	w.resolveCollisions()
}

// LastEnemySpawnAt returns the simulation time of the most recent enemy spawn.
func (w *World) LastEnemySpawnAt() float64 {
	return w.spawner.LastSpawnAt()
}

// cullOutOfBounds removes entities that drifted too far outside the arena.
// The player is kept inside the arena by clamping and is never culled.
func (w *World) cullOutOfBounds() {
	kept := w.entities[:0] // reuse backing array
	for _, e := range w.entities {
		if e != w.player && w.arena.Beyond(e.Position, w.offscreen) {
			continue
		}
		kept = append(kept, e)
	}
	clear(w.entities[len(kept):])
	w.entities = kept
}

// updateEntities moves every non-player entity and lets enemies fire.
// Projectiles fired here are queued, so they first move on the next tick.
func (w *World) updateEntities(ctx object.UpdateContext) {
	for _, e := range w.entities {
		if e == w.player {
			continue
		}
		e.Update(ctx)
	}
}
