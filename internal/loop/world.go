// Package loop runs the simulation: the world state, its per-tick phases,
// collision resolution and the session driver that schedules updates and draws.
package loop

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/tomz197/spaaace/internal/asset"
	"github.com/tomz197/spaaace/internal/loop/config"
	"github.com/tomz197/spaaace/internal/object"
)

// WorldOptions configures a World. Zero fields use the defaults from config.
type WorldOptions struct {
	Arena          object.Arena
	Metrics        object.Metrics
	SpawnInterval  float64
	OffscreenSpace float64
	Rand           *rand.Rand
	Logger         *zap.Logger
}

// World owns every entity, the simulation clock and the enemy spawner.
// It is not safe for concurrent use; Session serializes access.
type World struct {
	entities []*object.Entity
	toSpawn  []*object.Entity // Entities to add after the current phase
	toRemove map[object.EntityID]struct{}
	player   *object.Entity
	nextID   object.EntityID

	time      float64
	arena     object.Arena
	spawner   *object.EnemySpawner
	metrics   object.Metrics
	offscreen float64
	log       *zap.Logger
}

var (
	_ object.Spawner = (*World)(nil)
	_ object.View    = (*World)(nil)
)

// NewWorld creates a world at time zero holding only the player.
func NewWorld(opts WorldOptions) *World {
	if opts.Arena.Width <= 0 || opts.Arena.Height <= 0 {
		opts.Arena = object.Arena{Width: config.ArenaWidth, Height: config.ArenaHeight}
	}
	if opts.Metrics == nil {
		opts.Metrics = asset.DefaultSheet()
	}
	if opts.SpawnInterval == 0 {
		opts.SpawnInterval = config.EnemySpawnInterval
	}
	if opts.OffscreenSpace == 0 {
		opts.OffscreenSpace = config.OffscreenSpace
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	w := &World{
		toRemove:  make(map[object.EntityID]struct{}),
		arena:     opts.Arena,
		spawner:   object.NewEnemySpawner(opts.SpawnInterval, opts.Rand),
		metrics:   opts.Metrics,
		offscreen: opts.OffscreenSpace,
		log:       opts.Logger,
	}
	w.reset()
	return w
}

// Time returns the simulation clock in seconds.
func (w *World) Time() float64 {
	return w.time
}

// Arena returns the current arena bounds.
func (w *World) Arena() object.Arena {
	return w.arena
}

// SetArena changes the arena bounds. Clamping and culling use the new
// bounds from the next tick on.
func (w *World) SetArena(a object.Arena) {
	if a.Width > 0 && a.Height > 0 {
		w.arena = a
	}
}

// Player returns a copy of the player entity.
func (w *World) Player() object.Entity {
	return *w.player
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.entities)
}

// Entities returns copies of all live entities in insertion order.
func (w *World) Entities() []object.Entity {
	out := make([]object.Entity, len(w.entities))
	for i, e := range w.entities {
		out[i] = *e
	}
	return out
}

// Visit calls fn with every projectile, then with every other entity.
func (w *World) Visit(fn func(object.Entity)) {
	for _, e := range w.entities {
		if e.Category() == object.CategoryProjectile {
			fn(*e)
		}
	}
	for _, e := range w.entities {
		if e.Category() != object.CategoryProjectile {
			fn(*e)
		}
	}
}

// Spawn queues an entity to be added after the current phase.
// Implements object.Spawner.
func (w *World) Spawn(e *object.Entity) {
	w.nextID++
	e.ID = w.nextID
	w.toSpawn = append(w.toSpawn, e)

	if e.Category() == object.CategoryEnemy {
		w.log.Debug("spawn enemy",
			zap.Stringer("kind", e.Kind),
			zap.Float64("x", e.Position.X),
			zap.Float64("y", e.Position.Y),
			zap.Float64("time", w.time),
		)
	}
}

// FlushSpawned adds all queued entities to the world and clears the queue.
func (w *World) FlushSpawned() {
	w.entities = append(w.entities, w.toSpawn...)
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]
}

// reset clears the world and places a fresh player in the middle of the arena.
// The clock and spawn timer keep running.
func (w *World) reset() {
	clear(w.entities)
	w.entities = w.entities[:0]
	clear(w.toSpawn)
	w.toSpawn = w.toSpawn[:0]
	clear(w.toRemove)

	player := object.NewEntity(object.KindPlayer, w.arena.Center(), w.time)
	w.Spawn(player)
	w.FlushSpawned()
	w.player = player
}

// killPlayer handles player death: there is no game over, the world restarts.
func (w *World) killPlayer(by object.Kind) {
	w.log.Info("player destroyed",
		zap.Stringer("by", by),
		zap.Float64("time", w.time),
		zap.Int("entities", len(w.entities)),
	)
	w.reset()
}
