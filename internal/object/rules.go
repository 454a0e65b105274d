package object

import (
	"github.com/tomz197/spaaace/internal/input"
	"github.com/tomz197/spaaace/internal/physics"
)

// directions maps the held direction inputs to unit vectors (y grows downward).
var directions = [...]struct {
	name string
	unit physics.Vector2d
}{
	{input.Up, physics.Vec(0, -1)},
	{input.Down, physics.Vec(0, 1)},
	{input.Left, physics.Vec(-1, 0)},
	{input.Right, physics.Vec(1, 0)},
}

// InputDirection sums the unit vectors of all held directions.
// Opposite directions cancel out. The result is not normalized.
func InputDirection(in Input) physics.Vector2d {
	var dir physics.Vector2d
	for _, d := range directions {
		if held(in, d.name) {
			dir = dir.Add(d.unit)
		}
	}
	return dir
}

func held(in Input, name string) bool {
	return in != nil && in.Held(name)
}

// Update applies the movement and firing rules of e's kind.
func (e *Entity) Update(ctx UpdateContext) {
	switch e.Category() {
	case CategoryPlayer:
		e.updatePlayer(ctx)
	case CategoryEnemy:
		e.updateEnemy(ctx)
	case CategoryProjectile:
		e.updateProjectile(ctx)
	}
}

// updatePlayer moves the ship from the held directions, keeps it inside the
// arena and fires while the fire input is held.
func (e *Entity) updatePlayer(ctx UpdateContext) {
	// Normalizing keeps diagonal movement as fast as axial movement.
	dir := InputDirection(ctx.Input).Normalize()
	e.Position = e.Position.Add(dir.Scale(e.Kind.Speed() * ctx.Delta))

	w, h := ctx.Metrics.Size(e.Kind)
	e.Position = ctx.Arena.Confine(e.Position, w, h)

	if held(ctx.Input, input.Fire) && e.CanFire(ctx.Now) {
		e.Fire(ctx)
	}
}

// updateEnemy moves the ship down the arena and fires whenever possible.
//
// Homing kinds also step sideways by the x component of the unit vector
// toward the player. The step is at most one unit per tick and ignores both
// Delta and Speed.
func (e *Entity) updateEnemy(ctx UpdateContext) {
	e.Position = e.Position.Add(physics.Vec(0, e.Kind.Speed()*ctx.Delta))

	if e.Kind.Homing() {
		toward := ctx.Player.Sub(e.Position).Normalize()
		e.Position = e.Position.Add(physics.Vec(toward.X, 0))
	}

	if e.CanFire(ctx.Now) {
		e.Fire(ctx)
	}
}

// updateProjectile moves the projectile along its fixed vertical heading.
func (e *Entity) updateProjectile(ctx UpdateContext) {
	dy := e.Kind.Speed() * ctx.Delta * kindTraits[e.Kind].heading
	e.Position = e.Position.Add(physics.Vec(0, dy))
}

// CanFire reports whether the cooldown since the last shot has elapsed.
func (e *Entity) CanFire(now float64) bool {
	return now > e.LastShotAt+e.Kind.Cooldown()
}

// Fire spawns a projectile at e's position and restarts its cooldown.
func (e *Entity) Fire(ctx UpdateContext) {
	if ctx.Spawner == nil {
		return
	}
	ctx.Spawner.Spawn(NewEntity(ProjectileFor(e.Category()), e.Position, ctx.Now))
	e.LastShotAt = ctx.Now
}
