// Package object defines the game entities and the per-kind rules they follow.
package object

import "github.com/tomz197/spaaace/internal/physics"

// Input is the read-only view of the held logical inputs.
type Input interface {
	Held(name string) bool
}

// Spawner allows entities to add new entities during update.
type Spawner interface {
	Spawn(e *Entity)
}

// Metrics reports the bounding width and height of a kind's sprite.
type Metrics interface {
	Size(k Kind) (w, h float64)
}

// Arena is the visible play area. The origin is the top-left corner.
type Arena struct {
	Width  float64
	Height float64
}

// Center returns the middle of the arena.
func (a Arena) Center() physics.Vector2d {
	return physics.Vec(a.Width/2, a.Height/2)
}

// Beyond reports whether p lies more than margin outside any arena edge.
func (a Arena) Beyond(p physics.Vector2d, margin float64) bool {
	return p.X < -margin ||
		p.X > a.Width+margin ||
		p.Y < -margin ||
		p.Y > a.Height+margin
}

// Confine clamps p so a w×h box centered on it stays inside the arena.
// Bounds are derived from the current arena size on every call.
func (a Arena) Confine(p physics.Vector2d, w, h float64) physics.Vector2d {
	return physics.Vector2d{
		X: physics.Clamp(p.X, w/2, a.Width-w/2),
		Y: physics.Clamp(p.Y, h/2, a.Height-h/2),
	}
}

// UpdateContext provides all the information an entity needs during update.
type UpdateContext struct {
	Delta   float64          // Seconds since the previous tick
	Now     float64          // Simulation clock after advancing by Delta
	Input   Input            // Held inputs (player only)
	Arena   Arena            // Current arena bounds
	Metrics Metrics          // Sprite sizes for clamping
	Player  physics.Vector2d // Player position, target for homing enemies
	Spawner Spawner
}

// Bounds returns the collision box of e.
func Bounds(e *Entity, m Metrics) physics.Box {
	w, h := m.Size(e.Kind)
	return physics.BoxAround(e.Position, w, h)
}


// View is a read-only view of the world for one draw pass.
type View interface {
	Arena() Arena
	// Visit calls fn for every entity, projectiles first so ships are drawn on top.
	Visit(fn func(Entity))
}
