// Package config centralizes all tunable game parameters.
package config

import "time"

// Arena - the default play area in logical units.
// Front ends may resize it every tick to follow the terminal.
const (
	ArenaWidth  = 800
	ArenaHeight = 600
)

// Spawning
const (
	EnemySpawnInterval = 3.0 // Seconds between enemies
)

// Culling
const (
	OffscreenSpace = 200.0 // Distance past an arena edge before an entity is removed
)

// Tick rate - ticks run once at least TickTime has elapsed.
const (
	TickRate     = 60
	TickTime     = time.Second / TickRate
	PollInterval = time.Millisecond // Sleep between elapsed-time checks
)
