package object

import (
	"fmt"

	"github.com/tomz197/spaaace/internal/physics"
)

// Category is the broad class of an entity.
type Category int

const (
	CategoryPlayer Category = iota
	CategoryEnemy
	CategoryProjectile
)

func (c Category) String() string {
	switch c {
	case CategoryPlayer:
		return "player"
	case CategoryEnemy:
		return "enemy"
	case CategoryProjectile:
		return "projectile"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Kind identifies the concrete variant of an entity. It selects speed,
// cooldown, homing and the sprite.
type Kind int

const (
	KindPlayer Kind = iota
	KindShip1
	KindShip2
	KindShip3
	KindShip4
	KindPlayerProjectile
	KindEnemyProjectile

	kindCount
)

// traits is the per-kind rule table.
type traits struct {
	name     string
	category Category
	speed    float64 // Units per second
	cooldown float64 // Seconds between shots, 0 if the kind never fires
	homing   bool    // Steps horizontally toward the player each tick
	heading  float64 // Vertical direction for straight movers: -1 up, +1 down
}

var kindTraits = [kindCount]traits{
	KindPlayer:           {name: "player", category: CategoryPlayer, speed: 150, cooldown: 0.2},
	KindShip1:            {name: "ship1", category: CategoryEnemy, speed: 30, cooldown: 1, heading: 1},
	KindShip2:            {name: "ship2", category: CategoryEnemy, speed: 50, cooldown: 1, heading: 1, homing: true},
	KindShip3:            {name: "ship3", category: CategoryEnemy, speed: 60, cooldown: 1, heading: 1, homing: true},
	KindShip4:            {name: "ship4", category: CategoryEnemy, speed: 40, cooldown: 1, heading: 1},
	KindPlayerProjectile: {name: "player_projectile", category: CategoryProjectile, speed: 200, heading: -1},
	KindEnemyProjectile:  {name: "enemy_projectile", category: CategoryProjectile, speed: 200, heading: 1},
}

// EnemyKinds lists the kinds the spawner picks from.
var EnemyKinds = []Kind{KindShip1, KindShip2, KindShip3, KindShip4}

// Kinds returns every valid kind.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount)
	for k := Kind(0); k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// ParseKind looks a kind up by its name (as used in config files).
func ParseKind(name string) (Kind, bool) {
	for k := Kind(0); k < kindCount; k++ {
		if kindTraits[k].name == name {
			return k, true
		}
	}
	return 0, false
}

func (k Kind) valid() bool { return k >= 0 && k < kindCount }

func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindTraits[k].name
}

// Category returns the class the kind belongs to.
func (k Kind) Category() Category { return kindTraits[k].category }

// Speed returns the movement speed in units per second.
func (k Kind) Speed() float64 { return kindTraits[k].speed }

// Cooldown returns the minimum seconds between two shots.
func (k Kind) Cooldown() float64 { return kindTraits[k].cooldown }

// Homing reports whether the kind steers toward the player.
func (k Kind) Homing() bool { return kindTraits[k].homing }

// ProjectileFor returns the projectile kind fired by an entity of category c.
func ProjectileFor(c Category) Kind {
	if c == CategoryPlayer {
		return KindPlayerProjectile
	}
	return KindEnemyProjectile
}

// EntityID is a handle assigned by the world when an entity is added.
type EntityID uint64

// Entity is a game object: the player, an enemy ship, or a projectile.
type Entity struct {
	ID         EntityID
	Kind       Kind
	Position   physics.Vector2d // Center
	LastShotAt float64          // Simulation time of the last shot (or of creation)
}

// NewEntity creates an entity of kind k at pos. now becomes its LastShotAt.
func NewEntity(k Kind, pos physics.Vector2d, now float64) *Entity {
	return &Entity{
		Kind:       k,
		Position:   pos,
		LastShotAt: now,
	}
}

// Category is a shorthand for e.Kind.Category().
func (e *Entity) Category() Category {
	return e.Kind.Category()
}

func (e *Entity) String() string {
	return fmt.Sprintf("%s#%d at %s", e.Kind, e.ID, e.Position)
}
