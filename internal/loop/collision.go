package loop

import (
	"github.com/tomz197/spaaace/internal/object"
	"github.com/tomz197/spaaace/internal/physics"
)

// outcome is the effect of two overlapping entities.
type outcome int

const (
	outcomeNone        outcome = iota
	outcomeDestroyBoth         // Both entities are removed
	outcomeReset               // The player dies and the world restarts
)

// collisionRules is keyed by the kind of the first entity of an ordered pair
// and the category of the second. Missing entries have no effect, so
// (enemy, player projectile) does nothing while (player projectile, enemy)
// destroys both.
var collisionRules = map[object.Kind]map[object.Category]outcome{
	object.KindPlayer: {
		object.CategoryEnemy: outcomeReset,
	},
	object.KindPlayerProjectile: {
		object.CategoryEnemy: outcomeDestroyBoth,
	},
	object.KindEnemyProjectile: {
		object.CategoryPlayer: outcomeReset,
	},
}

func ruleFor(a, b *object.Entity) outcome {
	return collisionRules[a.Kind][b.Category()]
}

// killer returns the kind that destroyed the player in pair (a, b).
func killer(a, b *object.Entity) object.Kind {
	if a.Category() == object.CategoryPlayer {
		return b.Kind
	}
	return a.Kind
}

// resolveCollisions checks every ordered pair of the entities alive at the
// start of the phase. Removals are deferred to the end of the phase, so an
// entity destroyed by one pair still takes part in later pairs; destroying it
// twice is harmless. A reset ends the phase.
func (w *World) resolveCollisions() {
	snapshot := w.entities
	boxes := make([]physics.Box, len(snapshot))
	for i, e := range snapshot {
		boxes[i] = object.Bounds(e, w.metrics)
	}

	clear(w.toRemove)

	for i, a := range snapshot {
		if collisionRules[a.Kind] == nil {
			continue
		}
		for j, b := range snapshot {
			if i == j {
				continue
			}
			rule := ruleFor(a, b)
			if rule == outcomeNone || !boxes[i].Overlaps(boxes[j]) {
				continue
			}

			switch rule {
			case outcomeReset:
				w.killPlayer(killer(a, b))
				return
			case outcomeDestroyBoth:
				w.toRemove[a.ID] = struct{}{}
				w.toRemove[b.ID] = struct{}{}
			}
		}
	}

	w.removeMarked()
}

// removeMarked compacts the entity list, dropping everything in toRemove.
func (w *World) removeMarked() {
	if len(w.toRemove) == 0 {
		return
	}
	kept := w.entities[:0]
	for _, e := range w.entities {
		if _, remove := w.toRemove[e.ID]; !remove {
			kept = append(kept, e)
		}
	}
	clear(w.entities[len(kept):])
	w.entities = kept
	clear(w.toRemove)
}
