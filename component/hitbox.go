package component

import "github.com/lixenwraith/arena/collision"

// HitboxComponent attaches shared collision geometry to an entity
// Handle caches the index key assigned on registration; the handle map is authoritative
type HitboxComponent struct {
	Shape  collision.ShapeID
	Handle collision.Handle // Zero until registered
}

// Registered reports whether the hitbox has been added to the collision index
func (h HitboxComponent) Registered() bool {
	return h.Handle.Valid()
}
