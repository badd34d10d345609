package component

// VelocityComponent is a scalar speed applied along the entity's current rotation
type VelocityComponent struct {
	Speed float64 // Units per tick
}
