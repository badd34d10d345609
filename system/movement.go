package system

import (
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/vmath"
)

// MovementSystem advances every moving entity along its rotation
type MovementSystem struct{}

// NewMovementSystem creates the movement step
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Name() string { return "movement" }

func (s *MovementSystem) Access() engine.Access {
	return engine.Access{
		ReadComponents:  engine.Components(engine.KindVelocity),
		WriteComponents: engine.Components(engine.KindTransformation),
	}
}

// Update applies location += speed * (cos rotation, sin rotation)
func (s *MovementSystem) Update(ctx *engine.Context) {
	w := ctx.World()
	velocities := engine.ReadStore(ctx, w.Components.Velocity)
	transforms := engine.WriteStore(ctx, w.Components.Transformation)

	for e := range w.Query().With(velocities, transforms).Iter() {
		vel, _ := velocities.Get(e)
		tr := transforms.GetMut(e)
		tr.Location = vmath.Advance(tr.Location, tr.Rotation, vel.Speed)
	}
}
