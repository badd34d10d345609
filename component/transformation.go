package component

import "github.com/go-gl/mathgl/mgl64"

// TransformationComponent places an entity in the arena
type TransformationComponent struct {
	Location mgl64.Vec2
	Scale    mgl64.Vec2
	Rotation float64 // Radians, unbounded
}

// NewTransformation creates a transformation with unit scale
func NewTransformation(x, y, rotation float64) TransformationComponent {
	return TransformationComponent{
		Location: mgl64.Vec2{x, y},
		Scale:    mgl64.Vec2{1, 1},
		Rotation: rotation,
	}
}
