package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// QuadIndices triangulates a 4-vertex quad emitted by BoxCorners
// Triangles share the 1-2 diagonal
var QuadIndices = [6]uint16{0, 1, 2, 1, 2, 3}

// Heading returns the unit vector for an angle in radians
func Heading(rotation float64) mgl64.Vec2 {
	sin, cos := math.Sincos(rotation)
	return mgl64.Vec2{cos, sin}
}

// Advance moves location by speed along heading
func Advance(location mgl64.Vec2, rotation, speed float64) mgl64.Vec2 {
	return location.Add(Heading(rotation).Mul(speed))
}

// BoxCorners returns the four corners of an axis-aligned box
// Order: (-x,+y), (-x,-y), (+x,+y), (+x,-y)
func BoxCorners(center, half mgl64.Vec2) [4]mgl64.Vec2 {
	hx, hy := half.X(), half.Y()
	return [4]mgl64.Vec2{
		center.Add(mgl64.Vec2{-hx, hy}),
		center.Sub(mgl64.Vec2{hx, hy}),
		center.Add(mgl64.Vec2{hx, hy}),
		center.Add(mgl64.Vec2{hx, -hy}),
	}
}

// Bounds returns the min and max corners of a vertex set
func Bounds(vertices []mgl64.Vec2) (lo, hi mgl64.Vec2) {
	if len(vertices) == 0 {
		return
	}
	lo, hi = vertices[0], vertices[0]
	for _, v := range vertices[1:] {
		lo = mgl64.Vec2{math.Min(lo.X(), v.X()), math.Min(lo.Y(), v.Y())}
		hi = mgl64.Vec2{math.Max(hi.X(), v.X()), math.Max(hi.Y(), v.Y())}
	}
	return lo, hi
}
