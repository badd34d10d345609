package collision

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// Shape is immutable collision geometry shared by any number of hitboxes
type Shape interface {
	// Extents returns the half-extents of the shape's local bounding box
	Extents() mgl64.Vec2
	// attach builds the cp shape on body, inflated outward by radius
	attach(body *cp.Body, radius float64) *cp.Shape
}

// Cuboid is an axis-aligned box in local space described by half-extents
type Cuboid struct {
	HalfExtents mgl64.Vec2
}

// NewCuboid creates a box shape
func NewCuboid(halfX, halfY float64) Cuboid {
	return Cuboid{HalfExtents: mgl64.Vec2{halfX, halfY}}
}

func (c Cuboid) Extents() mgl64.Vec2 {
	return c.HalfExtents
}

func (c Cuboid) attach(body *cp.Body, radius float64) *cp.Shape {
	return cp.NewBox(body, 2*c.HalfExtents.X(), 2*c.HalfExtents.Y(), radius)
}

// ShapeID keys a shape in a ShapeArena, zero is invalid
type ShapeID uint32

// ShapeArena owns shared geometry; shapes are never mutated or removed once added
type ShapeArena struct {
	shapes []Shape
}

// NewShapeArena creates an empty arena
func NewShapeArena() *ShapeArena {
	return &ShapeArena{shapes: make([]Shape, 0, 16)}
}

// Add stores a shape and returns its key
func (a *ShapeArena) Add(s Shape) ShapeID {
	a.shapes = append(a.shapes, s)
	return ShapeID(len(a.shapes))
}

// Get returns the shape for id
func (a *ShapeArena) Get(id ShapeID) (Shape, bool) {
	if id == 0 || int(id) > len(a.shapes) {
		return nil, false
	}
	return a.shapes[id-1], true
}

// MustGet returns the shape for id or panics on an unknown key
func (a *ShapeArena) MustGet(id ShapeID) Shape {
	s, ok := a.Get(id)
	if !ok {
		panic(fmt.Sprintf("collision: unknown shape id %d", id))
	}
	return s
}

// Len returns the number of stored shapes
func (a *ShapeArena) Len() int {
	return len(a.shapes)
}
