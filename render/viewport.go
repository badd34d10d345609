// Package render draws arena render lists onto frontends and records them
package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/arena/vmath"
)

// Viewport maps world coordinates onto a screen grid
// World y grows upward; screen row 0 is the top
type Viewport struct {
	worldW, worldH float64
	cols, rows     int
}

// NewViewport creates a mapping of a worldW x worldH arena onto cols x rows units
func NewViewport(worldW, worldH float64, cols, rows int) *Viewport {
	return &Viewport{worldW: worldW, worldH: worldH, cols: cols, rows: rows}
}

// Resize changes the screen grid, keeping the world size
func (v *Viewport) Resize(cols, rows int) {
	v.cols, v.rows = cols, rows
}

// Size returns the screen grid size
func (v *Viewport) Size() (cols, rows int) {
	return v.cols, v.rows
}

func (v *Viewport) scale() (sx, sy float64) {
	if v.worldW <= 0 || v.worldH <= 0 {
		return 0, 0
	}
	return float64(v.cols) / v.worldW, float64(v.rows) / v.worldH
}

// ToScreen maps a world point to continuous screen coordinates
func (v *Viewport) ToScreen(p mgl64.Vec2) (x, y float64) {
	sx, sy := v.scale()
	return p.X() * sx, (v.worldH - p.Y()) * sy
}

// CellRect returns the inclusive cell rectangle covered by the vertices, clipped to the grid
// Any non-empty shape covers at least one cell; ok is false when nothing is visible
func (v *Viewport) CellRect(vertices []mgl64.Vec2) (x0, y0, x1, y1 int, ok bool) {
	if len(vertices) == 0 || v.cols <= 0 || v.rows <= 0 {
		return 0, 0, 0, 0, false
	}
	lo, hi := vmath.Bounds(vertices)
	left, top := v.ToScreen(mgl64.Vec2{lo.X(), hi.Y()})
	right, bottom := v.ToScreen(mgl64.Vec2{hi.X(), lo.Y()})

	x0 = int(math.Floor(left))
	y0 = int(math.Floor(top))
	x1 = max(x0, int(math.Ceil(right))-1)
	y1 = max(y0, int(math.Ceil(bottom))-1)

	if x1 < 0 || y1 < 0 || x0 >= v.cols || y0 >= v.rows {
		return 0, 0, 0, 0, false
	}
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, v.cols-1), min(y1, v.rows-1)
	return x0, y0, x1, y1, true
}
