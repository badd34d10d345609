package render

import (
	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/vmath"
)

// MeshVertex is a screen-space vertex with a unit color
type MeshVertex struct {
	X, Y    float32
	R, G, B float32
}

// Mesh is a triangle list for GPU frontends
type Mesh struct {
	Vertices []MeshVertex
	Indices  []uint16
}

// Reset empties the mesh, keeping capacity
func (m *Mesh) Reset() {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
}

// AppendQuads triangulates each 4-vertex info as (0,1,2) + (1,2,3) in screen space
// Infos with a different vertex count are skipped
func (m *Mesh) AppendQuads(infos []component.RenderInfo, v *Viewport) {
	for _, info := range infos {
		if len(info.Vertices) != 4 {
			continue
		}
		base := uint16(len(m.Vertices))
		r, g, b := info.Color.Unit()
		for _, p := range info.Vertices {
			x, y := v.ToScreen(p)
			m.Vertices = append(m.Vertices, MeshVertex{X: float32(x), Y: float32(y), R: r, G: g, B: b})
		}
		for _, i := range vmath.QuadIndices {
			m.Indices = append(m.Indices, base+i)
		}
	}
}
