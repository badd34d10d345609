package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/core"
)

// TestMeshAppendQuads verifies two triangles per quad with offset indices
func TestMeshAppendQuads(t *testing.T) {
	v := NewViewport(100, 100, 100, 100)
	var m Mesh
	m.AppendQuads([]component.RenderInfo{
		quad(mgl64.Vec2{10, 10}, mgl64.Vec2{5, 5}, core.RGBRed),
		{Vertices: []mgl64.Vec2{{0, 0}}, Color: core.RGBWhite},
		quad(mgl64.Vec2{50, 50}, mgl64.Vec2{1, 1}, core.RGBCyan),
	}, v)

	if len(m.Vertices) != 8 {
		t.Fatalf("Vertices = %d, want 8", len(m.Vertices))
	}
	want := []uint16{0, 1, 2, 1, 2, 3, 4, 5, 6, 5, 6, 7}
	if len(m.Indices) != len(want) {
		t.Fatalf("Indices = %v", m.Indices)
	}
	for i := range want {
		if m.Indices[i] != want[i] {
			t.Errorf("Indices = %v, want %v", m.Indices, want)
			break
		}
	}

	// (-5,+5) corner of the first quad: world (5,15) -> screen (5,85)
	if m.Vertices[0].X != 5 || m.Vertices[0].Y != 85 {
		t.Errorf("Vertex 0 = %+v", m.Vertices[0])
	}
	if m.Vertices[0].R != 1 || m.Vertices[0].G != 0 {
		t.Errorf("Vertex 0 color = %+v", m.Vertices[0])
	}
	if m.Vertices[4].G != 1 || m.Vertices[4].B != 1 {
		t.Errorf("Vertex 4 color = %+v", m.Vertices[4])
	}

	m.Reset()
	if len(m.Vertices) != 0 || len(m.Indices) != 0 {
		t.Error("Reset left data")
	}
}
