package component

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/arena/core"
)

// RenderShapeComponent describes the drawn silhouette of an entity
type RenderShapeComponent struct {
	Color       core.RGB
	HalfExtents mgl64.Vec2
}

// RenderInfo is one render primitive produced per tick: an ordered polygon and a fill color
type RenderInfo struct {
	Vertices []mgl64.Vec2 `msgpack:"v"`
	Color    core.RGB     `msgpack:"c"`
}
