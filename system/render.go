package system

import (
	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/vmath"
)

// RenderSystem rebuilds the render list from drawable entities
type RenderSystem struct{}

// NewRenderSystem creates the render dispatcher
func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

func (s *RenderSystem) Name() string { return "render" }

func (s *RenderSystem) Access() engine.Access {
	return engine.Access{
		ReadComponents: engine.Components(engine.KindTransformation, engine.KindRenderShape),
		WriteResources: engine.Resources(engine.ResRenderList),
	}
}

// Update replaces the render list with one quad per entity
// Corners are location +/- half extents; rotation and scale are not applied
func (s *RenderSystem) Update(ctx *engine.Context) {
	w := ctx.World()
	transforms := engine.ReadStore(ctx, w.Components.Transformation)
	shapes := engine.ReadStore(ctx, w.Components.RenderShape)
	list := engine.Write[*engine.RenderList](ctx)

	list.Reset()
	for e := range w.Query().With(transforms, shapes).Iter() {
		tr, _ := transforms.Get(e)
		rs, _ := shapes.Get(e)
		corners := vmath.BoxCorners(tr.Location, rs.HalfExtents)
		list.Infos = append(list.Infos, component.RenderInfo{
			Vertices: corners[:],
			Color:    rs.Color,
		})
	}
}
