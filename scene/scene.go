// Package scene instantiates configured entities into a world
package scene

import (
	"fmt"
	"log"

	"github.com/lixenwraith/arena/collision"
	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/config"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/engine"
)

// Populate creates one entity per spec and returns them in declaration order
// Hitbox geometry with identical extents shares a single arena shape
func Populate(w *engine.World, shapes *collision.ShapeArena, specs []config.EntitySpec) ([]core.Entity, error) {
	shared := make(map[[2]float64]collision.ShapeID)
	entities := make([]core.Entity, 0, len(specs))

	for i, spec := range specs {
		tags, err := spec.ParseTags()
		if err != nil {
			return nil, fmt.Errorf("entity %d (%s): %w", i, spec.Name, err)
		}

		eb := w.NewEntity().Tag(tags)
		engine.With(eb, w.Components.Transformation, component.TransformationComponent{
			Location: spec.LocationVec(),
			Scale:    spec.ScaleVec(),
			Rotation: spec.Rotation,
		})
		if spec.Speed != 0 {
			engine.With(eb, w.Components.Velocity, component.VelocityComponent{Speed: spec.Speed})
		}
		engine.With(eb, w.Components.RenderShape, component.RenderShapeComponent{
			Color:       spec.RGB(),
			HalfExtents: spec.HalfExtentsVec(),
		})
		if spec.Hitbox {
			id, ok := shared[spec.HalfExtents]
			if !ok {
				id = shapes.Add(collision.NewCuboid(spec.HalfExtents[0], spec.HalfExtents[1]))
				shared[spec.HalfExtents] = id
			}
			engine.With(eb, w.Components.Hitbox, component.HitboxComponent{Shape: id})
		}

		e := eb.Build()
		entities = append(entities, e)
		log.Printf("scene: %s %v tags=%v at %v", spec.Name, e, tags, spec.Location)
	}

	return entities, nil
}
