package system

import (
	"log"

	"github.com/lixenwraith/arena/collision"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/engine"
)

// RegistrarSystem adds unregistered hitboxes to the collision index
// and records the handle on both the hitbox and the handle map
type RegistrarSystem struct {
	registered int
}

// NewRegistrarSystem creates the registrar
func NewRegistrarSystem() *RegistrarSystem {
	return &RegistrarSystem{}
}

func (s *RegistrarSystem) Name() string { return "registrar" }

func (s *RegistrarSystem) Access() engine.Access {
	return engine.Access{
		WriteComponents: engine.Components(engine.KindHitbox),
		ReadResources:   engine.Resources(engine.ResShapes),
		WriteResources:  engine.Resources(engine.ResHandleMap, engine.ResCollisionIndex),
	}
}

// Registered returns how many hitboxes this system has registered
func (s *RegistrarSystem) Registered() int {
	return s.registered
}

// Update registers each hitbox that has no handle yet at the identity pose
// Registered hitboxes are skipped, so repeated runs add nothing
func (s *RegistrarSystem) Update(ctx *engine.Context) {
	w := ctx.World()
	hitboxes := engine.WriteStore(ctx, w.Components.Hitbox)
	shapes := engine.Read[*engine.Shapes](ctx)
	index := engine.Write[*engine.CollisionIndex](ctx)
	handles := engine.Write[*engine.HandleMap](ctx)

	for e := range w.Query().With(hitboxes).Iter() {
		hb := hitboxes.GetMut(e)
		if hb.Registered() {
			continue
		}

		geom, ok := shapes.Get(hb.Shape)
		if !ok {
			core.Violation("hitbox shape", "%v references unknown shape %d", e, hb.Shape)
		}

		h := index.Add(geom, collision.Pose{})
		hb.Handle = h
		handles.Insert(h, e)
		s.registered++

		log.Printf("registrar: %v -> handle %d (tick %d)", e, h, ctx.Tick)
	}
}
