package system

import (
	"github.com/lixenwraith/arena/collision"
	"github.com/lixenwraith/arena/engine"
)

// CollisionSystem syncs index poses from transforms and publishes this tick's entity pairs
type CollisionSystem struct{}

// NewCollisionSystem creates the collision detector
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Name() string { return "collision" }

func (s *CollisionSystem) Access() engine.Access {
	return engine.Access{
		ReadComponents: engine.Components(engine.KindTransformation, engine.KindHitbox),
		ReadResources:  engine.Resources(engine.ResHandleMap),
		WriteResources: engine.Resources(engine.ResCollisionIndex, engine.ResCollisionPairs),
	}
}

// Update runs pose sync then the proximity pass
func (s *CollisionSystem) Update(ctx *engine.Context) {
	w := ctx.World()
	transforms := engine.ReadStore(ctx, w.Components.Transformation)
	hitboxes := engine.ReadStore(ctx, w.Components.Hitbox)
	index := engine.Write[*engine.CollisionIndex](ctx)
	handles := engine.Read[*engine.HandleMap](ctx)
	pairs := engine.Write[*engine.CollisionPairs](ctx)

	// Scale is not applied; shapes keep their registered size
	// Bodies already at their pose are left untouched
	for e := range w.Query().With(transforms, hitboxes).Iter() {
		hb, _ := hitboxes.Get(e)
		if !hb.Registered() {
			continue
		}
		tr, _ := transforms.Get(e)
		pose := collision.Pose{Location: tr.Location, Rotation: tr.Rotation}
		if cur, ok := index.Pose(hb.Handle); ok && cur == pose {
			continue
		}
		index.SetPose(hb.Handle, pose)
	}

	index.Update()

	pairs.Reset()
	for _, p := range index.ProximityPairs() {
		pairs.Append(handles.MustEntity(p[0]), handles.MustEntity(p[1]))
	}
}
