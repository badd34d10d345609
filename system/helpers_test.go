package system

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/arena/collision"
	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/event"
)

type testArena struct {
	world  *engine.World
	shapes *collision.ShapeArena
	index  *collision.Index
	events *event.EventQueue
	tick   uint64
}

func newTestArena(tb testing.TB) *testArena {
	tb.Helper()
	a := &testArena{
		world:  engine.NewWorld(),
		shapes: collision.NewShapeArena(),
		index:  collision.NewIndex(collision.DefaultMargin),
		events: event.NewEventQueue(),
	}
	engine.InitArenaResources(a.world, a.index, a.shapes, a.events)
	return a
}

// run executes one system outside a scheduler
func (a *testArena) run(s engine.System) {
	a.tick++
	s.Update(engine.NewContext(a.world, s, a.tick))
}

// box spawns an entity with a transformation, box hitbox, render shape and tags
func (a *testArena) box(x, y, hx, hy float64, tags component.Tags) core.Entity {
	w := a.world
	eb := w.NewEntity()
	engine.With(eb, w.Components.Transformation, component.NewTransformation(x, y, 0))
	engine.With(eb, w.Components.Hitbox, component.HitboxComponent{
		Shape: a.shapes.Add(collision.NewCuboid(hx, hy)),
	})
	engine.With(eb, w.Components.RenderShape, component.RenderShapeComponent{
		Color:       core.RGBWhite,
		HalfExtents: mgl64.Vec2{hx, hy},
	})
	return eb.Tag(tags).Build()
}

func (a *testArena) transform(t *testing.T, e core.Entity) component.TransformationComponent {
	t.Helper()
	tr, ok := a.world.Components.Transformation.Get(e)
	if !ok {
		t.Fatalf("%v has no transformation", e)
	}
	return tr
}

func (a *testArena) pairs() *engine.CollisionPairs {
	return engine.MustGetResource[*engine.CollisionPairs](a.world.Resources)
}

func (a *testArena) handles() *engine.HandleMap {
	return engine.MustGetResource[*engine.HandleMap](a.world.Resources)
}

func (a *testArena) renderList() *engine.RenderList {
	return engine.MustGetResource[*engine.RenderList](a.world.Resources)
}

// expectInvariant fails unless fn panics with a core.InvariantError
func expectInvariant(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if _, ok := r.(*core.InvariantError); !ok {
			t.Fatalf("Expected *core.InvariantError panic, got %T: %v", r, r)
		}
	}()
	fn()
}
