package scene

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/arena/collision"
	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/config"
	"github.com/lixenwraith/arena/engine"
)

// TestPopulateDefault verifies the embedded scene produces ball and barriers
func TestPopulateDefault(t *testing.T) {
	w := engine.NewWorld()
	shapes := collision.NewShapeArena()

	entities, err := Populate(w, shapes, config.Default().Entities)
	if err != nil {
		t.Fatalf("Populate: %v", err)
	}
	if len(entities) != 3 {
		t.Fatalf("Entities = %d, want 3", len(entities))
	}

	ball := entities[0]
	if !w.TagsOf(ball).Has(component.TagBall) {
		t.Errorf("First entity tags = %v", w.TagsOf(ball))
	}
	if v, ok := w.Components.Velocity.Get(ball); !ok || v.Speed != 0.03 {
		t.Errorf("Ball velocity = %v, %v", v, ok)
	}
	for _, b := range entities[1:] {
		if w.Components.Velocity.Has(b) {
			t.Errorf("Barrier %v has velocity", b)
		}
		if !w.TagsOf(b).Has(component.TagBarrier) {
			t.Errorf("Barrier tags = %v", w.TagsOf(b))
		}
	}

	// Two barriers share one shape
	if shapes.Len() != 2 {
		t.Errorf("Shapes = %d, want 2", shapes.Len())
	}
	h1, _ := w.Components.Hitbox.Get(entities[1])
	h2, _ := w.Components.Hitbox.Get(entities[2])
	if h1.Shape != h2.Shape || h1.Registered() {
		t.Errorf("Barrier hitboxes = %+v, %+v", h1, h2)
	}
	if got := shapes.MustGet(h1.Shape).Extents(); !got.ApproxEqual(mgl64.Vec2{2, 40}) {
		t.Errorf("Barrier extents = %v", got)
	}
}

func TestPopulateOptionalComponents(t *testing.T) {
	w := engine.NewWorld()
	shapes := collision.NewShapeArena()

	specs := []config.EntitySpec{
		{Name: "decor", Location: [2]float64{1, 2}, Scale: [2]float64{1, 1}, HalfExtents: [2]float64{3, 3}},
	}
	entities, err := Populate(w, shapes, specs)
	if err != nil {
		t.Fatalf("Populate: %v", err)
	}
	e := entities[0]
	if w.Components.Hitbox.Has(e) || w.Components.Tags.Has(e) || w.Components.Velocity.Has(e) {
		t.Error("Optional components should be absent")
	}
	if !w.Components.RenderShape.Has(e) || !w.Components.Transformation.Has(e) {
		t.Error("Transformation and RenderShape should be present")
	}
}

func TestPopulateUnknownTag(t *testing.T) {
	w := engine.NewWorld()
	_, err := Populate(w, collision.NewShapeArena(), []config.EntitySpec{{Tags: []string{"paddle"}}})
	if !errors.Is(err, config.ErrUnknownTag) {
		t.Errorf("Error = %v, want ErrUnknownTag", err)
	}
}
