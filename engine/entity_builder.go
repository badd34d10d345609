package engine

import (
	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/core"
)

// EntityBuilder stages components for a new entity and commits them on Build
//
// Example usage:
//
//	e := engine.With(engine.With(world.NewEntity(),
//	    world.Components.Transformation, component.NewTransformation(0, 0, 0)),
//	    world.Components.Velocity, component.VelocityComponent{Speed: 1}).
//	    Tag(component.TagBall).
//	    Build()
type EntityBuilder struct {
	world   *World
	entity  core.Entity
	pending []func()
	tags    component.Tags
	built   bool
}

// NewEntity reserves an entity ID and returns a builder for it
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With stages a component of type T for the entity being built
// Panics if called after Build()
func With[T any](eb *EntityBuilder, store *Store[T], component T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	e := eb.entity
	eb.pending = append(eb.pending, func() { store.Set(e, component) })
	return eb
}

// Tag adds classification tags
func (eb *EntityBuilder) Tag(tags component.Tags) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add tags after Build()")
	}
	eb.tags |= tags
	return eb
}

// Entity returns the reserved ID without committing
func (eb *EntityBuilder) Entity() core.Entity {
	return eb.entity
}

// Build commits staged components and returns the entity
// Calling Build twice returns the same entity without re-adding components
func (eb *EntityBuilder) Build() core.Entity {
	if eb.built {
		return eb.entity
	}
	eb.built = true
	for _, apply := range eb.pending {
		apply()
	}
	eb.pending = nil
	if eb.tags != component.TagNone {
		eb.world.Components.Tags.Set(eb.entity, eb.tags)
	}
	return eb.entity
}
