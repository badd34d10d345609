package engine

import (
	"sync"

	"github.com/lixenwraith/arena/collision"
	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/event"
)

// ComponentStore provides cached pointers to the typed component stores
type ComponentStore struct {
	Transformation *Store[component.TransformationComponent]
	Velocity       *Store[component.VelocityComponent]
	Hitbox         *Store[component.HitboxComponent]
	RenderShape    *Store[component.RenderShapeComponent]
	Tags           *Store[component.Tags]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Transformation: NewStore[component.TransformationComponent](KindTransformation),
		Velocity:       NewStore[component.VelocityComponent](KindVelocity),
		Hitbox:         NewStore[component.HitboxComponent](KindHitbox),
		RenderShape:    NewStore[component.RenderShapeComponent](KindRenderShape),
		Tags:           NewStore[component.Tags](KindTags),
	}
}

// byKind returns the store for k as a queryable
func (cs *ComponentStore) byKind(k ComponentKind) QueryableStore {
	switch k {
	case KindTransformation:
		return cs.Transformation
	case KindVelocity:
		return cs.Velocity
	case KindHitbox:
		return cs.Hitbox
	case KindRenderShape:
		return cs.RenderShape
	case KindTags:
		return cs.Tags
	}
	return nil
}

// World contains all entities, their components, and shared resources
type World struct {
	mu       sync.Mutex
	entities *core.EntityAllocator

	Components ComponentStore
	Resources  *ResourceStore
}

// NewWorld creates an empty world with all component stores initialized
func NewWorld() *World {
	return &World{
		entities:   core.NewEntityAllocator(),
		Components: newComponentStore(),
		Resources:  NewResourceStore(),
	}
}

// CreateEntity reserves a new entity ID with no components
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.entities.Allocate()
}

// Alive reports whether e was created by this world
func (w *World) Alive(e core.Entity) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.entities.Alive(e)
}

// EntityCount returns the number of created entities
func (w *World) EntityCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.entities.Count()
}

// Has reports whether e holds every component in mask
func (w *World) Has(e core.Entity, mask ComponentMask) bool {
	for k := ComponentKind(0); k < componentKindCount; k++ {
		if mask&k.Mask() == 0 {
			continue
		}
		if !w.Components.byKind(k).Has(e) {
			return false
		}
	}
	return true
}

// Mask returns the set of components e holds
func (w *World) Mask(e core.Entity) ComponentMask {
	var m ComponentMask
	for k := ComponentKind(0); k < componentKindCount; k++ {
		if w.Components.byKind(k).Has(e) {
			m |= k.Mask()
		}
	}
	return m
}

// QueryMask starts a query over every store named in mask
func (w *World) QueryMask(mask ComponentMask) *QueryBuilder {
	qb := w.Query()
	for k := ComponentKind(0); k < componentKindCount; k++ {
		if mask&k.Mask() != 0 {
			qb.With(w.Components.byKind(k))
		}
	}
	return qb
}

// TagsOf returns the entity's tags, TagNone when it has none
func (w *World) TagsOf(e core.Entity) component.Tags {
	tags, _ := w.Components.Tags.Get(e)
	return tags
}

// InitArenaResources installs the shared resources the arena pipeline declares
func InitArenaResources(w *World, index *collision.Index, shapes *collision.ShapeArena, events *event.EventQueue) {
	AddResource(w.Resources, NewHandleMap())
	AddResource(w.Resources, &CollisionIndex{Index: index})
	AddResource(w.Resources, &Shapes{ShapeArena: shapes})
	AddResource(w.Resources, &CollisionPairs{Pairs: make([][2]core.Entity, 0, 16)})
	AddResource(w.Resources, &RenderList{Infos: make([]component.RenderInfo, 0, 16)})
	AddResource(w.Resources, &Events{EventQueue: events})
}
