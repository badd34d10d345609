package engine

import (
	"reflect"
	"sync"

	"github.com/lixenwraith/arena/collision"
	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/event"
)

// ResourceStore is a thread-safe container for shared resources
// Systems reach it through Read/Write on their Context, never directly
type ResourceStore struct {
	mu        sync.RWMutex
	resources map[reflect.Type]any
}

// NewResourceStore creates a new empty resource store
func NewResourceStore() *ResourceStore {
	return &ResourceStore{
		resources: make(map[reflect.Type]any),
	}
}

// AddResource registers or replaces a resource keyed by its type
// T should be a pointer type so systems mutate the shared value
func AddResource[T any](rs *ResourceStore, resource T) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.resources[reflect.TypeFor[T]()] = resource
}

// GetResource retrieves a resource of type T from the store
// Returns the zero value of T and false if not found
func GetResource[T any](rs *ResourceStore) (T, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	val, ok := rs.resources[reflect.TypeFor[T]()]
	if !ok {
		var zero T
		return zero, false
	}
	return val.(T), true
}

// MustGetResource retrieves a resource or panics if missing
func MustGetResource[T any](rs *ResourceStore) T {
	res, ok := GetResource[T](rs)
	if !ok {
		panic("Required resource not found: " + reflect.TypeFor[T]().String())
	}
	return res
}

// Resource is a shared value systems declare access to
type Resource interface {
	ResourceKind() ResourceKind
}

// --- Arena Resources ---

// CollisionIndex wraps the spatial index for access checks
type CollisionIndex struct {
	*collision.Index
}

func (*CollisionIndex) ResourceKind() ResourceKind { return ResCollisionIndex }

// Shapes wraps the immutable geometry arena
type Shapes struct {
	*collision.ShapeArena
}

func (*Shapes) ResourceKind() ResourceKind { return ResShapes }

// CollisionPairs is this tick's list of entity pairs in proximity
type CollisionPairs struct {
	Pairs [][2]core.Entity
}

func (*CollisionPairs) ResourceKind() ResourceKind { return ResCollisionPairs }

// Reset empties the list, keeping capacity
func (p *CollisionPairs) Reset() {
	p.Pairs = p.Pairs[:0]
}

// Append adds a pair
func (p *CollisionPairs) Append(a, b core.Entity) {
	p.Pairs = append(p.Pairs, [2]core.Entity{a, b})
}

// Len returns the number of pairs
func (p *CollisionPairs) Len() int {
	return len(p.Pairs)
}

// RenderList is this tick's ordered render primitives
type RenderList struct {
	Infos []component.RenderInfo
}

func (*RenderList) ResourceKind() ResourceKind { return ResRenderList }

// Reset empties the list, keeping capacity
func (r *RenderList) Reset() {
	clear(r.Infos)
	r.Infos = r.Infos[:0]
}

// Snapshot returns a deep copy safe to hand to another goroutine
func (r *RenderList) Snapshot() []component.RenderInfo {
	out := make([]component.RenderInfo, len(r.Infos))
	for i, info := range r.Infos {
		out[i] = component.RenderInfo{
			Vertices: append(info.Vertices[:0:0], info.Vertices...),
			Color:    info.Color,
		}
	}
	return out
}

// Events wraps the event queue systems publish into
type Events struct {
	*event.EventQueue
}

func (*Events) ResourceKind() ResourceKind { return ResEvents }

var (
	_ Resource = (*HandleMap)(nil)
	_ Resource = (*CollisionIndex)(nil)
	_ Resource = (*Shapes)(nil)
	_ Resource = (*CollisionPairs)(nil)
	_ Resource = (*RenderList)(nil)
	_ Resource = (*Events)(nil)
)
