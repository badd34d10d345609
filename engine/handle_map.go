package engine

import (
	"github.com/lixenwraith/arena/collision"
	"github.com/lixenwraith/arena/core"
)

// HandleMap is the authoritative handle <-> entity bijection for the collision index
type HandleMap struct {
	byHandle map[collision.Handle]core.Entity
	byEntity map[core.Entity]collision.Handle
}

// NewHandleMap creates an empty map
func NewHandleMap() *HandleMap {
	return &HandleMap{
		byHandle: make(map[collision.Handle]core.Entity),
		byEntity: make(map[core.Entity]collision.Handle),
	}
}

func (*HandleMap) ResourceKind() ResourceKind { return ResHandleMap }

// Insert records h -> e
// Panics with an InvariantError if either side is already mapped; that can
// only happen when registration bookkeeping is already corrupt
func (m *HandleMap) Insert(h collision.Handle, e core.Entity) {
	if prev, exists := m.byHandle[h]; exists {
		core.Violation("handle-map bijection", "handle %d already maps to %v, refusing %v", h, prev, e)
	}
	if prev, exists := m.byEntity[e]; exists {
		core.Violation("handle-map bijection", "%v already owns handle %d, refusing handle %d", e, prev, h)
	}
	m.byHandle[h] = e
	m.byEntity[e] = h
}

// Entity resolves a handle
func (m *HandleMap) Entity(h collision.Handle) (core.Entity, bool) {
	e, ok := m.byHandle[h]
	return e, ok
}

// MustEntity resolves a handle or panics with an InvariantError
func (m *HandleMap) MustEntity(h collision.Handle) core.Entity {
	e, ok := m.byHandle[h]
	if !ok {
		core.Violation("handle-map bijection", "handle %d reported by the index has no entity", h)
	}
	return e
}

// Handle resolves an entity
func (m *HandleMap) Handle(e core.Entity) (collision.Handle, bool) {
	h, ok := m.byEntity[e]
	return h, ok
}

// Len returns the number of mapped pairs
func (m *HandleMap) Len() int {
	return len(m.byHandle)
}
