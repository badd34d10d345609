package engine

import (
	"sync"

	"github.com/lixenwraith/arena/core"
)

// Store is a generic container for a specific component type T
// Uses sparse set pattern: components live in a dense slice parallel to entities,
// index maps entity to slot for O(1) lookup and cache-friendly iteration
type Store[T any] struct {
	mu       sync.RWMutex
	kind     ComponentKind
	index    map[core.Entity]int
	dense    []T
	entities []core.Entity // Array of entities that have this component, insertion order
}

// NewStore creates a new component store for type T tagged with its kind
func NewStore[T any](kind ComponentKind) *Store[T] {
	return &Store[T]{
		kind:     kind,
		index:    make(map[core.Entity]int),
		dense:    make([]T, 0, 64),
		entities: make([]core.Entity, 0, 64),
	}
}

// Kind returns the component kind this store holds
func (s *Store[T]) Kind() ComponentKind {
	return s.kind
}

// Set inserts or updates a component for an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, exists := s.index[e]; exists {
		s.dense[i] = val
		return
	}
	s.index[e] = len(s.dense)
	s.dense = append(s.dense, val)
	s.entities = append(s.entities, e)
}

// Get retrieves a copy of the component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[e]
	if !ok {
		var zero T
		return zero, false
	}
	return s.dense[i], true
}

// GetMut returns a pointer to the stored component, nil if absent
// Pointer is valid until the next Set that inserts a new entity
func (s *Store[T]) GetMut(e core.Entity) *T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[e]
	if !ok {
		return nil
	}
	return &s.dense[i]
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[e]
	return ok
}

// All returns all entities with this component type in insertion order
func (s *Store[T]) All() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}

// QueryableStore is the type-erased view of a Store used by queries
type QueryableStore interface {
	Kind() ComponentKind
	Has(e core.Entity) bool
	All() []core.Entity
	Count() int
}

var _ QueryableStore = (*Store[struct{}])(nil)
