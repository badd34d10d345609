package core

import "fmt"

// Entity is a packed (index, generation) identifier
// Low 32 bits hold the slot index, high 32 bits the generation
// Zero value is never handed out by an allocator
type Entity uint64

// NewEntity packs index and generation
func NewEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the slot index
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot generation
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// Valid reports whether e could have been produced by an allocator
func (e Entity) Valid() bool {
	return e.Generation() != 0
}

func (e Entity) String() string {
	return fmt.Sprintf("Entity(%d:%d)", e.Index(), e.Generation())
}

// EntityAllocator hands out entity identifiers
// Entities are never despawned, so every slot keeps generation 1
// and the zero Entity stays invalid
type EntityAllocator struct {
	generations []uint32
}

// NewEntityAllocator creates an empty allocator
func NewEntityAllocator() *EntityAllocator {
	return &EntityAllocator{
		generations: make([]uint32, 0, 64),
	}
}

// Allocate returns a fresh entity
func (a *EntityAllocator) Allocate() Entity {
	index := uint32(len(a.generations))
	a.generations = append(a.generations, 1)
	return NewEntity(index, 1)
}

// Alive reports whether e matches the current generation of its slot
func (a *EntityAllocator) Alive(e Entity) bool {
	index := e.Index()
	if !e.Valid() || int(index) >= len(a.generations) {
		return false
	}
	return a.generations[index] == e.Generation()
}

// Count returns the number of live entities
func (a *EntityAllocator) Count() int {
	return len(a.generations)
}
