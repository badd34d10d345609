package engine

import (
	"iter"
	"sort"

	"github.com/lixenwraith/arena/core"
)

// QueryBuilder provides a fluent interface for querying entities based on component intersection.
// The query optimizes by starting with the smallest store and filtering through larger ones.
type QueryBuilder struct {
	world    *World
	stores   []QueryableStore
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder for finding entities with specific component combinations.
//
// Example:
//
//	for e := range world.Query().
//	    With(world.Components.Velocity).
//	    With(world.Components.Transformation).
//	    Iter() {
//	    ...
//	}
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world:  w,
		stores: make([]QueryableStore, 0, 4),
	}
}

// With adds component stores to the query filter.
// Panics if called after Execute() or Iter().
func (qb *QueryBuilder) With(stores ...QueryableStore) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.stores = append(qb.stores, stores...)
	return qb
}

// Mask returns the component mask the query filters on
func (qb *QueryBuilder) Mask() ComponentMask {
	var m ComponentMask
	for _, s := range qb.stores {
		m |= s.Kind().Mask()
	}
	return m
}

// Execute runs the query and returns all entities that have components in all specified stores.
// Calling Execute() multiple times returns the cached result.
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		qb.results = make([]core.Entity, 0)
		return qb.results
	}

	candidates, rest := qb.plan()
	filtered := candidates[:0]
	for _, e := range candidates {
		if hasAll(rest, e) {
			filtered = append(filtered, e)
		}
	}
	qb.results = filtered
	return qb.results
}

// Iter returns a lazy sequence of matching entities
// Membership in the other stores is checked as each candidate is reached,
// so breaking early skips the remaining checks
func (qb *QueryBuilder) Iter() iter.Seq[core.Entity] {
	if qb.executed {
		results := qb.results
		return func(yield func(core.Entity) bool) {
			for _, e := range results {
				if !yield(e) {
					return
				}
			}
		}
	}
	qb.executed = true

	if len(qb.stores) == 0 {
		return func(func(core.Entity) bool) {}
	}
	candidates, rest := qb.plan()
	return func(yield func(core.Entity) bool) {
		for _, e := range candidates {
			if !hasAll(rest, e) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// plan sorts stores by count (ascending) and snapshots the smallest store as candidates
func (qb *QueryBuilder) plan() ([]core.Entity, []QueryableStore) {
	sort.SliceStable(qb.stores, func(i, j int) bool {
		return qb.stores[i].Count() < qb.stores[j].Count()
	})
	return qb.stores[0].All(), qb.stores[1:]
}

func hasAll(stores []QueryableStore, e core.Entity) bool {
	for _, s := range stores {
		if !s.Has(e) {
			return false
		}
	}
	return true
}
