package engine

import (
	"github.com/lixenwraith/arena/core"
)

// System is one phase of the tick pipeline
type System interface {
	// Name identifies the system in logs and schedule errors
	Name() string
	// Access declares the component tables and resources Update touches
	Access() Access
	// Update runs one pass; all state comes through ctx
	Update(ctx *Context)
}

// Context is handed to a system for one Update call
// Every store and resource lookup is checked against the system's declared Access
type Context struct {
	world  *World
	access Access
	system string
	Tick   uint64
}

// NewContext builds a context for running a system outside a scheduler, mainly in tests
func NewContext(w *World, s System, tick uint64) *Context {
	return &Context{world: w, access: s.Access(), system: s.Name(), Tick: tick}
}

// World returns the world being updated
func (c *Context) World() *World {
	return c.world
}

// Access returns the declaration the context enforces
func (c *Context) Access() Access {
	return c.access
}

func (c *Context) deny(what, name string) {
	core.Violation("access-declaration", "system %q used undeclared %s %s", c.system, what, name)
}

// ReadStore returns s after checking the system declared read access to its kind
func ReadStore[T any](c *Context, s *Store[T]) *Store[T] {
	if !c.access.CanReadComponent(s.Kind()) {
		c.deny("component read", s.Kind().String())
	}
	return s
}

// WriteStore returns s after checking the system declared write access to its kind
func WriteStore[T any](c *Context, s *Store[T]) *Store[T] {
	if !c.access.CanWriteComponent(s.Kind()) {
		c.deny("component write", s.Kind().String())
	}
	return s
}

// Read fetches a resource after checking the system declared read access
func Read[T Resource](c *Context) T {
	res := MustGetResource[T](c.world.Resources)
	if !c.access.CanReadResource(res.ResourceKind()) {
		c.deny("resource read", res.ResourceKind().String())
	}
	return res
}

// Write fetches a resource after checking the system declared write access
func Write[T Resource](c *Context) T {
	res := MustGetResource[T](c.world.Resources)
	if !c.access.CanWriteResource(res.ResourceKind()) {
		c.deny("resource write", res.ResourceKind().String())
	}
	return res
}
