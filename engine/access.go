package engine

import "strings"

// ComponentKind enumerates the component tables a system may touch
type ComponentKind uint8

const (
	KindTransformation ComponentKind = iota
	KindVelocity
	KindHitbox
	KindRenderShape
	KindTags
	componentKindCount
)

var componentKindNames = [componentKindCount]string{
	"transformation", "velocity", "hitbox", "render_shape", "tags",
}

func (k ComponentKind) String() string {
	if k < componentKindCount {
		return componentKindNames[k]
	}
	return "unknown"
}

// Mask returns the single-bit mask for k
func (k ComponentKind) Mask() ComponentMask {
	return ComponentMask(1) << k
}

// ComponentMask is a set of component kinds
type ComponentMask uint32

// Components builds a mask from kinds
func Components(kinds ...ComponentKind) ComponentMask {
	var m ComponentMask
	for _, k := range kinds {
		m |= k.Mask()
	}
	return m
}

// Contains reports whether every kind in other is in m
func (m ComponentMask) Contains(other ComponentMask) bool {
	return m&other == other
}

func (m ComponentMask) String() string {
	var parts []string
	for k := ComponentKind(0); k < componentKindCount; k++ {
		if m&k.Mask() != 0 {
			parts = append(parts, k.String())
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// ResourceKind enumerates shared resources
type ResourceKind uint8

const (
	ResHandleMap ResourceKind = iota
	ResCollisionIndex
	ResShapes
	ResCollisionPairs
	ResRenderList
	ResEvents
	resourceKindCount
)

var resourceKindNames = [resourceKindCount]string{
	"handle_map", "collision_index", "shapes", "collision_pairs", "render_list", "events",
}

func (k ResourceKind) String() string {
	if k < resourceKindCount {
		return resourceKindNames[k]
	}
	return "unknown"
}

// Mask returns the single-bit mask for k
func (k ResourceKind) Mask() ResourceMask {
	return ResourceMask(1) << k
}

// ResourceMask is a set of resource kinds
type ResourceMask uint32

// Resources builds a mask from kinds
func Resources(kinds ...ResourceKind) ResourceMask {
	var m ResourceMask
	for _, k := range kinds {
		m |= k.Mask()
	}
	return m
}

func (m ResourceMask) String() string {
	var parts []string
	for k := ResourceKind(0); k < resourceKindCount; k++ {
		if m&k.Mask() != 0 {
			parts = append(parts, k.String())
		}
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// Access declares what a system reads and writes
// Write implies read
type Access struct {
	ReadComponents  ComponentMask
	WriteComponents ComponentMask
	ReadResources   ResourceMask
	WriteResources  ResourceMask
}

// CanReadComponent reports whether k was declared read or write
func (a Access) CanReadComponent(k ComponentKind) bool {
	return (a.ReadComponents|a.WriteComponents)&k.Mask() != 0
}

// CanWriteComponent reports whether k was declared write
func (a Access) CanWriteComponent(k ComponentKind) bool {
	return a.WriteComponents&k.Mask() != 0
}

// CanReadResource reports whether k was declared read or write
func (a Access) CanReadResource(k ResourceKind) bool {
	return (a.ReadResources|a.WriteResources)&k.Mask() != 0
}

// CanWriteResource reports whether k was declared write
func (a Access) CanWriteResource(k ResourceKind) bool {
	return a.WriteResources&k.Mask() != 0
}

// Conflicts reports whether two systems cannot run concurrently:
// one writes something the other reads or writes
func (a Access) Conflicts(b Access) bool {
	aReadC := a.ReadComponents | a.WriteComponents
	bReadC := b.ReadComponents | b.WriteComponents
	aReadR := a.ReadResources | a.WriteResources
	bReadR := b.ReadResources | b.WriteResources

	return a.WriteComponents&bReadC != 0 ||
		b.WriteComponents&aReadC != 0 ||
		a.WriteResources&bReadR != 0 ||
		b.WriteResources&aReadR != 0
}
