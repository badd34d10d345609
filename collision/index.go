package collision

import (
	"slices"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// DefaultMargin is the proximity distance used by the arena
const DefaultMargin = 1.0

// stepDT is handed to cp.Space.Step; bodies are kinematic with zero velocity
// so its value only needs to be non-zero
const stepDT = 1.0 / 60.0

const proximityType cp.CollisionType = 1

// Handle identifies an object registered in an Index, zero is invalid
type Handle uint32

// Valid reports whether h was issued by an Index
func (h Handle) Valid() bool {
	return h != 0
}

// Pose places an object in world space
type Pose struct {
	Location mgl64.Vec2
	Rotation float64
}

// Pair is two handles in proximity, ordered with the lower handle first
type Pair [2]Handle

func makePair(a, b Handle) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{a, b}
}

type object struct {
	body  *cp.Body
	shape *cp.Shape
}

// Index is the spatial collision index backed by a chipmunk space
// Every object is a kinematic body carrying one sensor shape; the shape is
// rounded by margin/2 so two objects report proximity once their
// separation drops to margin or below
// Not safe for concurrent use; the scheduler serializes writers
type Index struct {
	space   *cp.Space
	margin  float64
	objects []object
	pairs   []Pair
	seen    map[Pair]struct{}
	updates uint64
}

// NewIndex creates an empty index with the given proximity margin
func NewIndex(margin float64) *Index {
	ix := &Index{
		space:   cp.NewSpace(),
		margin:  margin,
		objects: make([]object, 0, 16),
		pairs:   make([]Pair, 0, 16),
		seen:    make(map[Pair]struct{}),
	}

	handler := ix.space.NewCollisionHandler(proximityType, proximityType)
	handler.BeginFunc = func(*cp.Arbiter, *cp.Space, interface{}) bool { return true }
	handler.PreSolveFunc = ix.recordPair
	return ix
}

// recordPair collects one proximity pair per arbiter per step
// Returning false keeps cp from building contact constraints
func (ix *Index) recordPair(arb *cp.Arbiter, _ *cp.Space, _ interface{}) bool {
	a, b := arb.Shapes()
	ha, okA := a.UserData.(Handle)
	hb, okB := b.UserData.(Handle)
	if !okA || !okB {
		return false
	}
	p := makePair(ha, hb)
	if _, dup := ix.seen[p]; !dup {
		ix.seen[p] = struct{}{}
		ix.pairs = append(ix.pairs, p)
	}
	return false
}

// Margin returns the proximity distance
func (ix *Index) Margin() float64 {
	return ix.margin
}

// Add registers geometry at pose and returns its handle
func (ix *Index) Add(geom Shape, pose Pose) Handle {
	body := cp.NewKinematicBody()
	applyPose(body, pose)
	ix.space.AddBody(body)

	shape := geom.attach(body, ix.margin/2)
	shape.SetSensor(true)
	shape.SetCollisionType(proximityType)
	ix.space.AddShape(shape)

	ix.objects = append(ix.objects, object{body: body, shape: shape})
	h := Handle(len(ix.objects))
	body.UserData = h
	shape.UserData = h
	return h
}

// SetPose moves an object; returns false for unknown handles
// Takes effect on the next Update
func (ix *Index) SetPose(h Handle, pose Pose) bool {
	obj, ok := ix.lookup(h)
	if !ok {
		return false
	}
	applyPose(obj.body, pose)
	return true
}

// Pose returns the current pose of an object
func (ix *Index) Pose(h Handle) (Pose, bool) {
	obj, ok := ix.lookup(h)
	if !ok {
		return Pose{}, false
	}
	p := obj.body.Position()
	return Pose{Location: mgl64.Vec2{p.X, p.Y}, Rotation: obj.body.Angle()}, true
}

// Len returns the number of registered objects
func (ix *Index) Len() int {
	return len(ix.objects)
}

// Update runs broad and narrow phase over current poses and rebuilds the pair set
func (ix *Index) Update() {
	ix.pairs = ix.pairs[:0]
	clear(ix.seen)

	ix.space.Step(stepDT)
	ix.updates++

	slices.SortFunc(ix.pairs, func(a, b Pair) int {
		if a[0] != b[0] {
			return int(a[0]) - int(b[0])
		}
		return int(a[1]) - int(b[1])
	})
}

// Updates returns how many times Update ran
func (ix *Index) Updates() uint64 {
	return ix.updates
}

// ProximityPairs returns the pairs found by the last Update in handle order
// The slice is owned by the index and valid until the next Update
func (ix *Index) ProximityPairs() []Pair {
	return ix.pairs
}

func (ix *Index) lookup(h Handle) (*object, bool) {
	if h == 0 || int(h) > len(ix.objects) {
		return nil, false
	}
	return &ix.objects[h-1], true
}

func applyPose(body *cp.Body, pose Pose) {
	body.SetAngle(pose.Rotation)
	body.SetPosition(cp.Vector{X: pose.Location.X(), Y: pose.Location.Y()})
}
