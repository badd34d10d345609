package system

import (
	"math"

	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/event"
)

// ResponseSystem turns tagged collision pairs into entity state changes
// Only ball/barrier is handled; goal pairs are ignored
type ResponseSystem struct {
	bounces uint64
}

// NewResponseSystem creates the collision responder
func NewResponseSystem() *ResponseSystem {
	return &ResponseSystem{}
}

func (s *ResponseSystem) Name() string { return "response" }

func (s *ResponseSystem) Access() engine.Access {
	return engine.Access{
		ReadComponents:  engine.Components(engine.KindTags),
		WriteComponents: engine.Components(engine.KindTransformation),
		ReadResources:   engine.Resources(engine.ResCollisionPairs),
		WriteResources:  engine.Resources(engine.ResEvents),
	}
}

// Bounces returns the total number of ball/barrier responses
func (s *ResponseSystem) Bounces() uint64 {
	return s.bounces
}

// Update reverses the ball's heading for every ball/barrier pair
// Rotation grows by pi per bounce with no wraparound
func (s *ResponseSystem) Update(ctx *engine.Context) {
	w := ctx.World()
	tags := engine.ReadStore(ctx, w.Components.Tags)
	transforms := engine.WriteStore(ctx, w.Components.Transformation)
	pairs := engine.Read[*engine.CollisionPairs](ctx)
	events := engine.Write[*engine.Events](ctx)

	for _, pair := range pairs.Pairs {
		ball, barrier, ok := sortPairByTag(tags, pair, component.TagBall, component.TagBarrier)
		if !ok {
			continue
		}
		tr := transforms.GetMut(ball)
		if tr == nil {
			continue
		}
		tr.Rotation += math.Pi
		s.bounces++

		events.Push(event.GameEvent{
			Type: event.EventBounce,
			Tick: ctx.Tick,
			Payload: &event.BouncePayload{
				Ball:     ball,
				Barrier:  barrier,
				Rotation: tr.Rotation,
			},
		})
	}
}

// sortPairByTag finds the first element carrying first, checking index 0 before 1,
// and accepts the pair only if the other element carries second
func sortPairByTag(tags *engine.Store[component.Tags], pair [2]core.Entity, first, second component.Tags) (core.Entity, core.Entity, bool) {
	for i := 0; i < 2; i++ {
		t, _ := tags.Get(pair[i])
		if !t.Has(first) {
			continue
		}
		other := pair[1-i]
		ot, _ := tags.Get(other)
		if ot.Has(second) {
			return pair[i], other, true
		}
		return 0, 0, false
	}
	return 0, 0, false
}
