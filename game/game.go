// Package game owns one arena simulation and exposes the tick boundary hosts drive
package game

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/arena/audio"
	"github.com/lixenwraith/arena/collision"
	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/config"
	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/engine"
	"github.com/lixenwraith/arena/event"
	"github.com/lixenwraith/arena/scene"
	"github.com/lixenwraith/arena/status"
	"github.com/lixenwraith/arena/system"
)

// HostEventKind classifies notifications from the host loop
type HostEventKind int

const (
	HostResize HostEventKind = iota
	HostClose
)

// HostEvent is a resize or close notification
// Width and Height are in host units (cells or pixels) and only meaningful for HostResize
type HostEvent struct {
	Kind          HostEventKind
	Width, Height int
}

// Options tune a Game beyond the scene file
type Options struct {
	// Parallel runs non-conflicting systems of a stage concurrently
	Parallel bool
	// Player receives bounce cues; nil mutes
	Player audio.Player
}

// Game is one running arena
type Game struct {
	World    *engine.World
	Pipeline *system.Pipeline
	Scene    *config.Scene
	Status   *status.Registry

	index    *collision.Index
	shapes   *collision.ShapeArena
	queue    *event.EventQueue
	player   audio.Player
	entities []core.Entity

	// Last tick's drained events; owned by the ticking goroutine
	events []event.GameEvent

	mu             sync.Mutex
	viewW, viewH   int
	closed         atomic.Bool
	bounces        uint64 // cues played, alternates pitch
	tickCount      *atomic.Int64
	tickDuration   *status.AtomicFloat
	entityCount    *atomic.Int64
	handleCount    *atomic.Int64
	pairCount      *atomic.Int64
	bounceCount    *atomic.Int64
	renderCount    *atomic.Int64
	droppedCount   *atomic.Int64
	updateCount    *atomic.Int64
	systemDuration map[string]*status.AtomicFloat
}

// New builds the world, populates the scene and assembles the pipeline
func New(sc *config.Scene, opts Options) (*Game, error) {
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	pipeline, err := system.NewPipeline(opts.Parallel)
	if err != nil {
		return nil, err
	}

	g := &Game{
		World:    engine.NewWorld(),
		Pipeline: pipeline,
		Scene:    sc,
		Status:   status.NewRegistry(),
		index:    collision.NewIndex(sc.Collision.Margin),
		shapes:   collision.NewShapeArena(),
		queue:    event.NewEventQueue(),
		player:   opts.Player,
		viewW:    int(sc.Arena.Width),
		viewH:    int(sc.Arena.Height),
	}
	if g.player == nil {
		g.player = audio.NopPlayer{}
	}

	engine.InitArenaResources(g.World, g.index, g.shapes, g.queue)

	g.entities, err = scene.Populate(g.World, g.shapes, sc.Entities)
	if err != nil {
		return nil, err
	}

	g.bindMetrics()
	log.Printf("game: %d entities, schedule %s", len(g.entities), pipeline.Scheduler)
	return g, nil
}

// bindMetrics caches metric pointers so Tick writes atomics directly
func (g *Game) bindMetrics() {
	r := g.Status
	g.tickCount = r.Ints.Get(status.KeyTicks)
	g.tickDuration = r.Floats.Get(status.KeyTickDuration)
	g.entityCount = r.Ints.Get(status.KeyEntities)
	g.handleCount = r.Ints.Get(status.KeyHandles)
	g.pairCount = r.Ints.Get(status.KeyPairs)
	g.bounceCount = r.Ints.Get(status.KeyBounces)
	g.renderCount = r.Ints.Get(status.KeyRenderInfos)
	g.droppedCount = r.Ints.Get(status.KeyDroppedEvents)
	g.updateCount = r.Ints.Get(status.KeyIndexUpdates)

	g.systemDuration = make(map[string]*status.AtomicFloat)
	for _, names := range g.Pipeline.Scheduler.Stages() {
		for _, name := range names {
			g.systemDuration[name] = r.Floats.Get(status.SystemDurationKey(name))
		}
	}
	g.Pipeline.Scheduler.SetObserver(func(name string, d time.Duration) {
		if m, ok := g.systemDuration[name]; ok {
			m.Smooth(float64(d.Microseconds()), 0.1)
		}
	})
	g.entityCount.Store(int64(g.World.EntityCount()))
}

// Tick runs the pipeline once and returns this tick's render primitives
// The returned slice is a copy owned by the caller
func (g *Game) Tick() []component.RenderInfo {
	start := time.Now()
	g.Pipeline.Execute(g.World)

	g.events = g.queue.Consume()
	for _, ev := range g.events {
		if ev.Type != event.EventBounce {
			continue
		}
		g.bounces++
		if g.bounces%2 == 0 {
			g.player.Play(audio.SoundBounceAlt)
		} else {
			g.player.Play(audio.SoundBounce)
		}
	}

	infos := engine.MustGetResource[*engine.RenderList](g.World.Resources).Snapshot()
	pairs := engine.MustGetResource[*engine.CollisionPairs](g.World.Resources)
	handles := engine.MustGetResource[*engine.HandleMap](g.World.Resources)

	g.tickCount.Store(int64(g.Pipeline.Scheduler.Tick()))
	g.pairCount.Store(int64(pairs.Len()))
	g.handleCount.Store(int64(handles.Len()))
	g.bounceCount.Store(int64(g.Pipeline.Response.Bounces()))
	g.renderCount.Store(int64(len(infos)))
	g.droppedCount.Store(int64(g.queue.Dropped()))
	g.updateCount.Store(int64(g.index.Updates()))
	g.tickDuration.Smooth(float64(time.Since(start).Microseconds()), 0.1)

	return infos
}

// Events returns the events drained during the last Tick
func (g *Game) Events() []event.GameEvent {
	return g.events
}

// Notify records a host resize or close; safe from any goroutine
func (g *Game) Notify(ev HostEvent) {
	switch ev.Kind {
	case HostResize:
		g.mu.Lock()
		g.viewW, g.viewH = ev.Width, ev.Height
		g.mu.Unlock()
		g.queue.Push(event.GameEvent{
			Type:    event.EventViewportResize,
			Tick:    uint64(g.tickCount.Load()),
			Payload: &event.ResizePayload{Width: ev.Width, Height: ev.Height},
		})
	case HostClose:
		if g.closed.CompareAndSwap(false, true) {
			g.queue.Push(event.GameEvent{Type: event.EventClose, Tick: uint64(g.tickCount.Load())})
			log.Printf("game: close requested")
		}
	}
}

// Running reports false once a close was requested
func (g *Game) Running() bool {
	return !g.closed.Load()
}

// Viewport returns the last size reported by the host
func (g *Game) Viewport() (int, int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.viewW, g.viewH
}

// Entities returns the scene entities in declaration order
func (g *Game) Entities() []core.Entity {
	return g.entities
}

// Transform returns an entity's current transformation
func (g *Game) Transform(e core.Entity) (component.TransformationComponent, bool) {
	return g.World.Components.Transformation.Get(e)
}

// Pairs returns a copy of the last published collision pairs
func (g *Game) Pairs() [][2]core.Entity {
	pairs := engine.MustGetResource[*engine.CollisionPairs](g.World.Resources)
	return append([][2]core.Entity(nil), pairs.Pairs...)
}

// TickCount returns completed ticks
func (g *Game) TickCount() uint64 {
	return g.Pipeline.Scheduler.Tick()
}

// StatusLine summarizes the main counters for a host title or footer
func (g *Game) StatusLine() string {
	return g.Status.StatusLine(status.KeyTicks, status.KeyPairs, status.KeyBounces, status.KeyIndexUpdates, status.KeyTickDuration)
}

// Close releases the audio player
func (g *Game) Close() {
	g.player.Close()
}
