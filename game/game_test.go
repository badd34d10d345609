package game

import (
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/lixenwraith/arena/audio"
	"github.com/lixenwraith/arena/config"
	"github.com/lixenwraith/arena/event"
	"github.com/lixenwraith/arena/status"
)

// fastScene is the default layout with a ball that reaches the right barrier in 58 ticks
const fastScene = `
[arena]
width = 1024
height = 768

[[entity]]
name = "ball"
tags = ["ball"]
location = [300.0, 300.0]
speed = 5.0
half_extents = [10.0, 10.0]
color = [1.0, 0.0, 0.0]
hitbox = true

[[entity]]
name = "right-barrier"
tags = ["barrier"]
location = [600.0, 300.0]
half_extents = [2.0, 40.0]
color = [0.0, 1.0, 1.0]
hitbox = true

[[entity]]
name = "left-barrier"
tags = ["barrier"]
location = [50.0, 300.0]
half_extents = [2.0, 40.0]
color = [0.0, 1.0, 1.0]
hitbox = true
`

type recordingPlayer struct {
	mu     sync.Mutex
	played []audio.SoundType
	closed bool
}

func (p *recordingPlayer) Play(s audio.SoundType) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.played = append(p.played, s)
}

func (p *recordingPlayer) Close() { p.closed = true }

func newFastGame(t *testing.T, player audio.Player) *Game {
	t.Helper()
	sc, err := config.Parse([]byte(fastScene))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	g, err := New(sc, Options{Player: player})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

// TestTickRenderList verifies every tick returns one quad per renderable entity
func TestTickRenderList(t *testing.T) {
	g := newFastGame(t, nil)
	infos := g.Tick()
	if len(infos) != 3 {
		t.Fatalf("RenderInfos = %d, want 3", len(infos))
	}
	for i, info := range infos {
		if len(info.Vertices) != 4 {
			t.Errorf("Info %d vertices = %d", i, len(info.Vertices))
		}
	}
	// Ball moved once before render
	want := mgl64.Vec2{295, 310}
	if !infos[0].Vertices[0].ApproxEqual(want) {
		t.Errorf("Ball first vertex = %v, want %v", infos[0].Vertices[0], want)
	}

	// Returned slice is a copy
	infos[0].Vertices[0] = mgl64.Vec2{-1, -1}
	again := g.Tick()
	if again[0].Vertices[0].ApproxEqual(mgl64.Vec2{-1, -1}) {
		t.Error("Tick returned shared storage")
	}
}

// TestBounceFlow verifies the bounce reaches events, audio and status
func TestBounceFlow(t *testing.T) {
	player := &recordingPlayer{}
	g := newFastGame(t, player)
	ball := g.Entities()[0]

	var bounceTick uint64
	for i := 0; i < 100; i++ {
		g.Tick()
		for _, ev := range g.Events() {
			if ev.Type == event.EventBounce {
				if bounceTick != 0 {
					t.Fatalf("Second bounce at tick %d", ev.Tick)
				}
				bounceTick = ev.Tick
				p := ev.Payload.(*event.BouncePayload)
				if p.Ball != ball {
					t.Errorf("Bounce ball = %v, want %v", p.Ball, ball)
				}
			}
		}
	}

	if bounceTick != 58 {
		t.Errorf("Bounce tick = %d, want 58", bounceTick)
	}
	tr, _ := g.Transform(ball)
	if !mgl64.FloatEqual(tr.Rotation, math.Pi) {
		t.Errorf("Rotation = %v, want pi", tr.Rotation)
	}
	if !tr.Location.ApproxEqualThreshold(mgl64.Vec2{380, 300}, 1e-6) {
		t.Errorf("Location = %v, want (380,300)", tr.Location)
	}
	if len(player.played) != 1 || player.played[0] != audio.SoundBounce {
		t.Errorf("Played = %v", player.played)
	}

	snap := g.Status.Snapshot()
	if snap[status.KeyTicks] != 100 || snap[status.KeyBounces] != 1 || snap[status.KeyHandles] != 3 {
		t.Errorf("Status = %v", snap)
	}
	if snap[status.KeyRenderInfos] != 3 || snap[status.KeyEntities] != 3 {
		t.Errorf("Status = %v", snap)
	}
	if snap[status.KeyIndexUpdates] != 100 {
		t.Errorf("Index updates = %v, want one per tick", snap[status.KeyIndexUpdates])
	}
	if _, ok := snap[status.SystemDurationKey("collision")]; !ok {
		t.Error("Missing collision system timing")
	}
	if g.TickCount() != 100 {
		t.Errorf("TickCount() = %d", g.TickCount())
	}

	g.Close()
	if !player.closed {
		t.Error("Close did not reach player")
	}
}

func TestPairsPublished(t *testing.T) {
	g := newFastGame(t, nil)
	for i := 0; i < 58; i++ {
		g.Tick()
	}
	pairs := g.Pairs()
	if len(pairs) != 1 {
		t.Fatalf("Pairs at contact = %v", pairs)
	}
	g.Tick()
	if len(g.Pairs()) != 0 {
		t.Errorf("Pairs after bounce = %v", g.Pairs())
	}
}

func TestNotify(t *testing.T) {
	g := newFastGame(t, nil)

	if w, h := g.Viewport(); w != 1024 || h != 768 {
		t.Errorf("Initial viewport = %dx%d", w, h)
	}

	g.Notify(HostEvent{Kind: HostResize, Width: 80, Height: 24})
	if w, h := g.Viewport(); w != 80 || h != 24 {
		t.Errorf("Viewport = %dx%d, want 80x24", w, h)
	}
	if !g.Running() {
		t.Error("Running before close")
	}

	g.Notify(HostEvent{Kind: HostClose})
	g.Notify(HostEvent{Kind: HostClose})
	if g.Running() {
		t.Error("Running after close")
	}

	g.Tick()
	var resize, closes int
	for _, ev := range g.Events() {
		switch ev.Type {
		case event.EventViewportResize:
			resize++
			if p := ev.Payload.(*event.ResizePayload); p.Width != 80 || p.Height != 24 {
				t.Errorf("Resize payload = %+v", p)
			}
		case event.EventClose:
			closes++
		}
	}
	if resize != 1 || closes != 1 {
		t.Errorf("Events resize=%d close=%d, want 1 and 1", resize, closes)
	}
}

func TestNewRejectsInvalidScene(t *testing.T) {
	sc := config.Default()
	sc.Arena.Width = 0
	if _, err := New(sc, Options{}); err == nil {
		t.Error("Expected error for zero-width arena")
	}
}

// TestDefaultSceneRuns ticks the stock scene in parallel mode and reads the status line
func TestDefaultSceneRuns(t *testing.T) {
	g, err := New(config.Default(), Options{Parallel: true})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 10; i++ {
		g.Tick()
	}
	if line := g.StatusLine(); !strings.Contains(line, "count=10 ") || !strings.Contains(line, "updates=10 ") {
		t.Errorf("StatusLine = %q, want tick and index update counts of 10", line)
	}
}
