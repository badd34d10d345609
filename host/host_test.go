package host

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/config"
	"github.com/lixenwraith/arena/game"
)

const testScene = `
tick_ms = 1

[arena]
width = 100
height = 100

[[entity]]
tags = ["ball"]
location = [20.0, 50.0]
speed = 2.0
half_extents = [5.0, 5.0]
color = [1.0, 0.0, 0.0]
hitbox = true

[[entity]]
tags = ["barrier"]
location = [80.0, 50.0]
half_extents = [2.0, 20.0]
color = [0.0, 1.0, 1.0]
hitbox = true
`

func newTestGame(t *testing.T) *game.Game {
	t.Helper()
	sc, err := config.Parse([]byte(testScene))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	g, err := game.New(sc, game.Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

// chanSink forwards recorded ticks and can fail on demand
type chanSink struct {
	ticks  chan uint64
	failAt uint64
}

func (s *chanSink) Record(tick uint64, infos []component.RenderInfo) error {
	if s.failAt != 0 && tick >= s.failAt {
		return errors.New("disk full")
	}
	select {
	case s.ticks <- tick:
	default:
	}
	return nil
}

// TestRunHeadlessTicks verifies the exact tick count and frame order
func TestRunHeadlessTicks(t *testing.T) {
	g := newTestGame(t)
	sink := &chanSink{ticks: make(chan uint64, 64)}

	n, err := RunHeadless(context.Background(), g, HeadlessOptions{Ticks: 40, Sink: sink})
	if err != nil || n != 40 {
		t.Fatalf("RunHeadless = %d, %v", n, err)
	}
	close(sink.ticks)
	want := uint64(1)
	for tick := range sink.ticks {
		if tick != want {
			t.Fatalf("Frame tick = %d, want %d", tick, want)
		}
		want++
	}

	// Ball edge 25 reaches barrier edge 78 within 27 ticks and turns back
	ball := g.Entities()[0]
	tr, _ := g.Transform(ball)
	if tr.Rotation == 0 {
		t.Errorf("Ball never bounced, location %v", tr.Location)
	}
}

func TestRunHeadlessSinkError(t *testing.T) {
	g := newTestGame(t)
	sink := &chanSink{ticks: make(chan uint64, 64), failAt: 5}

	n, err := RunHeadless(context.Background(), g, HeadlessOptions{Ticks: 10, Sink: sink})
	if err == nil || n != 5 {
		t.Errorf("RunHeadless = %d, %v; want failure at tick 5", n, err)
	}
}

func TestRunHeadlessStops(t *testing.T) {
	g := newTestGame(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if n, _ := RunHeadless(ctx, g, HeadlessOptions{Ticks: 10}); n != 0 {
		t.Errorf("Cancelled run ticked %d times", n)
	}

	g.Notify(game.HostEvent{Kind: game.HostClose})
	if n, _ := RunHeadless(context.Background(), g, HeadlessOptions{Ticks: 10}); n != 0 {
		t.Errorf("Closed game ticked %d times", n)
	}
}

// TestRunTerminalQuitKey verifies frames reach the screen and 'q' stops the loop
func TestRunTerminalQuitKey(t *testing.T) {
	g := newTestGame(t)
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(20, 11)

	sink := &chanSink{ticks: make(chan uint64, 1)}
	result := make(chan error, 1)
	go func() {
		result <- RunTerminal(context.Background(), g, screen, TerminalOptions{Sink: sink})
	}()

	deadline := time.After(5 * time.Second)
	for seen := 0; seen < 3; {
		select {
		case <-sink.ticks:
			seen++
		case <-deadline:
			t.Fatal("No frames rendered")
		}
	}

	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-result:
		if err != nil {
			t.Fatalf("RunTerminal: %v", err)
		}
	case <-deadline:
		t.Fatal("RunTerminal did not stop on 'q'")
	}

	if g.Running() {
		t.Error("Game still running after quit")
	}
	if w, h := g.Viewport(); w != 20 || h != 11 {
		t.Errorf("Viewport = %dx%d, want 20x11", w, h)
	}

	cells, _, _ := screen.GetContents()
	filled := 0
	for _, c := range cells {
		if len(c.Runes) > 0 && c.Runes[0] == '█' {
			filled++
		}
	}
	if filled == 0 {
		t.Error("No quads drawn")
	}
}

func TestRunTerminalContextCancel(t *testing.T) {
	g := newTestGame(t)
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := RunTerminal(ctx, g, screen, TerminalOptions{}); err != nil {
		t.Fatalf("RunTerminal: %v", err)
	}
	if g.Running() {
		t.Error("Game still running after cancel")
	}
}
