package host

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/game"
	"github.com/lixenwraith/arena/render"
)

// TerminalOptions configure RunTerminal
type TerminalOptions struct {
	Tick time.Duration
	// Sink records frames when non-nil
	Sink FrameSink
}

// RunTerminal ticks the game on a fixed interval and draws into screen until
// the game is closed, the user quits, or ctx is cancelled
// The screen must already be initialized; the caller owns Fini
func RunTerminal(ctx context.Context, g *game.Game, screen tcell.Screen, opts TerminalOptions) error {
	if opts.Tick <= 0 {
		opts.Tick = g.Scene.Tick()
	}
	renderer := render.NewTerminalRenderer(screen, g.Scene.Arena.Width, g.Scene.Arena.Height)
	cols, rows := screen.Size()
	g.Notify(game.HostEvent{Kind: game.HostResize, Width: cols, Height: rows})

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)

	core.Go(func() {
		for {
			ev := screen.PollEvent()
			// nil after Fini
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	})

	ticker := time.NewTicker(opts.Tick)
	defer ticker.Stop()
	log.Printf("host: terminal %dx%d, tick %v", cols, rows, opts.Tick)

	for g.Running() {
		select {
		case <-ctx.Done():
			g.Notify(game.HostEvent{Kind: game.HostClose})
			return nil

		case ev := <-events:
			handleTerminalEvent(g, screen, renderer, ev)

		case <-ticker.C:
			infos := g.Tick()
			if opts.Sink != nil {
				if err := opts.Sink.Record(g.TickCount(), infos); err != nil {
					return fmt.Errorf("terminal host: %w", err)
				}
			}
			renderer.Draw(infos, g.StatusLine())
		}
	}
	log.Printf("host: terminal stopped after %d ticks", g.TickCount())
	return nil
}

func handleTerminalEvent(g *game.Game, screen tcell.Screen, renderer *render.TerminalRenderer, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuitKey(ev) {
			g.Notify(game.HostEvent{Kind: game.HostClose})
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		renderer.Resize(cols, rows)
		screen.Sync()
		g.Notify(game.HostEvent{Kind: game.HostResize, Width: cols, Height: rows})
	}
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}
