package host

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/lixenwraith/arena/game"
)

// HeadlessOptions configure RunHeadless
type HeadlessOptions struct {
	// Ticks to run; zero runs until ctx is cancelled or the game closes
	Ticks int
	// Interval between ticks; zero runs as fast as possible
	Interval time.Duration
	Sink     FrameSink
}

// RunHeadless ticks the game without a display and logs the final state
// Returns the number of ticks executed
func RunHeadless(ctx context.Context, g *game.Game, opts HeadlessOptions) (int, error) {
	if opts.Ticks <= 0 && opts.Interval <= 0 {
		opts.Interval = g.Scene.Tick()
	}

	var ticker *time.Ticker
	if opts.Interval > 0 {
		ticker = time.NewTicker(opts.Interval)
		defer ticker.Stop()
	}

	n := 0
	for g.Running() && (opts.Ticks <= 0 || n < opts.Ticks) {
		if ticker != nil {
			select {
			case <-ctx.Done():
				return n, nil
			case <-ticker.C:
			}
		} else if ctx.Err() != nil {
			return n, nil
		}

		infos := g.Tick()
		n++
		if opts.Sink != nil {
			if err := opts.Sink.Record(g.TickCount(), infos); err != nil {
				return n, fmt.Errorf("headless host: %w", err)
			}
		}
	}

	for _, e := range g.Entities() {
		if tr, ok := g.Transform(e); ok {
			log.Printf("host: %v tags=%v at %v rotation %.4f", e, g.World.TagsOf(e), tr.Location, tr.Rotation)
		}
	}
	log.Printf("host: headless ran %d ticks, %s", n, g.StatusLine())
	return n, nil
}
