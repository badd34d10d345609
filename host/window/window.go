// Package window runs the arena in a desktop window
package window

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/arena/core"
	"github.com/lixenwraith/arena/game"
	"github.com/lixenwraith/arena/host"
	"github.com/lixenwraith/arena/render"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Window adapts a game to ebiten's Update/Draw/Layout loop
type Window struct {
	game     *game.Game
	sink     host.FrameSink
	viewport *render.Viewport
	mesh     render.Mesh
	vertices []ebiten.Vertex
	width    int
	height   int
	err      error
}

// New creates the adapter; sink may be nil
func New(g *game.Game, sink host.FrameSink) *Window {
	w, h := int(g.Scene.Arena.Width), int(g.Scene.Arena.Height)
	return &Window{
		game:     g,
		sink:     sink,
		viewport: render.NewViewport(g.Scene.Arena.Width, g.Scene.Arena.Height, w, h),
		width:    w,
		height:   h,
	}
}

// Update advances one tick
func (w *Window) Update() error {
	if ebiten.IsWindowBeingClosed() {
		w.game.Notify(game.HostEvent{Kind: game.HostClose})
	}
	if !w.game.Running() {
		return ebiten.Termination
	}

	infos := w.game.Tick()
	if w.sink != nil {
		if err := w.sink.Record(w.game.TickCount(), infos); err != nil {
			w.err = fmt.Errorf("window host: %w", err)
			return ebiten.Termination
		}
	}

	w.mesh.Reset()
	w.mesh.AppendQuads(infos, w.viewport)

	if w.game.TickCount()%30 == 0 {
		ebiten.SetWindowTitle("arena " + w.game.StatusLine())
	}
	return nil
}

// Draw fills every quad as two triangles
func (w *Window) Draw(screen *ebiten.Image) {
	bg := core.RGBBlack
	screen.Fill(color.RGBA{R: bg.R, G: bg.G, B: bg.B, A: 0xff})

	w.vertices = w.vertices[:0]
	for _, v := range w.mesh.Vertices {
		w.vertices = append(w.vertices, ebiten.Vertex{
			DstX:   v.X,
			DstY:   v.Y,
			SrcX:   1,
			SrcY:   1,
			ColorR: v.R,
			ColorG: v.G,
			ColorB: v.B,
			ColorA: 1,
		})
	}
	if len(w.vertices) == 0 {
		return
	}
	screen.DrawTriangles(w.vertices, w.mesh.Indices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

// Layout tracks the window size; the arena is stretched to fill it
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != w.width || outsideHeight != w.height {
		w.width, w.height = outsideWidth, outsideHeight
		w.viewport.Resize(outsideWidth, outsideHeight)
		w.game.Notify(game.HostEvent{Kind: game.HostResize, Width: outsideWidth, Height: outsideHeight})
	}
	return outsideWidth, outsideHeight
}

// Run opens the window and blocks until it closes
func Run(g *game.Game, sink host.FrameSink) error {
	win := New(g, sink)

	ebiten.SetWindowSize(win.width, win.height)
	ebiten.SetWindowTitle("arena")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	if tick := g.Scene.Tick(); tick > 0 {
		ebiten.SetTPS(max(1, int(time.Second/tick)))
	}

	log.Printf("host: window %dx%d", win.width, win.height)
	if err := ebiten.RunGame(win); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return win.err
}
