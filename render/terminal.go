package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/arena/component"
	"github.com/lixenwraith/arena/core"
)

const fillRune = '█'

// Status bar palette: a blue tint over the background with slightly dimmed text
var (
	statusBackground = core.RGBBlack.Blend(core.RGBBlue, 0.35)
	statusForeground = core.RGBWhite.Scale(0.85)
)

// TerminalRenderer paints render lists as filled cell rectangles
// The bottom row is reserved for the status line
type TerminalRenderer struct {
	screen     tcell.Screen
	viewport   *Viewport
	background tcell.Style
	status     tcell.Style
}

// NewTerminalRenderer maps a worldW x worldH arena onto the screen
func NewTerminalRenderer(screen tcell.Screen, worldW, worldH float64) *TerminalRenderer {
	r := &TerminalRenderer{
		screen:     screen,
		viewport:   NewViewport(worldW, worldH, 0, 0),
		background: tcell.StyleDefault.Background(toTcell(core.RGBBlack)),
		status:     tcell.StyleDefault.Background(toTcell(statusBackground)).Foreground(toTcell(statusForeground)),
	}
	r.Resize(screen.Size())
	return r
}

// Resize adapts the arena area to a new terminal size
func (r *TerminalRenderer) Resize(cols, rows int) {
	r.viewport.Resize(cols, max(rows-1, 0))
}

// Viewport exposes the current mapping
func (r *TerminalRenderer) Viewport() *Viewport {
	return r.viewport
}

// Draw renders one frame and shows it
func (r *TerminalRenderer) Draw(infos []component.RenderInfo, statusLine string) {
	r.screen.SetStyle(r.background)
	r.screen.Clear()

	for _, info := range infos {
		x0, y0, x1, y1, ok := r.viewport.CellRect(info.Vertices)
		if !ok {
			continue
		}
		style := r.background.Foreground(toTcell(info.Color))
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				r.screen.SetContent(x, y, fillRune, nil, style)
			}
		}
	}

	cols, rows := r.screen.Size()
	if rows > 0 {
		r.drawText(0, rows-1, cols, statusLine)
	}
	r.screen.Show()
}

// drawText paints the full status row, then the text from x
func (r *TerminalRenderer) drawText(x, y, width int, text string) {
	for col := 0; col < width; col++ {
		r.screen.SetContent(col, y, ' ', nil, r.status)
	}
	for _, ch := range text {
		if x >= width {
			return
		}
		r.screen.SetContent(x, y, ch, nil, r.status)
		x++
	}
}

func toTcell(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
