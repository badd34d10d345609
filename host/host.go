// Package host drives a game from a frontend loop
package host

import (
	"github.com/lixenwraith/arena/component"
)

// FrameSink receives every tick's render list, e.g. a render.Recorder
type FrameSink interface {
	Record(tick uint64, infos []component.RenderInfo) error
}
