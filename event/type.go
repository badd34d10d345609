package event

import "github.com/lixenwraith/arena/core"

// EventType represents the type of arena event
type EventType int

const (
	// EventBounce signals a ball reflected off a barrier
	// Trigger: collision responder | Consumer: audio, status | Payload: *BouncePayload
	EventBounce EventType = iota

	// EventViewportResize signals the host surface changed size
	// Trigger: host loop | Consumer: game | Payload: *ResizePayload
	EventViewportResize

	// EventClose signals the host asked the simulation to stop
	// Trigger: host loop | Consumer: game | Payload: nil
	EventClose
)

func (t EventType) String() string {
	switch t {
	case EventBounce:
		return "bounce"
	case EventViewportResize:
		return "viewport_resize"
	case EventClose:
		return "close"
	default:
		return "unknown"
	}
}

// GameEvent is a typed event with an optional payload
type GameEvent struct {
	Type    EventType
	Tick    uint64
	Payload any
}

// BouncePayload names the two entities of a ball/barrier response
type BouncePayload struct {
	Ball    core.Entity
	Barrier core.Entity
	// Rotation is the ball's heading after the response
	Rotation float64
}

// ResizePayload carries the new host surface size in host units (cells or pixels)
type ResizePayload struct {
	Width, Height int
}
