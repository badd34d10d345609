package event

import "sync"

// QueueSize bounds the number of undrained events
const QueueSize = 256

// EventQueue is a bounded FIFO shared by systems and the host loop
// Push is safe from any goroutine; Consume is called once per tick by the game
// When full, the oldest event is overwritten and counted as dropped
type EventQueue struct {
	mu      sync.Mutex
	ring    [QueueSize]GameEvent
	start   int
	count   int
	dropped uint64
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.count == QueueSize {
		eq.ring[eq.start] = GameEvent{}
		eq.start = (eq.start + 1) % QueueSize
		eq.count--
		eq.dropped++
	}
	eq.ring[(eq.start+eq.count)%QueueSize] = ev
	eq.count++
}

// Consume removes and returns pending events oldest first, nil when empty
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	if eq.count == 0 {
		return nil
	}
	out := make([]GameEvent, eq.count)
	for i := range out {
		idx := (eq.start + i) % QueueSize
		out[i] = eq.ring[idx]
		eq.ring[idx] = GameEvent{}
	}
	eq.start, eq.count = 0, 0
	return out
}

// Len returns the pending event count
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.count
}

// Dropped returns how many unread events were overwritten
func (eq *EventQueue) Dropped() uint64 {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return eq.dropped
}
