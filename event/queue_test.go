package event

import (
	"sync"
	"testing"

	"github.com/lixenwraith/arena/core"
)

// TestQueueFIFO verifies events come back in push order
func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 5; i++ {
		q.Push(GameEvent{Type: EventBounce, Tick: uint64(i)})
	}
	if q.Len() != 5 {
		t.Errorf("Len() = %d, want 5", q.Len())
	}

	events := q.Consume()
	if len(events) != 5 {
		t.Fatalf("Consumed %d events, want 5", len(events))
	}
	for i, ev := range events {
		if ev.Tick != uint64(i) {
			t.Errorf("event %d has tick %d", i, ev.Tick)
		}
	}
	if q.Consume() != nil {
		t.Error("Second consume should be empty")
	}
}

// TestQueueOverflow verifies the oldest events are dropped when full
func TestQueueOverflow(t *testing.T) {
	q := NewEventQueue()
	total := QueueSize + 10
	for i := 0; i < total; i++ {
		q.Push(GameEvent{Type: EventBounce, Tick: uint64(i)})
	}

	events := q.Consume()
	if len(events) != QueueSize {
		t.Fatalf("Consumed %d events, want %d", len(events), QueueSize)
	}
	if events[0].Tick != 10 {
		t.Errorf("Oldest surviving tick = %d, want 10", events[0].Tick)
	}
	if q.Dropped() != 10 {
		t.Errorf("Dropped() = %d, want 10", q.Dropped())
	}
}

// TestQueueConcurrentProducers verifies no event is lost below capacity
func TestQueueConcurrentProducers(t *testing.T) {
	q := NewEventQueue()
	const producers, perProducer = 4, 32

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(GameEvent{
					Type:    EventBounce,
					Payload: &BouncePayload{Ball: core.NewEntity(uint32(p), 1)},
				})
			}
		}(p)
	}
	wg.Wait()

	if got := len(q.Consume()); got != producers*perProducer {
		t.Errorf("Consumed %d events, want %d", got, producers*perProducer)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventBounce.String() != "bounce" || EventClose.String() != "close" {
		t.Error("Unexpected event names")
	}
	if EventType(99).String() != "unknown" {
		t.Error("Unknown type should stringify as unknown")
	}
}

// TestQueueWrapAround verifies ordering survives repeated overflow and partial drains
func TestQueueWrapAround(t *testing.T) {
	q := NewEventQueue()
	for i := 0; i < 100; i++ {
		q.Push(GameEvent{Tick: uint64(i)})
	}
	q.Consume()

	for i := 100; i < 100+QueueSize+3; i++ {
		q.Push(GameEvent{Tick: uint64(i)})
	}
	events := q.Consume()
	if len(events) != QueueSize {
		t.Fatalf("Consumed %d events, want %d", len(events), QueueSize)
	}
	for i, ev := range events {
		if want := uint64(103 + i); ev.Tick != want {
			t.Fatalf("Event %d tick = %d, want %d", i, ev.Tick, want)
		}
	}
	if q.Dropped() != 3 || q.Len() != 0 {
		t.Errorf("Dropped() = %d, Len() = %d", q.Dropped(), q.Len())
	}
}
