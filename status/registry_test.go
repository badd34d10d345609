package status

import (
	"sync"
	"testing"
)

// TestMetricMapCachedPointer verifies repeated Get returns the same metric
func TestMetricMapCachedPointer(t *testing.T) {
	r := NewRegistry()
	a := r.Ints.Get(KeyTicks)
	b := r.Ints.Get(KeyTicks)
	if a != b {
		t.Fatal("Get returned different pointers for the same key")
	}
	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("Shared counter = %d, want 3", b.Load())
	}
}

// TestMetricMapConcurrentGet verifies concurrent registration yields one metric
func TestMetricMapConcurrentGet(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Ints.Get(KeyBounces).Add(1)
		}()
	}
	wg.Wait()

	if got := r.Ints.Get(KeyBounces).Load(); got != 16 {
		t.Errorf("Counter = %d, want 16", got)
	}
	if r.Ints.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Ints.Count())
	}
}

func TestRegistrySnapshotAndStatusLine(t *testing.T) {
	r := NewRegistry()
	r.Ints.Get(KeyTicks).Store(120)
	r.Ints.Get(KeyPairs).Store(1)
	r.Floats.Get(KeyTickDuration).Set(42.25)

	snap := r.Snapshot()
	if snap[KeyTicks] != 120 || snap[KeyTickDuration] != 42.25 {
		t.Errorf("Snapshot = %v", snap)
	}

	line := r.StatusLine(KeyTicks, KeyPairs, KeyTickDuration, "missing.key")
	if line != "count=120 pairs=1 duration_us=42.2" && line != "count=120 pairs=1 duration_us=42.3" {
		t.Errorf("StatusLine = %q", line)
	}
	if r.TotalCount() != 3 {
		t.Errorf("TotalCount() = %d", r.TotalCount())
	}
}

func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat
	if f.Get() != 0 {
		t.Error("Zero value should be 0")
	}
	f.Set(1.5)
	if got := f.Add(2); got != 3.5 {
		t.Errorf("Add = %v", got)
	}
	var s AtomicFloat
	if got := s.Smooth(10, 0.5); got != 10 {
		t.Errorf("First Smooth = %v, want sample", got)
	}
	if got := s.Smooth(20, 0.5); got != 15 {
		t.Errorf("Second Smooth = %v, want 15", got)
	}
}

func TestSystemDurationKey(t *testing.T) {
	if got := SystemDurationKey("collision"); got != "system.collision.us" {
		t.Errorf("SystemDurationKey = %q", got)
	}
}
