package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys published by the arena
const (
	KeyTicks          = "tick.count"
	KeyTickDuration   = "tick.duration_us"
	KeyEntities       = "world.entities"
	KeyHandles        = "collision.handles"
	KeyPairs          = "collision.pairs"
	KeyBounces        = "collision.bounces"
	KeyIndexUpdates   = "collision.updates"
	KeyRenderInfos    = "render.infos"
	KeyDroppedEvents  = "event.dropped"
	KeySystemDuration = "system.%s.us"
)

// Registry is the central metrics facade
// Producers cache pointers once; update paths write directly to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// SystemDurationKey returns the float key timing a named system
func SystemDurationKey(name string) string {
	return fmt.Sprintf(KeySystemDuration, name)
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count()
}

// Snapshot copies every metric into a plain map
func (r *Registry) Snapshot() map[string]float64 {
	out := make(map[string]float64, r.TotalCount())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out[key] = float64(v.Load())
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		out[key] = v.Get()
	})
	return out
}

// StatusLine renders selected counters as "key=value" pairs for a one-line display
func (r *Registry) StatusLine(keys ...string) string {
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		switch {
		case r.Ints.Has(k):
			parts = append(parts, fmt.Sprintf("%s=%d", shortKey(k), r.Ints.Get(k).Load()))
		case r.Floats.Has(k):
			parts = append(parts, fmt.Sprintf("%s=%.1f", shortKey(k), r.Floats.Get(k).Get()))
		}
	}
	return strings.Join(parts, " ")
}

// shortKey drops the namespace prefix: "collision.pairs" -> "pairs"
func shortKey(k string) string {
	if i := strings.LastIndexByte(k, '.'); i >= 0 && i+1 < len(k) {
		return k[i+1:]
	}
	return k
}
