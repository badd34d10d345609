package engine

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
)

var (
	ErrEmptySchedule   = errors.New("schedule has no systems")
	ErrNilSystem       = errors.New("nil system")
	ErrDuplicateSystem = errors.New("duplicate system name")
)

// SystemObserver receives the wall time of each system update
type SystemObserver func(name string, elapsed time.Duration)

// stage is a run of systems between two barriers
// batches groups systems whose declared access does not conflict; a batch
// only starts after every earlier batch it conflicts with finished
type stage struct {
	systems []System
	batches [][]System
}

// ScheduleBuilder assembles systems into stages separated by Flush barriers
type ScheduleBuilder struct {
	stages   [][]System
	current  []System
	parallel bool
}

// NewScheduleBuilder creates an empty builder
func NewScheduleBuilder() *ScheduleBuilder {
	return &ScheduleBuilder{}
}

// AddSystem appends a system to the current stage
func (b *ScheduleBuilder) AddSystem(s System) *ScheduleBuilder {
	b.current = append(b.current, s)
	return b
}

// Flush closes the current stage; every system before the barrier completes
// before any system after it starts
func (b *ScheduleBuilder) Flush() *ScheduleBuilder {
	if len(b.current) > 0 {
		b.stages = append(b.stages, b.current)
		b.current = nil
	}
	return b
}

// Parallel lets non-conflicting systems within a batch run on separate goroutines
func (b *ScheduleBuilder) Parallel(enabled bool) *ScheduleBuilder {
	b.parallel = enabled
	return b
}

// Build validates systems and computes conflict-free batches per stage
func (b *ScheduleBuilder) Build() (*Scheduler, error) {
	b.Flush()
	if len(b.stages) == 0 {
		return nil, ErrEmptySchedule
	}

	names := make(map[string]bool)
	stages := make([]stage, 0, len(b.stages))
	for i, systems := range b.stages {
		for j, s := range systems {
			if s == nil {
				return nil, fmt.Errorf("stage %d position %d: %w", i, j, ErrNilSystem)
			}
			if names[s.Name()] {
				return nil, fmt.Errorf("%q: %w", s.Name(), ErrDuplicateSystem)
			}
			names[s.Name()] = true
		}
		stages = append(stages, stage{
			systems: systems,
			batches: batchSystems(systems),
		})
	}

	return &Scheduler{stages: stages, parallel: b.parallel}, nil
}

// batchSystems places each system one level after the deepest earlier system it conflicts with
func batchSystems(systems []System) [][]System {
	levels := make([]int, len(systems))
	depth := 0
	for i, s := range systems {
		level := 0
		for j := 0; j < i; j++ {
			if s.Access().Conflicts(systems[j].Access()) && levels[j]+1 > level {
				level = levels[j] + 1
			}
		}
		levels[i] = level
		depth = max(depth, level+1)
	}

	batches := make([][]System, depth)
	for i, s := range systems {
		batches[levels[i]] = append(batches[levels[i]], s)
	}
	return batches
}

// Scheduler runs the pipeline once per Execute call
type Scheduler struct {
	stages   []stage
	parallel bool
	tick     uint64
	observer SystemObserver
}

// SetObserver installs a per-system timing callback, nil disables it
// In parallel mode the callback is invoked from several goroutines
func (s *Scheduler) SetObserver(fn SystemObserver) {
	s.observer = fn
}

// Tick returns the number of completed Execute calls
func (s *Scheduler) Tick() uint64 {
	return s.tick
}

// Stages returns system names per stage in execution order
func (s *Scheduler) Stages() [][]string {
	out := make([][]string, len(s.stages))
	for i, st := range s.stages {
		for _, sys := range st.systems {
			out[i] = append(out[i], sys.Name())
		}
	}
	return out
}

// Batches returns system names per batch for stage i
func (s *Scheduler) Batches(i int) [][]string {
	if i < 0 || i >= len(s.stages) {
		return nil
	}
	out := make([][]string, len(s.stages[i].batches))
	for j, batch := range s.stages[i].batches {
		for _, sys := range batch {
			out[j] = append(out[j], sys.Name())
		}
	}
	return out
}

// String renders the schedule for logs
func (s *Scheduler) String() string {
	var sb strings.Builder
	for i, names := range s.Stages() {
		if i > 0 {
			sb.WriteString(" | flush | ")
		}
		sb.WriteString(strings.Join(names, " -> "))
	}
	return sb.String()
}

// Execute runs every stage once
// A panic inside a system propagates to the caller; no later system runs
func (s *Scheduler) Execute(w *World) {
	tick := s.tick + 1
	for _, st := range s.stages {
		if !s.parallel {
			for _, sys := range st.systems {
				s.run(w, sys, tick)
			}
			continue
		}
		for _, batch := range st.batches {
			if len(batch) == 1 {
				s.run(w, batch[0], tick)
				continue
			}
			s.runConcurrent(w, batch, tick)
		}
	}
	s.tick = tick
}

func (s *Scheduler) run(w *World, sys System, tick uint64) {
	ctx := &Context{world: w, access: sys.Access(), system: sys.Name(), Tick: tick}
	if s.observer == nil {
		sys.Update(ctx)
		return
	}
	start := time.Now()
	sys.Update(ctx)
	s.observer(sys.Name(), time.Since(start))
}

// runConcurrent runs a batch on separate goroutines and re-raises the first panic here
func (s *Scheduler) runConcurrent(w *World, batch []System, tick uint64) {
	var (
		wg       sync.WaitGroup
		panicMu  sync.Mutex
		panicVal any
	)
	for _, sys := range batch {
		wg.Add(1)
		go func(sys System) {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					panicMu.Lock()
					if panicVal == nil {
						panicVal = r
					}
					panicMu.Unlock()
				}
			}()
			s.run(w, sys, tick)
		}(sys)
	}
	wg.Wait()

	if panicVal != nil {
		log.Printf("scheduler: system panic in concurrent batch at tick %d: %v", tick, panicVal)
		panic(panicVal)
	}
}
