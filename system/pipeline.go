package system

import (
	"fmt"

	"github.com/lixenwraith/arena/engine"
)

// Pipeline holds the scheduler and the systems it runs
type Pipeline struct {
	Scheduler *engine.Scheduler
	Registrar *RegistrarSystem
	Movement  *MovementSystem
	Collision *CollisionSystem
	Response  *ResponseSystem
	Render    *RenderSystem
}

// NewPipeline builds the fixed arena schedule:
// registrar, movement | flush | collision, response, render
func NewPipeline(parallel bool) (*Pipeline, error) {
	p := &Pipeline{
		Registrar: NewRegistrarSystem(),
		Movement:  NewMovementSystem(),
		Collision: NewCollisionSystem(),
		Response:  NewResponseSystem(),
		Render:    NewRenderSystem(),
	}

	sched, err := engine.NewScheduleBuilder().
		Parallel(parallel).
		AddSystem(p.Registrar).
		AddSystem(p.Movement).
		Flush().
		AddSystem(p.Collision).
		AddSystem(p.Response).
		AddSystem(p.Render).
		Build()
	if err != nil {
		return nil, fmt.Errorf("build arena schedule: %w", err)
	}
	p.Scheduler = sched
	return p, nil
}

// Execute runs one tick
func (p *Pipeline) Execute(w *engine.World) {
	p.Scheduler.Execute(w)
}
