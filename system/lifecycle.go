package system

import (
	"sync/atomic"

	"github.com/lixenwraith/sparkburst/component"
	"github.com/lixenwraith/sparkburst/core"
	"github.com/lixenwraith/sparkburst/engine"
	"github.com/lixenwraith/sparkburst/parameter"
)

// LifecycleAction is the outcome of one lifecycle tick
type LifecycleAction uint8

const (
	// ActionShrink: particle is alive and lost size this tick
	ActionShrink LifecycleAction = iota
	// ActionRemove: particle reached the minimum size and must be destroyed
	ActionRemove
)

func (a LifecycleAction) String() string {
	switch a {
	case ActionShrink:
		return "shrink"
	case ActionRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// TickLifecycle applies one tick with the default shrink rate and threshold
func TickLifecycle(p *component.ParticleComponent, dt float32) LifecycleAction {
	return tickLifecycle(p, dt, parameter.ShrinkRate, parameter.MinSize)
}

// tickLifecycle shrinks p while Size > minSize, otherwise signals removal
// Size is checked before shrinking, so a particle may dip below minSize for one frame
func tickLifecycle(p *component.ParticleComponent, dt, rate, minSize float32) LifecycleAction {
	if p.Size > minSize {
		p.Size -= rate * dt
		return ActionShrink
	}
	return ActionRemove
}

// LifecycleSystem shrinks particles every frame and destroys those that reached the threshold
type LifecycleSystem struct {
	engine.SystemBase

	// Entities to destroy at the end of the frame
	removeBuf []core.Entity

	statRemoved *atomic.Int64
}

func NewLifecycleSystem(world *engine.World) *LifecycleSystem {
	s := &LifecycleSystem{
		SystemBase: engine.NewSystemBase(world),
	}
	s.statRemoved = s.Resource.Status.Ints.Get("particle.removed")
	s.Init()
	return s
}

func (s *LifecycleSystem) Init() {
	s.removeBuf = make([]core.Entity, 0, 256)
	s.statRemoved.Store(0)
}

func (s *LifecycleSystem) Priority() int {
	return parameter.PriorityLifecycle
}

func (s *LifecycleSystem) Update() {
	p := &s.Resource.Config.Config.Particle
	dt := s.Resource.Time.DeltaSeconds()

	s.removeBuf = s.removeBuf[:0]
	s.Component.Particle.Each(func(e core.Entity, particle *component.ParticleComponent) {
		if tickLifecycle(particle, dt, p.ShrinkRate, p.MinSize) == ActionRemove {
			s.removeBuf = append(s.removeBuf, e)
		}
	})

	if len(s.removeBuf) == 0 {
		return
	}
	s.World.DestroyBatch(s.removeBuf)
	s.statRemoved.Add(int64(len(s.removeBuf)))
}
