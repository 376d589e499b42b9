package system

import (
	"github.com/lixenwraith/sparkburst/component"
	"github.com/lixenwraith/sparkburst/core"
	"github.com/lixenwraith/sparkburst/engine"
	"github.com/lixenwraith/sparkburst/parameter"
	"github.com/lixenwraith/sparkburst/physics"
)

// MotionSystem advances every kinetic entity along its heading
type MotionSystem struct {
	engine.SystemBase
}

func NewMotionSystem(world *engine.World) *MotionSystem {
	return &MotionSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *MotionSystem) Init() {}

func (s *MotionSystem) Priority() int {
	return parameter.PriorityMotion
}

func (s *MotionSystem) Update() {
	dt := s.Resource.Time.DeltaSeconds()
	s.Component.Kinetic.Each(func(_ core.Entity, k *component.KineticComponent) {
		physics.Advance(&k.Kinetic, dt)
	})
}
