package system

import (
	"github.com/lixenwraith/sparkburst/engine"
	"github.com/lixenwraith/sparkburst/vmath"
)

// RegisterAll adds the simulation pipeline to the world:
// spawn, motion, lifecycle, diagnostics
func RegisterAll(world *engine.World, rng *vmath.FastRand) {
	world.AddSystem(NewSpawnSystem(world, rng))
	world.AddSystem(NewMotionSystem(world))
	world.AddSystem(NewLifecycleSystem(world))
	world.AddSystem(NewDiagnosticsSystem(world))
}
