package component

import (
	"github.com/lixenwraith/sparkburst/core"
)

// KineticComponent carries the position, speed and heading of a moving entity
// Mutated in place by the motion system each frame
type KineticComponent struct {
	core.Kinetic
}
