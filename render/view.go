// Package render draws the particle read model onto a terminal screen
package render

import (
	"github.com/lixenwraith/sparkburst/engine"
)

// View is the per-particle read model: world position, diameter and hue
type View struct {
	X, Y float32
	Size float32
	Hue  float32
}

// Collect appends a view of every live particle to dst and returns it
// Order follows the particle store and is stable between frames without spawns or removals
func Collect(world *engine.World, dst []View) []View {
	dst = dst[:0]
	entities := world.Query().
		With(world.Component.Particle).
		With(world.Component.Kinetic).
		Execute()

	for _, e := range entities {
		p, ok := world.Component.Particle.Get(e)
		if !ok {
			continue
		}
		k, ok := world.Component.Kinetic.Get(e)
		if !ok {
			continue
		}
		dst = append(dst, View{X: k.X, Y: k.Y, Size: p.Size, Hue: p.Hue})
	}
	return dst
}
