package physics

import (
	"math"

	"github.com/lixenwraith/sparkburst/core"
)

// Advance integrates position along heading: p = p + speed*dt*(cos θ, sin θ)
// dt is in seconds and is not clamped; a stalled frame produces a proportional jump
func Advance(k *core.Kinetic, dt float32) {
	vx, vy := Velocity(k)
	k.X += vx * dt
	k.Y += vy * dt
}

// Velocity returns the cartesian velocity vector in world units per second
func Velocity(k *core.Kinetic) (vx, vy float32) {
	sin, cos := math.Sincos(float64(k.Heading))
	return k.Speed * float32(cos), k.Speed * float32(sin)
}
