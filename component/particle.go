package component

// ParticleComponent is the visual and lifetime state of a spawned particle
type ParticleComponent struct {
	// Size is the visual diameter in world units, also the remaining lifetime proxy
	Size float32

	// Hue is the color angle in degrees [0, 360), fixed at spawn
	Hue float32
}
