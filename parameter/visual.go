package parameter

// Particle color in HSLA, hue is per particle
const (
	ParticleSaturation = 1.0
	ParticleLightness  = 0.5
	ParticleAlpha      = 0.5
)

// Terminal cell geometry in world units
// A typical terminal font cell is twice as tall as it is wide
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

// BackgroundColor is the clear color behind particles
const BackgroundColor = "#ffffff"
