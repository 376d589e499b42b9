package system

import (
	"github.com/lixenwraith/sparkburst/config"
	"github.com/lixenwraith/sparkburst/parameter"
	"github.com/lixenwraith/sparkburst/vmath"
)

// SpawnDescriptor is the randomized physical state of a particle about to be created
type SpawnDescriptor struct {
	Size    float32
	Speed   float32
	Heading float32 // radians
	Hue     float32 // degrees
}

// FrameHue returns the hue shared by every particle spawned in a frame, in [0, 360)
func FrameHue(elapsedSeconds, rate float64) float32 {
	hue := float32(vmath.Mod(elapsedSeconds*rate, parameter.HueCycle))
	if hue >= parameter.HueCycle {
		hue = 0
	}
	return hue
}

// AppendBurst appends the descriptors of a press burst
// Headings are whole degrees uniform over [0, 360)
func AppendBurst(dst []SpawnDescriptor, rng *vmath.FastRand, p *config.ParticleConfig, hue float32) []SpawnDescriptor {
	for i := 0; i < p.BurstCount; i++ {
		size := rng.IntRange(p.BurstSizeMin, p.BurstSizeMax)
		speed := rng.IntRange(p.SpeedMin, p.SpeedMax)
		deg := rng.IntBetween(0, parameter.BurstHeadingSpan)

		dst = append(dst, SpawnDescriptor{
			Size:    float32(size),
			Speed:   float32(speed),
			Heading: vmath.DegToRad(float32(deg)),
			Hue:     hue,
		})
	}
	return dst
}

// AppendStream appends the descriptors of one held frame
// The i-th particle lands in lane 1+i%lanes, within ±spread degrees of StreamLaneCenter
func AppendStream(dst []SpawnDescriptor, rng *vmath.FastRand, p *config.ParticleConfig, hue float32) []SpawnDescriptor {
	for i := 0; i < p.StreamCount; i++ {
		center := StreamLaneCenter(p, hue, i)

		size := rng.IntRange(p.StreamSizeMin, p.StreamSizeMax)
		speed := rng.IntRange(p.SpeedMin, p.SpeedMax)
		deg := rng.IntBetween(center-p.StreamLaneSpread, center+p.StreamLaneSpread)

		dst = append(dst, SpawnDescriptor{
			Size:    float32(size),
			Speed:   float32(speed),
			Heading: vmath.DegToRad(float32(deg)),
			Hue:     hue,
		})
	}
	return dst
}

// StreamLaneCenter returns the lane center in degrees for the i-th stream particle
// center = factor*int(hue) + (1 + i%lanes)*step, not wrapped into [0, 360)
func StreamLaneCenter(p *config.ParticleConfig, hue float32, i int) int {
	lane := 1 + i%p.StreamLanes
	return p.StreamHueFactor*int(hue) + lane*p.StreamLaneStep
}
