package parameter

// Burst emission (pointer just pressed)
const (
	// BurstCount is the number of particles emitted on a single press
	BurstCount = 50
	// BurstSizeMin and BurstSizeMax bound the integer diameter draw, inclusive
	BurstSizeMin = 10
	BurstSizeMax = 50
	// BurstHeadingSpan is the heading range in degrees, [0, span)
	BurstHeadingSpan = 360
)

// Stream emission (pointer held)
const (
	// StreamCount is the number of particles emitted per frame while held
	StreamCount = 5
	// StreamSizeMin and StreamSizeMax bound the integer diameter draw, inclusive
	StreamSizeMin = 10
	StreamSizeMax = 40
	// StreamLanes is the number of angular lanes headings cluster into
	StreamLanes = 4
	// StreamLaneStep is the angular distance between lanes in degrees
	StreamLaneStep = 90
	// StreamLaneSpread is the half-width of each lane in degrees, [center-spread, center+spread)
	StreamLaneSpread = 5
	// StreamHueFactor couples lane rotation to the frame hue (center = factor*hue + lane*step)
	StreamHueFactor = 3
)

// Shared spawn parameters
const (
	// SpeedMin and SpeedMax bound the integer speed draw in world units per second, inclusive
	SpeedMin = 150
	SpeedMax = 250
	// HueRate is hue advance in degrees per second of elapsed time
	HueRate = 100.0
	// HueCycle wraps the hue angle
	HueCycle = 360.0
)

// Lifecycle
const (
	// ShrinkRate is diameter loss in world units per second
	ShrinkRate = 15.0
	// MinSize is the diameter at or below which a particle is removed
	MinSize = 0.2
)
