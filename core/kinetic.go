package core

// Kinetic is the kinematic state of a free-flying particle
// Speed and Heading are fixed at spawn; only X and Y advance per frame
type Kinetic struct {
	// X and Y are world space coordinates
	X, Y float32
	// Speed is scalar velocity in world units per second
	Speed float32
	// Heading is direction of travel in radians, counter-clockwise from +X
	Heading float32
}
