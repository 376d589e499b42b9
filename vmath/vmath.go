package vmath

import "math"

// DegToRad converts degrees to radians in float32
func DegToRad(deg float32) float32 {
	return deg * (math.Pi / 180)
}

// RadToDeg converts radians to degrees in float32
func RadToDeg(rad float32) float32 {
	return rad * (180 / math.Pi)
}

// Mod returns x modulo m with the sign of m, result in [0, m) for m > 0
func Mod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
		// Tiny negative remainders round up to m
		if r >= m {
			r = 0
		}
	}
	return r
}

// NormalizeDeg wraps an angle in degrees into [0, 360)
func NormalizeDeg(deg float32) float32 {
	return float32(Mod(float64(deg), 360))
}

// AngleDiffDeg returns the signed shortest difference to-from in degrees, in [-180, 180)
func AngleDiffDeg(from, to float32) float32 {
	d := NormalizeDeg(to-from+180) - 180
	return d
}

// IsFinite reports whether f is neither NaN nor infinite
func IsFinite(f float32) bool {
	return !math.IsNaN(float64(f)) && !math.IsInf(float64(f), 0)
}
