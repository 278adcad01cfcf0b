package common

import (
	"math"
)

// Clamp constrains a value to the inclusive range [lo, hi].
//
// Parameters:
//   - v: the value to constrain
//   - lo: lower bound of the range
//   - hi: upper bound of the range
//
// Returns:
//   - T: v clamped to [lo, hi]
func Clamp[T float32 | float64 | int](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b by t.
// t is not clamped; values outside [0, 1] extrapolate.
//
// Parameters:
//   - a: start value (returned when t = 0)
//   - b: end value (returned when t = 1)
//   - t: interpolation factor
//
// Returns:
//   - float64: the interpolated value
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// NormalizeAngle wraps an angle in degrees into the half-open range (-180, 180].
//
// Parameters:
//   - deg: angle in degrees
//
// Returns:
//   - float64: the equivalent angle in (-180, 180]
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg <= -180 {
		deg += 360
	}
	return deg
}

// AngleDelta returns the signed shortest-path difference between two angles in
// degrees, i.e. the smallest rotation that carries a onto b. The result is in
// (-180, 180].
//
// Parameters:
//   - a: start angle in degrees
//   - b: end angle in degrees
//
// Returns:
//   - float64: shortest signed delta from a to b
func AngleDelta(a, b float64) float64 {
	return NormalizeAngle(b - a)
}

// LerpAngle interpolates between two angles in degrees along the shorter arc.
// Interpolating 350° → 10° passes through 0°, never through 180°.
//
// Parameters:
//   - a: start angle in degrees (returned when t = 0)
//   - b: end angle in degrees (returned when t = 1, modulo 360)
//   - t: interpolation factor
//
// Returns:
//   - float64: the interpolated angle in degrees
func LerpAngle(a, b, t float64) float64 {
	return a + AngleDelta(a, b)*t
}

// Smoothstep evaluates the classic Hermite smoothstep 3t²−2t³ after clamping
// t to [0, 1]. Produces zero first derivatives at both ends.
//
// Parameters:
//   - t: normalized progress
//
// Returns:
//   - float64: eased progress in [0, 1]
func Smoothstep(t float64) float64 {
	t = Clamp(t, 0, 1)
	return t * t * (3 - 2*t)
}

// DegToRad converts degrees to radians.
//
// Parameters:
//   - deg: angle in degrees
//
// Returns:
//   - float64: angle in radians
func DegToRad(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// RadToDeg converts radians to degrees.
//
// Parameters:
//   - rad: angle in radians
//
// Returns:
//   - float64: angle in degrees
func RadToDeg(rad float64) float64 {
	return rad * (180 / math.Pi)
}
