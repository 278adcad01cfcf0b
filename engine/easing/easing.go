// Package easing provides the standard family of easing curves used by the
// tween engine and camera transitions. All functions map a normalized time
// t in [0, 1] to a normalized output. The back, elastic, and bounce families
// intentionally overshoot outside [0, 1]; callers must not assume bounded
// output.
package easing

import (
	"math"
)

// Func maps normalized time t in [0, 1] to a normalized progress value.
// Every standard easing satisfies f(0) = 0 and f(1) = 1.
type Func func(t float64) float64

// Linear returns t unchanged.
func Linear(t float64) float64 { return t }

// QuadIn accelerates from zero velocity.
func QuadIn(t float64) float64 { return t * t }

// QuadOut decelerates to zero velocity.
func QuadOut(t float64) float64 { return t * (2 - t) }

// QuadInOut accelerates until halfway, then decelerates.
func QuadInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return -1 + (4-2*t)*t
}

// CubicIn accelerates from zero velocity.
func CubicIn(t float64) float64 { return t * t * t }

// CubicOut decelerates to zero velocity.
func CubicOut(t float64) float64 {
	u := t - 1
	return u*u*u + 1
}

// CubicInOut accelerates until halfway, then decelerates.
func CubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := 2*t - 2
	return 0.5*u*u*u + 1
}

// QuartIn accelerates from zero velocity.
func QuartIn(t float64) float64 { return t * t * t * t }

// QuartOut decelerates to zero velocity.
func QuartOut(t float64) float64 {
	u := t - 1
	return 1 - u*u*u*u
}

// QuartInOut accelerates until halfway, then decelerates.
func QuartInOut(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	u := t - 1
	return 1 - 8*u*u*u*u
}

// QuintIn accelerates from zero velocity.
func QuintIn(t float64) float64 { return t * t * t * t * t }

// QuintOut decelerates to zero velocity.
func QuintOut(t float64) float64 {
	u := t - 1
	return u*u*u*u*u + 1
}

// QuintInOut accelerates until halfway, then decelerates.
func QuintInOut(t float64) float64 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	u := 2*t - 2
	return 0.5*u*u*u*u*u + 1
}

// SineIn accelerates along a quarter sine wave.
func SineIn(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) }

// SineOut decelerates along a quarter sine wave.
func SineOut(t float64) float64 { return math.Sin(t * math.Pi / 2) }

// SineInOut eases along a half sine wave.
func SineInOut(t float64) float64 { return -(math.Cos(math.Pi*t) - 1) / 2 }

// ExpoIn accelerates exponentially. Returns exactly 0 at t = 0.
func ExpoIn(t float64) float64 {
	if t == 0 {
		return 0
	}
	return math.Pow(2, 10*t-10)
}

// ExpoOut decelerates exponentially. Returns exactly 1 at t = 1.
func ExpoOut(t float64) float64 {
	if t == 1 {
		return 1
	}
	return 1 - math.Pow(2, -10*t)
}

// ExpoInOut accelerates then decelerates exponentially.
// Returns exactly 0 at t = 0 and exactly 1 at t = 1.
func ExpoInOut(t float64) float64 {
	switch {
	case t == 0:
		return 0
	case t == 1:
		return 1
	case t < 0.5:
		return math.Pow(2, 20*t-10) / 2
	default:
		return (2 - math.Pow(2, -20*t+10)) / 2
	}
}

// CircIn accelerates along a quarter circle arc.
func CircIn(t float64) float64 { return 1 - math.Sqrt(1-t*t) }

// CircOut decelerates along a quarter circle arc.
func CircOut(t float64) float64 {
	u := t - 1
	return math.Sqrt(1 - u*u)
}

// CircInOut eases along two quarter circle arcs.
func CircInOut(t float64) float64 {
	if t < 0.5 {
		return (1 - math.Sqrt(1-4*t*t)) / 2
	}
	u := -2*t + 2
	return (math.Sqrt(1-u*u) + 1) / 2
}

// backOvershoot is the standard overshoot constant producing roughly 10%
// overshoot for the back family.
const backOvershoot = 1.70158

// BackIn pulls slightly backwards before accelerating forward.
// Output dips below 0 near the start.
func BackIn(t float64) float64 {
	const s = backOvershoot
	return t * t * ((s+1)*t - s)
}

// BackOut overshoots the target slightly before settling.
// Output exceeds 1 near the end.
func BackOut(t float64) float64 {
	const s = backOvershoot
	u := t - 1
	return u*u*((s+1)*u+s) + 1
}

// BackInOut combines BackIn and BackOut with a scaled overshoot.
func BackInOut(t float64) float64 {
	const s = backOvershoot * 1.525
	u := 2 * t
	if u < 1 {
		return 0.5 * (u * u * ((s+1)*u - s))
	}
	u -= 2
	return 0.5 * (u*u*((s+1)*u+s) + 2)
}

// ElasticIn oscillates with growing amplitude before snapping to the target.
// Returns exactly 0 at t = 0 and 1 at t = 1.
func ElasticIn(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	const c = 2 * math.Pi / 3
	return -math.Pow(2, 10*t-10) * math.Sin((10*t-10.75)*c)
}

// ElasticOut overshoots the target and oscillates with decaying amplitude.
// Returns exactly 0 at t = 0 and 1 at t = 1.
func ElasticOut(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	const c = 2 * math.Pi / 3
	return math.Pow(2, -10*t)*math.Sin((10*t-0.75)*c) + 1
}

// ElasticInOut oscillates into and out of the midpoint.
// Returns exactly 0 at t = 0 and 1 at t = 1.
func ElasticInOut(t float64) float64 {
	switch t {
	case 0:
		return 0
	case 1:
		return 1
	}
	const c = 2 * math.Pi / 4.5
	if t < 0.5 {
		return -(math.Pow(2, 20*t-10) * math.Sin((20*t-11.125)*c)) / 2
	}
	return (math.Pow(2, -20*t+10)*math.Sin((20*t-11.125)*c))/2 + 1
}

// BounceOut decelerates with a series of diminishing bounces.
func BounceOut(t float64) float64 {
	const n = 7.5625
	const d = 2.75
	switch {
	case t < 1/d:
		return n * t * t
	case t < 2/d:
		t -= 1.5 / d
		return n*t*t + 0.75
	case t < 2.5/d:
		t -= 2.25 / d
		return n*t*t + 0.9375
	default:
		t -= 2.625 / d
		return n*t*t + 0.984375
	}
}

// BounceIn is the time-reversed BounceOut.
func BounceIn(t float64) float64 { return 1 - BounceOut(1-t) }

// BounceInOut bounces into and out of the midpoint.
func BounceInOut(t float64) float64 {
	if t < 0.5 {
		return (1 - BounceOut(1-2*t)) / 2
	}
	return (1 + BounceOut(2*t-1)) / 2
}
