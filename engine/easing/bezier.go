package easing

// bezierIterations bounds the Newton refinement loop when solving the curve
// parameter for a given x.
const bezierIterations = 8

// bezierEpsilon is the convergence threshold for the Newton solve.
const bezierEpsilon = 1e-6

// CubicBezier builds an easing function from a CSS-style cubic Bézier curve.
// The curve is anchored at (0,0) and (1,1); (x1,y1) and (x2,y2) are the two
// control points. x1 and x2 should lie in [0, 1] so the curve stays a
// function of time; y values may overshoot.
//
// Solving y(t) for a given time requires inverting x(t). Newton's method is
// attempted first; when the derivative collapses or the iteration fails to
// converge, a bisection search over [0, 1] takes over.
//
// Parameters:
//   - x1, y1: first control point
//   - x2, y2: second control point
//
// Returns:
//   - Func: easing function sampling the curve
func CubicBezier(x1, y1, x2, y2 float64) Func {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		u := solveBezierParam(t, x1, x2)
		return sampleBezier(u, y1, y2)
	}
}

// sampleBezier evaluates the one-dimensional cubic Bézier polynomial
// 3(1−t)²t·p1 + 3(1−t)t²·p2 + t³ for control values p1, p2.
func sampleBezier(t, p1, p2 float64) float64 {
	d := 1 - t
	return 3*d*d*t*p1 + 3*d*t*t*p2 + t*t*t
}

// sampleBezierDerivative evaluates the derivative of sampleBezier at t.
func sampleBezierDerivative(t, p1, p2 float64) float64 {
	d := 1 - t
	return 3*d*d*p1 + 6*d*t*(p2-p1) + 3*t*t*(1-p2)
}

// solveBezierParam finds the curve parameter u such that x(u) ≈ x.
func solveBezierParam(x, x1, x2 float64) float64 {
	// Newton's method converges in a handful of iterations for
	// well-behaved control points.
	u := x
	for i := 0; i < bezierIterations; i++ {
		diff := sampleBezier(u, x1, x2) - x
		if diff < bezierEpsilon && diff > -bezierEpsilon {
			return u
		}
		slope := sampleBezierDerivative(u, x1, x2)
		if slope < bezierEpsilon && slope > -bezierEpsilon {
			break
		}
		u -= diff / slope
		if u < 0 {
			u = 0
		} else if u > 1 {
			u = 1
		}
	}

	// Bisection fallback for near-vertical tangents.
	lo, hi := 0.0, 1.0
	u = x
	for hi-lo > bezierEpsilon {
		if sampleBezier(u, x1, x2) < x {
			lo = u
		} else {
			hi = u
		}
		u = (lo + hi) / 2
	}
	return u
}
