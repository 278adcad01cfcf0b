package idle

import (
	"math/rand"
)

// DriftPauseOption is a functional option for configuring a DriftPause
// animation.
type DriftPauseOption func(*DriftPause)

// WithHoverRadius sets the radius of the horizontal disk waypoints are
// sampled on, in world units.
//
// Parameters:
//   - radius: the hover disk radius
//
// Returns:
//   - DriftPauseOption: option function to apply
func WithHoverRadius(radius float64) DriftPauseOption {
	return func(d *DriftPause) {
		if radius > 0 {
			d.hoverRadius = radius
		}
	}
}

// WithLookTarget fixes the world-space point the camera keeps aiming at
// while hovering. Without it the look target is projected from the pose
// captured on Enter.
//
// Parameters:
//   - target: the fixed look-at point
//
// Returns:
//   - DriftPauseOption: option function to apply
func WithLookTarget(target [3]float64) DriftPauseOption {
	return func(d *DriftPause) {
		t := target
		d.lookTarget = &t
	}
}

// WithDriftDurationRange sets the [min, max] duration in seconds of a
// drift segment.
//
// Parameters:
//   - min: shortest drift duration
//   - max: longest drift duration
//
// Returns:
//   - DriftPauseOption: option function to apply
func WithDriftDurationRange(min, max float64) DriftPauseOption {
	return func(d *DriftPause) {
		d.driftRange = [2]float64{min, max}
	}
}

// WithPauseDurationRange sets the [min, max] duration in seconds of a
// pause segment.
//
// Parameters:
//   - min: shortest pause duration
//   - max: longest pause duration
//
// Returns:
//   - DriftPauseOption: option function to apply
func WithPauseDurationRange(min, max float64) DriftPauseOption {
	return func(d *DriftPause) {
		d.pauseRange = [2]float64{min, max}
	}
}

// WithStepScaleRange sets the [min, max] random scale applied to the hover
// radius when sampling each waypoint.
//
// Parameters:
//   - min: smallest radius scale
//   - max: largest radius scale
//
// Returns:
//   - DriftPauseOption: option function to apply
func WithStepScaleRange(min, max float64) DriftPauseOption {
	return func(d *DriftPause) {
		d.stepScaleRange = [2]float64{min, max}
	}
}

// WithSeed seeds the animation's private random generator, making the
// waypoint and duration sequence fully deterministic.
//
// Parameters:
//   - seed: the random seed
//
// Returns:
//   - DriftPauseOption: option function to apply
func WithSeed(seed int64) DriftPauseOption {
	return func(d *DriftPause) {
		d.rng = rand.New(rand.NewSource(seed))
	}
}

// WithBlendTimeConstant sets the damping time constant in seconds for the
// blend-weight fade in and out.
//
// Parameters:
//   - tau: the blend time constant
//
// Returns:
//   - DriftPauseOption: option function to apply
func WithBlendTimeConstant(tau float64) DriftPauseOption {
	return func(d *DriftPause) {
		if tau > 0 {
			d.blendTau = tau
		}
	}
}

// WithAutoStop stops the animation automatically after the given number of
// seconds of accumulated idle time. Zero disables auto-stop.
//
// Parameters:
//   - seconds: idle time before the animation exits itself
//
// Returns:
//   - DriftPauseOption: option function to apply
func WithAutoStop(seconds float64) DriftPauseOption {
	return func(d *DriftPause) {
		d.autoStop = seconds
	}
}
