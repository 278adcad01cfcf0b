package idle

// AutoRotateOption is a functional option for configuring an AutoRotate
// animation.
type AutoRotateOption func(*AutoRotate)

// WithSpeed sets the angular speed in degrees per second.
//
// Parameters:
//   - degreesPerSecond: orbit speed (must be positive)
//
// Returns:
//   - AutoRotateOption: option function to apply
func WithSpeed(degreesPerSecond float64) AutoRotateOption {
	return func(r *AutoRotate) {
		if degreesPerSecond > 0 {
			r.speed = degreesPerSecond
		}
	}
}

// WithAxis selects the orbit axis.
//
// Parameters:
//   - axis: AxisYaw or AxisPitch
//
// Returns:
//   - AutoRotateOption: option function to apply
func WithAxis(axis RotationAxis) AutoRotateOption {
	return func(r *AutoRotate) {
		r.axis = axis
	}
}

// WithReverse flips the initial rotation direction.
//
// Parameters:
//   - reverse: true to start rotating the other way
//
// Returns:
//   - AutoRotateOption: option function to apply
func WithReverse(reverse bool) AutoRotateOption {
	return func(r *AutoRotate) {
		r.reverse = reverse
	}
}

// WithMaintainPitch keeps the reference pose's pitch instead of aiming
// straight at the focus point, useful for shallow orbit arcs.
//
// Parameters:
//   - maintain: true to preserve the entry pitch
//
// Returns:
//   - AutoRotateOption: option function to apply
func WithMaintainPitch(maintain bool) AutoRotateOption {
	return func(r *AutoRotate) {
		r.maintainPitch = maintain
	}
}

// WithBounds restricts the orbit to [lo, hi] degrees relative to the entry
// angle; the rotation ping-pongs between the bounds instead of wrapping.
//
// Parameters:
//   - lo: lower bound in degrees (typically negative)
//   - hi: upper bound in degrees
//
// Returns:
//   - AutoRotateOption: option function to apply
func WithBounds(lo, hi float64) AutoRotateOption {
	return func(r *AutoRotate) {
		b := [2]float64{lo, hi}
		r.bounds = &b
	}
}

// WithRotateBlendTimeConstant sets the damping time constant in seconds
// for the blend-weight fade in and out.
//
// Parameters:
//   - tau: the blend time constant
//
// Returns:
//   - AutoRotateOption: option function to apply
func WithRotateBlendTimeConstant(tau float64) AutoRotateOption {
	return func(r *AutoRotate) {
		if tau > 0 {
			r.blendTau = tau
		}
	}
}

// WithRotateAutoStop stops the animation automatically after the given
// number of seconds of accumulated idle time. Zero disables auto-stop.
//
// Parameters:
//   - seconds: idle time before the animation exits itself
//
// Returns:
//   - AutoRotateOption: option function to apply
func WithRotateAutoStop(seconds float64) AutoRotateOption {
	return func(r *AutoRotate) {
		r.autoStop = seconds
	}
}
