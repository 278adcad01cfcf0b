package camera

import (
	"github.com/gimbal-dev/gimbal/engine/easing"
)

// ControllerOption is a functional option for configuring a Controller.
type ControllerOption func(*controllerImpl)

// transitionRequest carries per-request transition overrides.
type transitionRequest struct {
	duration float64
	ease     easing.Func
}

// TransitionOption is a functional option for a single TransitionTo request.
type TransitionOption func(*transitionRequest)

// WithState supplies the pose state the controller drives. Without it the
// controller creates its own.
//
// Parameters:
//   - state: the camera pose state
//
// Returns:
//   - ControllerOption: option function to apply
func WithState(state CameraState) ControllerOption {
	return func(c *controllerImpl) {
		if state != nil {
			c.state = state
		}
	}
}

// WithModeMachine supplies the mode machine the controller drives. Without
// it the controller creates its own.
//
// Parameters:
//   - machine: the mode machine
//
// Returns:
//   - ControllerOption: option function to apply
func WithModeMachine(machine ModeMachine) ControllerOption {
	return func(c *controllerImpl) {
		if machine != nil {
			c.machine = machine
		}
	}
}

// WithIdleAnimation installs an idle animation at construction time. The
// animation is attached once the controller's pose state is final.
//
// Parameters:
//   - anim: the idle animation
//
// Returns:
//   - ControllerOption: option function to apply
func WithIdleAnimation(anim IdleAnimation) ControllerOption {
	return func(c *controllerImpl) {
		c.pendingIdle = anim
	}
}

// WithInactivityTimeout sets the seconds of input silence before the
// controller promotes a user-control mode into idle.
//
// Parameters:
//   - seconds: the inactivity timeout (must be positive)
//
// Returns:
//   - ControllerOption: option function to apply
func WithInactivityTimeout(seconds float64) ControllerOption {
	return func(c *controllerImpl) {
		if seconds > 0 {
			c.inactivityTimeout = seconds
		}
	}
}

// WithTransitionCooldown sets the window in seconds during which repeated
// transitions to the same destination reuse the pending future.
//
// Parameters:
//   - seconds: the cooldown window (zero disables deduplication)
//
// Returns:
//   - ControllerOption: option function to apply
func WithTransitionCooldown(seconds float64) ControllerOption {
	return func(c *controllerImpl) {
		if seconds >= 0 {
			c.cooldown = seconds
		}
	}
}

// WithDefaultTransitionDuration sets the tween length used when a
// transition request does not specify one.
//
// Parameters:
//   - seconds: the default duration
//
// Returns:
//   - ControllerOption: option function to apply
func WithDefaultTransitionDuration(seconds float64) ControllerOption {
	return func(c *controllerImpl) {
		if seconds > 0 {
			c.defaultDuration = seconds
		}
	}
}

// WithDefaultTransitionEasing sets the easing curve used when a transition
// request does not specify one.
//
// Parameters:
//   - ease: the easing function (nil = linear)
//
// Returns:
//   - ControllerOption: option function to apply
func WithDefaultTransitionEasing(ease easing.Func) ControllerOption {
	return func(c *controllerImpl) {
		c.defaultEase = ease
	}
}

// WithDuration overrides the transition duration for one request.
//
// Parameters:
//   - seconds: the transition length (non-positive degrades to an instant
//     retarget)
//
// Returns:
//   - TransitionOption: option function to apply
func WithDuration(seconds float64) TransitionOption {
	return func(r *transitionRequest) {
		r.duration = seconds
	}
}

// WithEase overrides the easing curve for one request.
//
// Parameters:
//   - ease: the easing function (nil = linear)
//
// Returns:
//   - TransitionOption: option function to apply
func WithEase(ease easing.Func) TransitionOption {
	return func(r *transitionRequest) {
		r.ease = ease
	}
}
