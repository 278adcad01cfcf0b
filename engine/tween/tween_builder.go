package tween

import (
	"github.com/gimbal-dev/gimbal/engine/easing"
)

// Option is a functional option for configuring a Tween.
type Option[T any] func(*Tween[T])

// WithEasing sets the easing function applied to normalized progress.
// Defaults to easing.Linear.
//
// Parameters:
//   - f: the easing function
//
// Returns:
//   - Option[T]: option function to apply
func WithEasing[T any](f easing.Func) Option[T] {
	return func(tw *Tween[T]) {
		if f != nil {
			tw.easing = f
		}
	}
}

// WithInterpolator sets a typed interpolation function. Required for value
// types the tween cannot lerp natively.
//
// Parameters:
//   - interp: function producing intermediate values
//
// Returns:
//   - Option[T]: option function to apply
func WithInterpolator[T any](interp Interpolator[T]) Option[T] {
	return func(tw *Tween[T]) {
		tw.interp = interp
	}
}

// WithDelay sets a startup delay in seconds. Updates before the delay
// elapses leave the value untouched and fire no callbacks.
//
// Parameters:
//   - delay: seconds to wait before the first interpolation
//
// Returns:
//   - Option[T]: option function to apply
func WithDelay[T any](delay float64) Option[T] {
	return func(tw *Tween[T]) {
		if delay > 0 {
			tw.delay = delay
		}
	}
}

// WithRepeat sets how many extra iterations play after the first. Negative
// values repeat forever.
//
// Parameters:
//   - count: extra iterations (-1 = infinite)
//
// Returns:
//   - Option[T]: option function to apply
func WithRepeat[T any](count int) Option[T] {
	return func(tw *Tween[T]) {
		tw.repeat = count
	}
}

// WithYoyo reverses direction on every other iteration instead of snapping
// back to the start. Only meaningful together with WithRepeat.
//
// Parameters:
//   - yoyo: whether to ping-pong between from and to
//
// Returns:
//   - Option[T]: option function to apply
func WithYoyo[T any](yoyo bool) Option[T] {
	return func(tw *Tween[T]) {
		tw.yoyo = yoyo
	}
}

// OnStart registers a callback fired exactly once, on the first update after
// the delay elapses.
//
// Parameters:
//   - callback: function to call when interpolation begins
//
// Returns:
//   - Option[T]: option function to apply
func OnStart[T any](callback func()) Option[T] {
	return func(tw *Tween[T]) {
		tw.onStart = callback
	}
}

// OnUpdate registers a callback fired on every update with the interpolated
// value and the eased progress.
//
// Parameters:
//   - callback: function receiving the current value and eased t
//
// Returns:
//   - Option[T]: option function to apply
func OnUpdate[T any](callback func(value T, easedT float64)) Option[T] {
	return func(tw *Tween[T]) {
		tw.onUpdate = callback
	}
}

// OnComplete registers a callback fired exactly once when all iterations
// finish (or Complete is called with fire=true), after the final on-update.
//
// Parameters:
//   - callback: function receiving the final value
//
// Returns:
//   - Option[T]: option function to apply
func OnComplete[T any](callback func(value T)) Option[T] {
	return func(tw *Tween[T]) {
		tw.onComplete = callback
	}
}

// OnRepeat registers a callback fired each time an iteration boundary is
// crossed with more iterations remaining.
//
// Parameters:
//   - callback: function receiving the 1-based iteration number just entered
//
// Returns:
//   - Option[T]: option function to apply
func OnRepeat[T any](callback func(iteration int)) Option[T] {
	return func(tw *Tween[T]) {
		tw.onRepeat = callback
	}
}
