// Package tween provides a generic time-driven interpolator between two
// typed values, with delay, repeat, yoyo, easing, and lifecycle callbacks.
// Tweens are driven explicitly by Update calls from the frame loop; the
// package never starts timers of its own. A Tween is not safe for concurrent
// use — drive it from a single goroutine, typically the engine tick loop.
package tween

import (
	"log"

	"github.com/gimbal-dev/gimbal/engine/easing"
)

// State identifies a tween's position in its lifecycle.
type State int

const (
	// StateIdle is the initial state; also re-entered by Stop.
	StateIdle State = iota

	// StateRunning advances on every Update call.
	StateRunning

	// StatePaused holds the current value; Update is a no-op.
	StatePaused

	// StateCompleted is terminal; reached when all iterations finish or
	// Complete is called.
	StateCompleted
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Interpolator produces an intermediate value between from and to for an
// eased progress t. t may leave [0, 1] when the easing overshoots.
type Interpolator[T any] func(from, to T, t float64) T

// Tween interpolates between two values of type T over a fixed duration.
type Tween[T any] struct {
	from     T
	to       T
	duration float64
	delay    float64
	repeat   int
	yoyo     bool
	easing   easing.Func
	interp   Interpolator[T]

	onStart    func()
	onUpdate   func(value T, easedT float64)
	onComplete func(value T)
	onRepeat   func(iteration int)

	state         State
	elapsed       float64
	iteration     int
	reversed      bool
	startFired    bool
	completeFired bool
	value         T

	fut        *Future[T]
	warnedLerp bool
}

// New creates a tween from `from` to `to` over `duration` seconds. The tween
// starts in StateIdle; call Start (or use Run) before driving it with Update.
// Without WithInterpolator the tween interpolates float64, float32, and int
// values natively; other types hold `from` until completion and log a
// warning on first use.
//
// Parameters:
//   - from: initial value
//   - to: final value
//   - duration: seconds per iteration (values <= 0 complete on the first Update)
//   - options: functional options (easing, delay, repeat, yoyo, callbacks)
//
// Returns:
//   - *Tween[T]: the configured tween
func New[T any](from, to T, duration float64, options ...Option[T]) *Tween[T] {
	tw := &Tween[T]{
		from:     from,
		to:       to,
		duration: duration,
		easing:   easing.Linear,
		value:    from,
	}
	for _, opt := range options {
		opt(tw)
	}
	return tw
}

// Run creates a tween, starts it immediately, and returns a Future that
// resolves with the final value when the tween completes. The future is also
// resolved (as canceled) if the tween is stopped before finishing. The tween
// must still be driven by explicit Update calls.
//
// Parameters:
//   - from: initial value
//   - to: final value
//   - duration: seconds per iteration
//   - options: functional options
//
// Returns:
//   - *Tween[T]: the running tween
//   - *Future[T]: completion token resolving with the final value
func Run[T any](from, to T, duration float64, options ...Option[T]) (*Tween[T], *Future[T]) {
	tw := New(from, to, duration, options...)
	tw.fut = newFuture[T]()
	tw.Start()
	return tw, tw.fut
}

// State returns the tween's current lifecycle state.
func (tw *Tween[T]) State() State { return tw.state }

// Value returns the most recently computed value.
func (tw *Tween[T]) Value() T { return tw.value }

// Start transitions the tween from StateIdle to StateRunning. Starting a
// running, paused, or completed tween is a no-op.
func (tw *Tween[T]) Start() {
	if tw.state != StateIdle {
		return
	}
	tw.state = StateRunning
}

// Pause suspends a running tween. Update becomes a no-op until Resume.
func (tw *Tween[T]) Pause() {
	if tw.state == StateRunning {
		tw.state = StatePaused
	}
}

// Resume continues a paused tween.
func (tw *Tween[T]) Resume() {
	if tw.state == StatePaused {
		tw.state = StateRunning
	}
}

// Stop resets the tween to StateIdle, discarding elapsed time and iteration
// progress. No completion callback fires, but a pending Future is resolved
// as canceled so awaiting callers are never left hanging. Safe to call in
// any state.
func (tw *Tween[T]) Stop() {
	if tw.fut != nil {
		tw.fut.resolve(tw.value, true)
	}
	tw.state = StateIdle
	tw.elapsed = 0
	tw.iteration = 0
	tw.reversed = false
	tw.startFired = false
	tw.value = tw.from
}

// Update advances the tween by dt seconds. Returns true while the tween is
// still active (running or paused), false once idle or completed.
//
// Parameters:
//   - dt: elapsed seconds since the previous update
//
// Returns:
//   - bool: true if the tween still needs future updates
func (tw *Tween[T]) Update(dt float64) bool {
	switch tw.state {
	case StatePaused:
		return true
	case StateIdle, StateCompleted:
		return false
	}

	tw.elapsed += dt
	if tw.elapsed < tw.delay {
		return true
	}

	if !tw.startFired {
		tw.startFired = true
		if tw.onStart != nil {
			tw.onStart()
		}
	}

	if tw.duration <= 0 {
		tw.finish(true)
		return false
	}

	local := tw.elapsed - tw.delay
	iterations := tw.totalIterations()
	if iterations > 0 && local >= tw.duration*float64(iterations) {
		tw.finish(true)
		return false
	}

	iter := int(local / tw.duration)
	for tw.iteration < iter {
		tw.iteration++
		if tw.yoyo {
			tw.reversed = !tw.reversed
		}
		if tw.onRepeat != nil {
			tw.onRepeat(tw.iteration)
		}
	}

	t := (local - float64(iter)*tw.duration) / tw.duration
	if tw.reversed {
		t = 1 - t
	}
	tw.apply(t)
	return true
}

// Seek recomputes the value from an absolute time (measured from Start,
// including the delay) without stepping through intermediate frames. No
// lifecycle callbacks fire; iteration and yoyo direction are recomputed to
// match the target time.
//
// Parameters:
//   - time: absolute time in seconds since the tween started
func (tw *Tween[T]) Seek(time float64) {
	if time < 0 {
		time = 0
	}
	tw.elapsed = time
	if tw.duration <= 0 {
		return
	}
	local := time - tw.delay
	if local < 0 {
		local = 0
	}
	iter := int(local / tw.duration)
	iterations := tw.totalIterations()
	if iterations > 0 && iter >= iterations {
		iter = iterations - 1
		local = tw.duration * float64(iterations)
	}
	tw.iteration = iter
	tw.reversed = tw.yoyo && iter%2 == 1

	t := (local - float64(iter)*tw.duration) / tw.duration
	if t > 1 {
		t = 1
	}
	if tw.reversed {
		t = 1 - t
	}
	tw.value = tw.interpolate(tw.easing(t))
}

// Complete force-finishes the tween, snapping the value exactly to the end
// value. Completion callbacks and the Future fire at most once across the
// tween's lifetime regardless of how completion is reached.
//
// Parameters:
//   - fire: when true, the final on-update and on-complete callbacks fire
func (tw *Tween[T]) Complete(fire bool) {
	if tw.state == StateCompleted {
		return
	}
	tw.finish(fire)
}

// finish snaps to the end value, transitions to StateCompleted, and fires
// the terminal callbacks exactly once.
func (tw *Tween[T]) finish(fire bool) {
	tw.state = StateCompleted
	tw.value = tw.to
	if fire && !tw.completeFired {
		tw.completeFired = true
		if tw.onUpdate != nil {
			tw.onUpdate(tw.value, 1)
		}
		if tw.onComplete != nil {
			tw.onComplete(tw.value)
		}
	}
	tw.completeFired = true
	if tw.fut != nil {
		tw.fut.resolve(tw.value, false)
	}
}

// apply computes the eased value for a raw progress t and fires on-update.
func (tw *Tween[T]) apply(t float64) {
	eased := tw.easing(t)
	tw.value = tw.interpolate(eased)
	if tw.onUpdate != nil {
		tw.onUpdate(tw.value, eased)
	}
}

// totalIterations returns the number of playthroughs including repeats, or 0
// for an infinite tween.
func (tw *Tween[T]) totalIterations() int {
	if tw.repeat < 0 {
		return 0
	}
	return tw.repeat + 1
}

// interpolate produces the value for an eased progress. Falls back to native
// numeric lerp when no interpolator was configured.
func (tw *Tween[T]) interpolate(t float64) T {
	if tw.interp != nil {
		return tw.interp(tw.from, tw.to, t)
	}
	switch from := any(tw.from).(type) {
	case float64:
		to := any(tw.to).(float64)
		return any(from + (to-from)*t).(T)
	case float32:
		to := any(tw.to).(float32)
		return any(from + (to-from)*float32(t)).(T)
	case int:
		to := any(tw.to).(int)
		return any(from + int(float64(to-from)*t)).(T)
	default:
		if !tw.warnedLerp {
			tw.warnedLerp = true
			log.Printf("tween: no interpolator for %T, holding start value until completion", tw.from)
		}
		if t >= 1 {
			return tw.to
		}
		return tw.from
	}
}
