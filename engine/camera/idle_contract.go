package camera

// IdleContext is handed to an idle animation on attach. Pose is a live
// read-through accessor onto the camera state's current pose — it reflects
// the current values on every call, never a stale copy.
type IdleContext struct {
	// Pose returns the camera's current pose.
	Pose func() Pose
}

// IdleAnimation is the lifecycle contract every idle-animation strategy
// implements. The Controller drives it once per frame and blends its
// candidate pose into the camera while the mode machine permits.
//
// Lifecycle: Attach must precede Enter; Dispose forces an implicit Exit if
// still active. Exit only starts the blend weight fading toward zero — the
// fade continues in the background across subsequent Update calls.
type IdleAnimation interface {
	// Attach stores the live pose accessor. Must be called before Enter.
	//
	// Parameters:
	//   - ctx: the context providing read-through pose access
	Attach(ctx IdleContext)

	// Enter captures the current pose as the animation's reference, resets
	// the accumulated idle time, and starts the blend weight fading toward
	// one. Logged no-op when not attached.
	Enter()

	// Exit marks the animation inactive and starts the blend weight fading
	// toward zero. Idempotent.
	Exit()

	// Update advances the blend weight and, while active, the accumulated
	// idle time and the auto-stop check.
	//
	// Parameters:
	//   - dt: elapsed seconds this frame
	Update(dt float64)

	// ComputePose returns the strategy's candidate pose for this frame.
	//
	// Parameters:
	//   - dt: elapsed seconds this frame
	//
	// Returns:
	//   - Pose: the candidate pose
	//   - bool: false once the blend weight has settled at zero
	ComputePose(dt float64) (Pose, bool)

	// Reset zeroes blend and elapsed state without triggering exit side
	// effects.
	Reset()

	// Dispose forces Exit if still active, then releases the context.
	// Idempotent.
	Dispose()

	// Active reports whether the animation is between Enter and Exit.
	//
	// Returns:
	//   - bool: true while active
	Active() bool

	// BlendWeight returns the current blend weight in [0, 1].
	//
	// Returns:
	//   - float64: influence of the candidate pose on the camera
	BlendWeight() float64

	// IsStaticPose reports that the candidate pose is momentarily
	// unchanging, letting the caller skip redundant rendering.
	//
	// Returns:
	//   - bool: true while the candidate pose holds still
	IsStaticPose() bool

	// SetAutoStopHandler registers the callback fired exactly once when the
	// configured auto-stop duration expires.
	//
	// Parameters:
	//   - handler: function invoked on auto-stop (before the implicit Exit)
	SetAutoStopHandler(handler func())
}

// LookRetargeter is implemented by idle strategies that support live
// retargeting of their look-at point while running.
type LookRetargeter interface {
	// SetLookTarget redirects the strategy at a new world-space look target
	// without a visible orientation snap.
	//
	// Parameters:
	//   - target: the new look-at point
	SetLookTarget(target [3]float64)
}
