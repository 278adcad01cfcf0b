package camera

import (
	"log"
	"sync"

	"github.com/gimbal-dev/gimbal/engine/easing"
	"github.com/gimbal-dev/gimbal/engine/tween"
)

const (
	// defaultInactivityTimeout is the seconds of input silence before the
	// controller promotes a user-control mode into idle.
	defaultInactivityTimeout = 10.0

	// defaultTransitionCooldown is the window in seconds during which a
	// repeated transition to the same destination reuses the pending future
	// instead of restarting the tween.
	defaultTransitionCooldown = 0.4

	// defaultTransitionDuration is the tween length used when a transition
	// request does not specify one.
	defaultTransitionDuration = 1.2
)

// InputKind classifies user input for activity notifications.
type InputKind int

const (
	// InputPointer covers mouse or touch drags.
	InputPointer InputKind = iota

	// InputScroll covers wheel and pinch zoom.
	InputScroll

	// InputKeyboard covers movement keys.
	InputKeyboard
)

// String returns the input kind name for logging.
func (k InputKind) String() string {
	switch k {
	case InputPointer:
		return "pointer"
	case InputScroll:
		return "scroll"
	case InputKeyboard:
		return "keyboard"
	default:
		return "unknown"
	}
}

// pendingTransition tracks an in-flight scripted transition so it is
// finalized exactly once, whether it completes, is superseded, or is
// interrupted by input.
type pendingTransition struct {
	fut        *tween.Future[Pose]
	dest       Pose
	superseded bool
}

// controllerImpl is the single implementation of Controller.
type controllerImpl struct {
	mu *sync.Mutex

	state   CameraState
	machine ModeMachine

	idleAnim IdleAnimation

	// pendingIdle defers an option-supplied animation until construction
	// finishes, so it attaches to the final pose state.
	pendingIdle IdleAnimation

	// idleSuppressed latches after an auto-stop until input or an explicit
	// restart re-arms idle promotion.
	idleSuppressed    bool
	autoStopRequested bool

	// stagedLook holds a look-target request made while idle was not
	// running, applied on the next idle entry.
	stagedLook *[3]float64

	inactivity        float64
	inactivityTimeout float64

	// clock accumulates Update time and stamps transition requests for the
	// cooldown check. lastTransitionEnd is the chain point: a new transition
	// starts from it rather than from whatever the pose store drifted to.
	clock               float64
	cooldown            float64
	lastTransitionEnd   Pose
	lastTransitionStamp float64
	hasLastTransition   bool

	pending *pendingTransition

	defaultDuration float64
	defaultEase     easing.Func

	disposed bool
}

// Controller orchestrates camera pose ownership: it drives the pose state,
// the mode machine, and an optional idle animation from a single per-frame
// Update, and guarantees that exactly one mechanism writes the pose each
// frame. Input notifications, scripted transitions, and idle promotion all
// route through it.
//
// Thread-safe, but designed to be driven from one update goroutine.
type Controller interface {
	// Update advances the whole camera system by one frame: idle
	// bookkeeping, inactivity promotion, pose damping or tween stepping,
	// transition finalization, and idle pose blending, in that order.
	//
	// Parameters:
	//   - dt: elapsed seconds this frame
	Update(dt float64)

	// Pose returns a copy of the current camera pose.
	//
	// Returns:
	//   - Pose: the current pose
	Pose() Pose

	// State returns the underlying pose state for control rigs to write
	// targets into.
	//
	// Returns:
	//   - CameraState: the pose state
	State() CameraState

	// Modes returns the mode machine, for observers and mode queries.
	//
	// Returns:
	//   - ModeMachine: the mode machine
	Modes() ModeMachine

	// Mode returns the active control mode.
	//
	// Returns:
	//   - Mode: the current mode
	Mode() Mode

	// NotifyInputActivity records user input: the inactivity timer resets,
	// a running idle animation exits, an in-flight transition is canceled,
	// and the preferred user-control mode takes over.
	//
	// Parameters:
	//   - kind: what sort of input occurred (logged as the mode trigger)
	NotifyInputActivity(kind InputKind)

	// TransitionTo starts a scripted eased transition to p. The tween
	// starts from the last recorded end-of-transition pose when one exists,
	// so rapidly chained requests stay deterministic regardless of idle
	// drift in between. A request for the same destination inside the
	// cooldown window reuses the pending future; a request for a different
	// destination supersedes the running transition, resolving its future
	// as canceled. On arrival the controller returns the camera to idle
	// when an idle animation is configured, otherwise to the pre-transition
	// mode.
	//
	// Parameters:
	//   - p: the destination pose
	//   - options: per-request duration and easing overrides
	//
	// Returns:
	//   - *tween.Future[Pose]: completion token for the transition
	TransitionTo(p Pose, options ...TransitionOption) *tween.Future[Pose]

	// SetIdleAnimation installs (or replaces) the idle animation, attaching
	// it to the live pose and wiring its auto-stop back into the
	// controller. A nil animation disables idle promotion.
	//
	// Parameters:
	//   - anim: the idle animation, or nil
	SetIdleAnimation(anim IdleAnimation)

	// IdleAnimation returns the installed idle animation, or nil.
	//
	// Returns:
	//   - IdleAnimation: the current animation
	IdleAnimation() IdleAnimation

	// RestartIdleAnimation re-enters the idle animation immediately,
	// clearing any auto-stop latch. No-op inside the transition cooldown
	// window; logged no-op while a transition runs.
	RestartIdleAnimation()

	// SetLookTarget redirects the idle animation's look-at point. Applied
	// live when the running animation supports retargeting, otherwise
	// staged and applied on the next idle entry.
	//
	// Parameters:
	//   - target: the world-space look-at point
	SetLookTarget(target [3]float64)

	// SetUserControlMode declares the preferred user-control mode.
	//
	// Parameters:
	//   - m: ModeOrbit or ModeFly
	//
	// Returns:
	//   - error: error when m is not a user-control mode
	SetUserControlMode(m Mode) error

	// SetInactivityTimeout sets the seconds of input silence before idle
	// promotion. Non-positive values are ignored.
	//
	// Parameters:
	//   - seconds: the inactivity timeout (must be positive)
	SetInactivityTimeout(seconds float64)

	// Dispose exits and disposes the idle animation and stops any running
	// transition. Idempotent.
	Dispose()
}

var _ Controller = &controllerImpl{}

// NewController creates a Controller with the provided options. Without
// options it owns a fresh CameraState and ModeMachine, a 10s inactivity
// timeout, and no idle animation.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - Controller: the newly created controller
func NewController(options ...ControllerOption) Controller {
	c := &controllerImpl{
		mu:                &sync.Mutex{},
		state:             NewCameraState(),
		machine:           NewModeMachine(),
		inactivityTimeout: defaultInactivityTimeout,
		cooldown:          defaultTransitionCooldown,
		defaultDuration:   defaultTransitionDuration,
	}
	for _, option := range options {
		option(c)
	}
	if c.pendingIdle != nil {
		anim := c.pendingIdle
		c.pendingIdle = nil
		c.SetIdleAnimation(anim)
	}
	return c
}

func (c *controllerImpl) Update(dt float64) {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.clock += dt
	c.inactivity += dt
	anim := c.idleAnim
	c.mu.Unlock()

	// Idle bookkeeping runs every frame so blend fades keep advancing even
	// after the animation exits.
	if anim != nil {
		anim.Update(dt)
	}

	c.mu.Lock()
	if c.autoStopRequested {
		c.autoStopRequested = false
		c.idleSuppressed = true
	}
	mode := c.machine.Mode()
	wantIdle := anim != nil && !c.idleSuppressed && !anim.Active() &&
		c.inactivity >= c.inactivityTimeout &&
		(mode.IsUserControl() || mode == ModeIdle) && c.state.IsSettled()
	c.mu.Unlock()

	if wantIdle {
		if err := c.machine.Transition(ModeIdle, "inactivity"); err == nil {
			c.enterIdle(anim)
		}
	}

	c.state.Update(dt)
	c.finalizePending()

	if anim != nil && c.machine.CanApplyIdlePose() {
		if pose, ok := anim.ComputePose(dt); ok {
			c.state.BlendTowards(pose, anim.BlendWeight())
		}
	}
}

func (c *controllerImpl) Pose() Pose {
	return c.state.Pose()
}

func (c *controllerImpl) State() CameraState {
	return c.state
}

func (c *controllerImpl) Modes() ModeMachine {
	return c.machine
}

func (c *controllerImpl) Mode() Mode {
	return c.machine.Mode()
}

func (c *controllerImpl) NotifyInputActivity(kind InputKind) {
	c.mu.Lock()
	c.inactivity = 0
	c.idleSuppressed = false
	// The user now owns the pose; the next transition starts from wherever
	// they put the camera instead of the old chain point.
	c.hasLastTransition = false
	anim := c.idleAnim
	if c.pending != nil {
		c.pending.superseded = true
		c.pending = nil
	}
	c.mu.Unlock()

	if anim != nil && anim.Active() {
		anim.Exit()
	}

	trigger := "input " + kind.String()
	switch mode := c.machine.Mode(); {
	case mode == ModeTransitioning:
		c.state.CancelTransition()
		restored, err := c.machine.ExitTransitioning(trigger)
		if err == nil && !restored.IsUserControl() {
			_ = c.machine.Transition(c.machine.UserControlMode(), trigger)
		}
	case mode == ModeIdle:
		_ = c.machine.Transition(c.machine.UserControlMode(), trigger)
	}
}

func (c *controllerImpl) TransitionTo(p Pose, options ...TransitionOption) *tween.Future[Pose] {
	if !p.Valid() {
		log.Printf("camera: rejecting invalid transition destination")
		return tween.NewResolvedFuture(c.state.Pose(), true)
	}

	req := transitionRequest{duration: c.defaultDuration, ease: c.defaultEase}
	for _, option := range options {
		option(&req)
	}

	c.mu.Lock()
	if c.pending != nil && c.clock-c.lastTransitionStamp < c.cooldown &&
		p.PositionDistance(c.pending.dest) < PoseSettleEpsilon &&
		p.OrientationDistance(c.pending.dest) < PoseSettleEpsilon {
		fut := c.pending.fut
		c.mu.Unlock()
		return fut
	}
	if c.pending != nil {
		// A superseded transition still contributes its destination as the
		// next chain point.
		c.pending.superseded = true
		c.lastTransitionEnd = c.pending.dest
		c.hasLastTransition = true
		c.pending = nil
	}
	// Stamped up front so an idle-restart fired by the same input gesture
	// lands inside the cooldown window.
	c.lastTransitionStamp = c.clock
	chain := c.lastTransitionEnd
	hasChain := c.hasLastTransition
	anim := c.idleAnim
	c.mu.Unlock()

	if anim != nil && anim.Active() {
		anim.Exit()
	}
	if c.machine.Mode() != ModeTransitioning {
		if err := c.machine.EnterTransitioning("transition request"); err != nil {
			return tween.NewResolvedFuture(c.state.Pose(), true)
		}
	}

	// The tween starts from the last end-of-transition pose, not from
	// whatever the pose store or an idle animation drifted to since.
	if hasChain {
		c.state.SetPose(chain)
	}

	fut := c.state.TransitionTo(p, req.duration, req.ease)

	c.mu.Lock()
	c.pending = &pendingTransition{fut: fut, dest: p}
	c.mu.Unlock()
	return fut
}

func (c *controllerImpl) SetIdleAnimation(anim IdleAnimation) {
	c.mu.Lock()
	old := c.idleAnim
	c.idleAnim = anim
	c.idleSuppressed = false
	c.autoStopRequested = false
	c.mu.Unlock()

	if old != nil && old != anim {
		old.Exit()
	}
	if anim != nil {
		anim.Attach(IdleContext{Pose: c.state.Pose})
		anim.SetAutoStopHandler(func() {
			c.mu.Lock()
			c.autoStopRequested = true
			c.mu.Unlock()
		})
	}
}

func (c *controllerImpl) IdleAnimation() IdleAnimation {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.idleAnim
}

func (c *controllerImpl) RestartIdleAnimation() {
	c.mu.Lock()
	// Restarts inside the cooldown window are absorbed; the transition's
	// arrival handling owns the idle entry.
	if c.hasLastTransition && c.clock-c.lastTransitionStamp < c.cooldown {
		c.mu.Unlock()
		return
	}
	anim := c.idleAnim
	c.idleSuppressed = false
	c.mu.Unlock()
	if anim == nil {
		return
	}
	if c.machine.Mode() == ModeTransitioning {
		log.Printf("camera: ignoring idle restart while transitioning")
		return
	}

	if anim.Active() {
		anim.Exit()
	}
	anim.Reset()
	if err := c.machine.Transition(ModeIdle, "idle restart"); err != nil {
		return
	}
	c.enterIdle(anim)
}

func (c *controllerImpl) SetLookTarget(target [3]float64) {
	c.mu.Lock()
	anim := c.idleAnim
	c.mu.Unlock()

	if rt, ok := anim.(LookRetargeter); ok && anim != nil && anim.Active() {
		rt.SetLookTarget(target)
		return
	}

	c.mu.Lock()
	t := target
	c.stagedLook = &t
	c.mu.Unlock()
}

func (c *controllerImpl) SetUserControlMode(m Mode) error {
	return c.machine.SetUserControlMode(m)
}

func (c *controllerImpl) SetInactivityTimeout(seconds float64) {
	if seconds <= 0 {
		return
	}
	c.mu.Lock()
	c.inactivityTimeout = seconds
	c.mu.Unlock()
}

func (c *controllerImpl) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	anim := c.idleAnim
	c.idleAnim = nil
	if c.pending != nil {
		c.pending.superseded = true
		c.pending = nil
	}
	c.mu.Unlock()

	c.state.CancelTransition()
	if anim != nil {
		anim.Dispose()
	}
}

// enterIdle enters the idle animation and applies any staged look target.
// The animation captures its reference pose from the camera's live pose at
// this moment.
func (c *controllerImpl) enterIdle(anim IdleAnimation) {
	c.mu.Lock()
	staged := c.stagedLook
	c.stagedLook = nil
	c.inactivity = 0
	c.mu.Unlock()

	anim.Enter()
	if staged != nil {
		if rt, ok := anim.(LookRetargeter); ok {
			rt.SetLookTarget(*staged)
		}
	}
}

// finalizePending resolves the controller-side bookkeeping of a finished
// transition exactly once: the chain point and cooldown stamp are
// re-recorded, the mode is restored, and the camera returns to idle when an
// idle animation is configured. Superseded transitions are dropped here
// because their replacement owns the mode.
func (c *controllerImpl) finalizePending() {
	c.mu.Lock()
	p := c.pending
	if p == nil || !p.fut.Resolved() {
		c.mu.Unlock()
		return
	}
	c.pending = nil
	c.lastTransitionEnd = p.dest
	c.lastTransitionStamp = c.clock
	c.hasLastTransition = true
	superseded := p.superseded
	anim := c.idleAnim
	suppressed := c.idleSuppressed
	c.mu.Unlock()

	if superseded {
		return
	}

	restored, err := c.machine.ExitTransitioning("transition finished")
	if err != nil {
		return
	}
	if anim != nil && !suppressed {
		if restored != ModeIdle {
			if err := c.machine.Transition(ModeIdle, "transition arrival"); err != nil {
				return
			}
		}
		c.enterIdle(anim)
	}
}
