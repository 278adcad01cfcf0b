package camera

import (
	"log"
	"sync"

	"github.com/gimbal-dev/gimbal/engine/easing"
	"github.com/gimbal-dev/gimbal/engine/tween"
)

// cameraStateImpl is the single implementation of CameraState.
type cameraStateImpl struct {
	mu *sync.Mutex

	current Pose
	target  Pose

	// timeConstant drives the exponential damping toward target.
	timeConstant float64

	// settled is false while damping still owes movement toward target.
	settled bool

	// dirty is set whenever current changes, cleared once per frame in Update.
	dirty bool

	// instantPending carries an instant SetPose across the frame-boundary
	// clear so the pose sink still observes it.
	instantPending bool

	transition *tween.Tween[float64]

	// transitionResolve resolves the active transition's future as canceled
	// when the transition is discarded before completing.
	transitionResolve func()
}

// CameraState owns the camera's current and target pose. The current pose
// moves by exactly one mechanism per frame: an instant set, exponential
// damping toward the target, or an exclusive tween-driven transition. The
// Controller enforces that exclusivity; CameraState provides the
// operations.
//
// Thread-safe; all pose reads return copies.
type CameraState interface {
	// Pose returns a copy of the current pose.
	//
	// Returns:
	//   - Pose: the current pose
	Pose() Pose

	// Target returns a copy of the damping target pose.
	//
	// Returns:
	//   - Pose: the target pose
	Target() Pose

	// SetPose instantly sets current and target to p, cancels any running
	// transition, and marks the state settled and dirty. Invalid poses are
	// rejected with a log message; the last valid pose is retained.
	//
	// Parameters:
	//   - p: the pose to snap to
	SetPose(p Pose)

	// SetTarget sets the damping target. The current pose drifts toward it
	// on each Update until settled, then snaps exactly onto it. Cancels any
	// running transition. Invalid poses are rejected.
	//
	// Parameters:
	//   - p: the pose to damp toward
	SetTarget(p Pose)

	// TransitionTo starts an eased, tween-driven transition from the
	// current pose to p. A non-positive duration degrades to SetTarget. A
	// new transition fully supersedes a running one: the old tween is
	// discarded and its future resolves as canceled. The returned future
	// resolves with the final pose when the transition completes.
	//
	// Parameters:
	//   - p: the destination pose
	//   - duration: transition length in seconds
	//   - ease: easing curve (nil = linear)
	//
	// Returns:
	//   - *tween.Future[Pose]: completion token for the transition
	TransitionTo(p Pose, duration float64, ease easing.Func) *tween.Future[Pose]

	// BlendTowards interpolates the current pose toward p by weight in
	// [0, 1] in a single step, bypassing damping. Used to mix an idle
	// animation's candidate pose into the camera.
	//
	// Parameters:
	//   - p: the pose to blend toward
	//   - weight: blend amount (0 = unchanged, 1 = exactly p)
	BlendTowards(p Pose, weight float64)

	// Update advances the state by one frame: clears the dirty flag, then
	// steps the active transition if one exists, otherwise applies damping
	// while unsettled.
	//
	// Parameters:
	//   - dt: elapsed seconds this frame
	Update(dt float64)

	// Dirty reports whether the current pose changed this frame.
	//
	// Returns:
	//   - bool: true when the pose sink should re-apply the pose
	Dirty() bool

	// IsSettled reports whether no damping or transition work remains.
	//
	// Returns:
	//   - bool: true when current sits exactly on target and no tween runs
	IsSettled() bool

	// Transitioning reports whether a tween-driven transition is running.
	//
	// Returns:
	//   - bool: true while a transition owns the pose
	Transitioning() bool

	// CancelTransition stops a running transition, resolving its future as
	// canceled. No-op when no transition is active.
	CancelTransition()

	// TimeConstant returns the damping time constant in seconds.
	//
	// Returns:
	//   - float64: the time constant (<= 0 means instant snap)
	TimeConstant() float64

	// SetTimeConstant sets the damping time constant in seconds.
	//
	// Parameters:
	//   - tau: the new time constant (<= 0 means instant snap)
	SetTimeConstant(tau float64)
}

var _ CameraState = &cameraStateImpl{}

// NewCameraState creates a CameraState with the provided options. The state
// starts settled on the zero pose with a 0.25s damping time constant.
//
// Parameters:
//   - options: functional options to configure the state
//
// Returns:
//   - CameraState: the newly created state
func NewCameraState(options ...CameraStateOption) CameraState {
	s := &cameraStateImpl{
		mu:           &sync.Mutex{},
		timeConstant: 0.25,
		settled:      true,
	}
	for _, option := range options {
		option(s)
	}
	s.target = s.current
	return s
}

func (s *cameraStateImpl) Pose() Pose {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

func (s *cameraStateImpl) Target() Pose {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target.Clone()
}

func (s *cameraStateImpl) SetPose(p Pose) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !p.Valid() {
		log.Printf("camera: rejecting invalid pose in SetPose, keeping last valid pose")
		return
	}
	s.cancelTransitionLocked()
	s.current = p
	s.target = p
	s.settled = true
	s.dirty = true
	s.instantPending = true
}

func (s *cameraStateImpl) SetTarget(p Pose) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !p.Valid() {
		log.Printf("camera: rejecting invalid pose in SetTarget, keeping last valid target")
		return
	}
	s.cancelTransitionLocked()
	s.target = p
	s.settled = false
}

func (s *cameraStateImpl) TransitionTo(p Pose, duration float64, ease easing.Func) *tween.Future[Pose] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !p.Valid() {
		log.Printf("camera: rejecting invalid pose in TransitionTo")
		return tween.NewResolvedFuture(s.current.Clone(), true)
	}
	if duration <= 0 {
		s.cancelTransitionLocked()
		s.target = p
		s.settled = false
		return tween.NewResolvedFuture(p, false)
	}

	s.cancelTransitionLocked()

	from := s.current.Clone()
	poseFut, resolve := tween.NewPendingFuture[Pose]()
	tw, _ := tween.Run(0.0, 1.0, duration,
		tween.WithEasing[float64](ease),
		tween.OnUpdate[float64](func(_ float64, eased float64) {
			// Runs inside Update while the lock is held.
			s.current = from.Lerp(p, eased)
			s.dirty = true
		}),
		tween.OnComplete[float64](func(float64) {
			s.current = p
			s.target = p
			s.settled = true
			s.dirty = true
			resolve(p, false)
		}),
	)
	s.transition = tw
	s.transitionResolve = func() {
		resolve(s.current.Clone(), true)
	}
	return poseFut
}

func (s *cameraStateImpl) BlendTowards(p Pose, weight float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !p.Valid() {
		return
	}
	if weight <= 0 {
		return
	}
	if weight > 1 {
		weight = 1
	}
	s.current = s.current.Lerp(p, weight)
	s.dirty = true
}

func (s *cameraStateImpl) Update(dt float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dirty = false
	if s.instantPending {
		s.instantPending = false
		s.dirty = true
	}

	if s.transition != nil {
		if !s.transition.Update(dt) {
			s.transition = nil
			s.transitionResolve = nil
		}
		return
	}

	if s.settled {
		return
	}

	s.current = DampPose(s.current, s.target, dt, s.timeConstant)
	s.dirty = true
	if PoseSettled(s.current, s.target) {
		s.current = s.target
		s.settled = true
	}
}

func (s *cameraStateImpl) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

func (s *cameraStateImpl) IsSettled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settled && s.transition == nil
}

func (s *cameraStateImpl) Transitioning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transition != nil
}

func (s *cameraStateImpl) CancelTransition() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelTransitionLocked()
}

func (s *cameraStateImpl) TimeConstant() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timeConstant
}

func (s *cameraStateImpl) SetTimeConstant(tau float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeConstant = tau
}

// cancelTransitionLocked discards a running transition entirely — no
// partial blending of an old tween survives into whatever supersedes it.
// The transition's future resolves as canceled exactly once. Caller must
// hold the mutex.
func (s *cameraStateImpl) cancelTransitionLocked() {
	if s.transition == nil {
		return
	}
	if s.transitionResolve != nil {
		s.transitionResolve()
		s.transitionResolve = nil
	}
	s.transition.Stop()
	s.transition = nil
}
