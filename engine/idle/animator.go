// Package idle implements procedural idle-animation strategies for the
// viewer camera: a drift-and-pause hover and a constant-speed auto-rotate.
// Strategies share a common lifecycle (attach/enter/exit/update/dispose)
// and fade their influence in and out through a damped blend weight, so
// control hand-offs never snap.
package idle

import (
	"log"
	"sync"

	"github.com/gimbal-dev/gimbal/engine/camera"
)

// blendSettleEpsilon is the threshold under which the blend weight snaps
// onto its fade target.
const blendSettleEpsilon = 1e-4

// animator carries the lifecycle state shared by every strategy: the
// attached context, the damped blend weight, accumulated idle time, and the
// auto-stop timer. Strategies embed it and layer their pose generation on
// top.
type animator struct {
	mu *sync.Mutex

	ctx      camera.IdleContext
	attached bool
	active   bool
	disposed bool

	blendWeight float64
	blendTarget float64
	blendTau    float64

	idleElapsed   float64
	autoStop      float64 // seconds; 0 disables
	autoStopFired bool
	onAutoStop    func()
}

// newAnimator creates the shared lifecycle state with the given blend time
// constant in seconds.
func newAnimator(blendTau float64) animator {
	return animator{
		mu:       &sync.Mutex{},
		blendTau: blendTau,
	}
}

func (a *animator) Attach(ctx camera.IdleContext) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.ctx = ctx
	a.attached = ctx.Pose != nil
	a.disposed = false
}

// enterLocked flips the animation active and starts the blend fade-in.
// Returns false (with a logged warning) when not attached. Caller must hold
// the mutex.
func (a *animator) enterLocked() bool {
	if !a.attached {
		log.Printf("idle: Enter called before Attach, ignoring")
		return false
	}
	a.active = true
	a.blendTarget = 1
	a.idleElapsed = 0
	a.autoStopFired = false
	return true
}

// exitLocked marks the animation inactive and starts the blend fade-out.
// The fade itself continues across future Update calls. Caller must hold
// the mutex.
func (a *animator) exitLocked() {
	a.active = false
	a.blendTarget = 0
}

// updateLocked advances the blend weight and auto-stop bookkeeping.
// Returns true when the auto-stop handler must fire; the caller invokes it
// outside the lock together with the strategy's Exit. Caller must hold the
// mutex.
func (a *animator) updateLocked(dt float64) bool {
	a.blendWeight = camera.Damp(a.blendWeight, a.blendTarget, dt, a.blendTau)
	if camera.Settled(a.blendWeight, a.blendTarget, blendSettleEpsilon) {
		a.blendWeight = a.blendTarget
	}

	if !a.active {
		return false
	}
	a.idleElapsed += dt
	if a.autoStop > 0 && !a.autoStopFired && a.idleElapsed >= a.autoStop {
		a.autoStopFired = true
		return true
	}
	return false
}

// blendSettledAtZeroLocked reports whether the animation has fully faded
// out. Caller must hold the mutex.
func (a *animator) blendSettledAtZeroLocked() bool {
	return a.blendTarget == 0 && a.blendWeight == 0
}

// resetLocked zeroes blend and elapsed state without exit side effects.
// Caller must hold the mutex.
func (a *animator) resetLocked() {
	a.active = false
	a.blendWeight = 0
	a.blendTarget = 0
	a.idleElapsed = 0
	a.autoStopFired = false
}

// livePoseLocked reads the current pose through the attached context.
// Caller must hold the mutex.
func (a *animator) livePoseLocked() camera.Pose {
	if !a.attached {
		return camera.Pose{}
	}
	return a.ctx.Pose()
}

func (a *animator) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.active
}

func (a *animator) BlendWeight() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.blendWeight
}

func (a *animator) SetAutoStopHandler(handler func()) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onAutoStop = handler
}
