package idle

import (
	"math"
	"math/rand"
	"time"

	"github.com/gimbal-dev/gimbal/common"
	"github.com/gimbal-dev/gimbal/engine/camera"
)

// driftPhase identifies which half of the drift/pause cycle is running.
type driftPhase int

const (
	phasePausing driftPhase = iota
	phaseDrifting
)

// defaultLookDistance is used to project a look target when the reference
// pose carries no focus distance.
const defaultLookDistance = 10.0

// verticalJitterFraction scales the hover radius into the amplitude of the
// independent vertical waypoint jitter.
const verticalJitterFraction = 0.15

// DriftPause hovers the camera around the position captured on Enter: it
// drifts to a randomly sampled waypoint on a horizontal disk, pauses,
// samples the next waypoint, and repeats. Orientation is never
// interpolated between waypoints — every frame re-aims at a fixed look
// target from the current drifting position, which keeps the point of
// interest rock steady while the camera floats.
type DriftPause struct {
	animator

	hoverRadius    float64
	driftRange     [2]float64
	pauseRange     [2]float64
	stepScaleRange [2]float64
	lookTarget     *[3]float64

	rng *rand.Rand

	// segment state, regenerated each time a phase completes
	phase    driftPhase
	elapsed  float64
	duration float64
	startPos [3]float64
	endPos   [3]float64

	hoverCenter [3]float64
	fixedLook   [3]float64
	reference   camera.Pose
}

var _ camera.IdleAnimation = &DriftPause{}
var _ camera.LookRetargeter = &DriftPause{}

// NewDriftPause creates a drift-and-pause idle animation with the provided
// options. Defaults: hover radius 1, drift 4–8s, pause 2–5s, step scale
// 0.4–1.0, blend time constant 1.5s, time-seeded randomness.
//
// Parameters:
//   - options: functional options to configure the animation
//
// Returns:
//   - *DriftPause: the newly created animation
func NewDriftPause(options ...DriftPauseOption) *DriftPause {
	d := &DriftPause{
		animator:       newAnimator(1.5),
		hoverRadius:    1,
		driftRange:     [2]float64{4, 8},
		pauseRange:     [2]float64{2, 5},
		stepScaleRange: [2]float64{0.4, 1},
	}
	for _, option := range options {
		option(d)
	}
	if d.rng == nil {
		d.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return d
}

func (d *DriftPause) Enter() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.enterLocked() {
		return
	}
	d.reference = d.livePoseLocked()
	d.hoverCenter = d.reference.Position
	d.fixedLook = d.resolveLookTargetLocked(d.reference)
	d.beginPauseLocked(d.reference.Position)
}

func (d *DriftPause) Exit() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.exitLocked()
}

func (d *DriftPause) Update(dt float64) {
	d.mu.Lock()
	fire := d.updateLocked(dt)
	if fire {
		d.exitLocked()
	}
	handler := d.onAutoStop
	d.mu.Unlock()

	if fire && handler != nil {
		handler()
	}
}

func (d *DriftPause) ComputePose(dt float64) (camera.Pose, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.blendSettledAtZeroLocked() {
		return camera.Pose{}, false
	}

	d.elapsed += dt
	if d.elapsed >= d.duration {
		d.advancePhaseLocked()
	}

	var pos [3]float64
	switch d.phase {
	case phaseDrifting:
		t := 1.0
		if d.duration > 0 {
			t = common.Smoothstep(d.elapsed / d.duration)
		}
		for i := 0; i < 3; i++ {
			pos[i] = common.Lerp(d.startPos[i], d.endPos[i], t)
		}
	default:
		pos = d.startPos
	}

	pose := camera.Pose{Position: pos, Orientation: d.reference.Orientation}
	pose.AimAt(d.fixedLook)
	return pose, true
}

func (d *DriftPause) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.resetLocked()
	d.phase = phasePausing
	d.elapsed = 0
	d.duration = 0
}

func (d *DriftPause) Dispose() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.disposed {
		return
	}
	if d.active {
		d.exitLocked()
	}
	d.disposed = true
	d.attached = false
	d.ctx = camera.IdleContext{}
}

// IsStaticPose is true exactly while the animation is pausing and the blend
// weight has settled, meaning the candidate pose will not move this frame.
func (d *DriftPause) IsStaticPose() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.phase == phasePausing && d.blendWeight == d.blendTarget
}

// SetLookTarget redirects the hover at a new look target while running.
// The new target is persisted for future Enter calls, the hover center
// re-anchors to the camera's current position, the orientation snaps onto
// the new target in the same frame, and a fresh pause segment starts from
// the current pose. Re-anchoring avoids a one-frame orientation snap when
// the camera was externally relocated while idle.
func (d *DriftPause) SetLookTarget(target [3]float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	t := target
	d.lookTarget = &t
	d.fixedLook = t

	pos := d.livePoseLocked().Position
	d.hoverCenter = pos
	d.reference.Position = pos
	d.reference.AimAt(t)
	d.beginPauseLocked(pos)
}

// advancePhaseLocked flips the drift/pause cycle and regenerates the next
// segment. Caller must hold the mutex.
func (d *DriftPause) advancePhaseLocked() {
	if d.phase == phaseDrifting {
		d.beginPauseLocked(d.endPos)
		return
	}
	d.beginDriftLocked()
}

// beginPauseLocked starts a pause segment holding at pos. Caller must hold
// the mutex.
func (d *DriftPause) beginPauseLocked(pos [3]float64) {
	d.phase = phasePausing
	d.elapsed = 0
	d.duration = d.sampleLocked(d.pauseRange)
	d.startPos = pos
	d.endPos = pos
}

// beginDriftLocked starts a drift segment toward a freshly sampled waypoint
// on the hover disk. Caller must hold the mutex.
func (d *DriftPause) beginDriftLocked() {
	d.phase = phaseDrifting
	d.elapsed = 0
	d.duration = d.sampleLocked(d.driftRange)
	d.startPos = d.endPos

	scale := d.sampleLocked(d.stepScaleRange)
	radius := d.hoverRadius * scale
	angle := d.rng.Float64() * 2 * math.Pi
	jitter := (d.rng.Float64()*2 - 1) * d.hoverRadius * verticalJitterFraction

	d.endPos = [3]float64{
		d.hoverCenter[0] + math.Cos(angle)*radius,
		d.hoverCenter[1] + jitter,
		d.hoverCenter[2] + math.Sin(angle)*radius,
	}
}

// sampleLocked draws a uniform value from [r[0], r[1]]. Caller must hold
// the mutex.
func (d *DriftPause) sampleLocked(r [2]float64) float64 {
	if r[1] <= r[0] {
		return r[0]
	}
	return r[0] + d.rng.Float64()*(r[1]-r[0])
}

// resolveLookTargetLocked returns the configured look target, or projects
// one from the reference pose. Caller must hold the mutex.
func (d *DriftPause) resolveLookTargetLocked(ref camera.Pose) [3]float64 {
	if d.lookTarget != nil {
		return *d.lookTarget
	}
	if t, ok := ref.LookTarget(); ok {
		return t
	}
	f := ref.Forward()
	return [3]float64{
		ref.Position[0] + f[0]*defaultLookDistance,
		ref.Position[1] + f[1]*defaultLookDistance,
		ref.Position[2] + f[2]*defaultLookDistance,
	}
}
