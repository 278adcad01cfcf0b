package idle

import (
	"math"

	"github.com/gimbal-dev/gimbal/common"
	"github.com/gimbal-dev/gimbal/engine/camera"
)

// RotationAxis selects which axis AutoRotate orbits around.
type RotationAxis int

const (
	// AxisYaw orbits around the vertical axis through the focus point.
	AxisYaw RotationAxis = iota

	// AxisPitch orbits over and under the focus point.
	AxisPitch
)

// AutoRotate orbits the camera around the focus point at constant angular
// speed. The orbit's focus is reconstructed every frame from the reference
// pose and its focus distance, and the position is recomputed on the orbit
// circle for the accumulated angle. With bounds configured the rotation
// ping-pongs between them instead of wrapping.
type AutoRotate struct {
	animator

	speed         float64 // degrees per second
	axis          RotationAxis
	reverse       bool
	maintainPitch bool
	bounds        *[2]float64 // degrees relative to the entry angle

	angle     float64
	direction float64
	reference camera.Pose
}

var _ camera.IdleAnimation = &AutoRotate{}

// NewAutoRotate creates an auto-rotate idle animation. Defaults: 10°/s
// around the yaw axis, unbounded, blend time constant 1.5s.
//
// Parameters:
//   - options: functional options to configure the animation
//
// Returns:
//   - *AutoRotate: the newly created animation
func NewAutoRotate(options ...AutoRotateOption) *AutoRotate {
	r := &AutoRotate{
		animator:  newAnimator(1.5),
		speed:     10,
		direction: 1,
	}
	for _, option := range options {
		option(r)
	}
	if r.reverse {
		r.direction = -1
	}
	return r
}

func (r *AutoRotate) Enter() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.enterLocked() {
		return
	}
	r.reference = r.livePoseLocked()
	r.angle = 0
	if r.reverse {
		r.direction = -1
	} else {
		r.direction = 1
	}
}

func (r *AutoRotate) Exit() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exitLocked()
}

func (r *AutoRotate) Update(dt float64) {
	r.mu.Lock()
	fire := r.updateLocked(dt)
	if fire {
		r.exitLocked()
	}
	handler := r.onAutoStop
	r.mu.Unlock()

	if fire && handler != nil {
		handler()
	}
}

func (r *AutoRotate) ComputePose(dt float64) (camera.Pose, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.blendSettledAtZeroLocked() {
		return camera.Pose{}, false
	}

	r.advanceAngleLocked(dt)

	focus, ok := r.reference.LookTarget()
	if !ok {
		f := r.reference.Forward()
		focus = [3]float64{
			r.reference.Position[0] + f[0]*defaultLookDistance,
			r.reference.Position[1] + f[1]*defaultLookDistance,
			r.reference.Position[2] + f[2]*defaultLookDistance,
		}
	}

	offset := [3]float64{
		r.reference.Position[0] - focus[0],
		r.reference.Position[1] - focus[1],
		r.reference.Position[2] - focus[2],
	}

	radius := math.Sqrt(offset[0]*offset[0] + offset[1]*offset[1] + offset[2]*offset[2])
	if radius < 1e-9 {
		return r.reference, true
	}

	// Spherical decomposition of the offset: azimuth around vertical,
	// elevation from the horizontal plane.
	horiz := math.Sqrt(offset[0]*offset[0] + offset[2]*offset[2])
	azimuth := math.Atan2(offset[0], offset[2])
	elevation := math.Atan2(offset[1], horiz)

	delta := common.DegToRad(r.angle)
	if r.axis == AxisYaw {
		azimuth += delta
	} else {
		elevation = common.Clamp(elevation+delta, common.DegToRad(-89), common.DegToRad(89))
	}

	cosEl := math.Cos(elevation)
	pos := [3]float64{
		focus[0] + radius*cosEl*math.Sin(azimuth),
		focus[1] + radius*math.Sin(elevation),
		focus[2] + radius*cosEl*math.Cos(azimuth),
	}

	pose := camera.Pose{Position: pos, Orientation: r.reference.Orientation}
	pose.AimAt(focus)
	if r.maintainPitch {
		pose.Orientation[0] = r.reference.Orientation[0]
	}
	return pose, true
}

func (r *AutoRotate) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resetLocked()
	r.angle = 0
}

func (r *AutoRotate) Dispose() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.disposed {
		return
	}
	if r.active {
		r.exitLocked()
	}
	r.disposed = true
	r.attached = false
	r.ctx = camera.IdleContext{}
}

// IsStaticPose is always false — the orbit moves every frame.
func (r *AutoRotate) IsStaticPose() bool {
	return false
}

// advanceAngleLocked accumulates the orbit angle and ping-pongs at the
// configured bounds. Caller must hold the mutex.
func (r *AutoRotate) advanceAngleLocked(dt float64) {
	r.angle += r.direction * r.speed * dt
	if r.bounds == nil {
		return
	}
	lo, hi := r.bounds[0], r.bounds[1]
	if r.angle >= hi {
		r.angle = hi
		r.direction = -r.direction
	} else if r.angle <= lo {
		r.angle = lo
		r.direction = -r.direction
	}
}
