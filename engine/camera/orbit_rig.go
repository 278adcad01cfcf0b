package camera

import (
	"math"
	"sync"

	"github.com/gimbal-dev/gimbal/common"
)

// orbitRigImpl is the single implementation of the orbit Rig. It keeps the
// camera on a sphere around a focus point using spherical coordinates
// (radius, azimuth, elevation), smoothing each channel with its own damping
// time constant. Panning shifts the focus point along the camera's local
// axes, preserving the orbit relationship.
type orbitRigImpl struct {
	mu *sync.Mutex

	controller Controller

	focus [3]float64

	// Smoothed spherical coordinates and the raw input targets they chase.
	// Angles are degrees.
	radius    float64
	azimuth   float64
	elevation float64

	desiredRadius    float64
	desiredAzimuth   float64
	desiredElevation float64

	// Constraints
	minRadius    float64
	maxRadius    float64
	minElevation float64
	maxElevation float64
	yawBounds    *[2]float64

	// Input scaling
	rotateSpeed float64 // degrees per pixel of drag
	zoomSpeed   float64
	panSpeed    float64
	panEnabled  bool

	// Per-channel damping time constants in seconds
	rotateTau float64
	zoomTau   float64
	moveTau   float64

	lastWritten Pose
	hasWritten  bool
}

var _ Rig = &orbitRigImpl{}

// NewOrbitRig creates an orbit rig bound to a controller. The rig observes
// the controller's mode machine and re-syncs from the live pose whenever
// orbit mode becomes active.
//
// Parameters:
//   - controller: the controller whose camera this rig drives
//   - options: functional options to configure the rig
//
// Returns:
//   - Rig: the newly created rig
func NewOrbitRig(controller Controller, options ...OrbitRigOption) Rig {
	r := &orbitRigImpl{
		mu:         &sync.Mutex{},
		controller: controller,

		radius:    10,
		elevation: 30,

		minRadius:    0.5,
		maxRadius:    500,
		minElevation: -85,
		maxElevation: 85,

		rotateSpeed: 0.25,
		zoomSpeed:   1,
		panSpeed:    0.01,
		panEnabled:  true,

		rotateTau: 0.1,
		zoomTau:   0.2,
		moveTau:   0.15,
	}
	for _, option := range options {
		option(r)
	}
	r.desiredRadius = r.radius
	r.desiredAzimuth = r.azimuth
	r.desiredElevation = r.elevation

	controller.Modes().AddObserver(ModeObserver{
		OnEnter: func(mode Mode, trigger string) {
			if mode == ModeOrbit {
				r.SyncFromPose(controller.Pose())
			}
		},
	})
	return r
}

func (r *orbitRigImpl) Mode() Mode {
	return ModeOrbit
}

func (r *orbitRigImpl) HandleDrag(dx, dy float64) {
	r.controller.NotifyInputActivity(InputPointer)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.desiredAzimuth -= dx * r.rotateSpeed
	r.desiredElevation = common.Clamp(r.desiredElevation+dy*r.rotateSpeed, r.minElevation, r.maxElevation)
	if r.yawBounds != nil {
		r.desiredAzimuth = common.Clamp(r.desiredAzimuth, r.yawBounds[0], r.yawBounds[1])
	}
}

func (r *orbitRigImpl) HandleScroll(delta float64) {
	r.controller.NotifyInputActivity(InputScroll)

	r.mu.Lock()
	defer r.mu.Unlock()
	// Multiplicative zoom keeps the feel consistent across scales.
	r.desiredRadius = common.Clamp(
		r.desiredRadius*math.Pow(0.9, delta*r.zoomSpeed),
		r.minRadius, r.maxRadius,
	)
}

func (r *orbitRigImpl) HandlePan(dx, dy float64) {
	r.mu.Lock()
	enabled := r.panEnabled
	r.mu.Unlock()
	if !enabled {
		return
	}
	r.controller.NotifyInputActivity(InputPointer)

	r.mu.Lock()
	defer r.mu.Unlock()
	// Pan distance scales with radius so the scene tracks the cursor at any
	// zoom level.
	scale := r.panSpeed * r.radius
	rightX, rightZ, upX, upY, upZ := r.localAxesLocked()

	r.focus[0] += (-dx*rightX + dy*upX) * scale
	r.focus[1] += dy * upY * scale
	r.focus[2] += (-dx*rightZ + dy*upZ) * scale
}

func (r *orbitRigImpl) SetMoveInput(forward, right, up float64) {
	// Orbit control has no free translation; movement keys are ignored.
}

func (r *orbitRigImpl) SyncFromPose(p Pose) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if target, ok := p.LookTarget(); ok {
		r.focus = target
	}
	dx := p.Position[0] - r.focus[0]
	dy := p.Position[1] - r.focus[1]
	dz := p.Position[2] - r.focus[2]
	dist := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if dist < 1e-9 {
		return
	}

	horiz := math.Sqrt(dx*dx + dz*dz)
	r.radius = common.Clamp(dist, r.minRadius, r.maxRadius)
	r.azimuth = common.RadToDeg(math.Atan2(dx, dz))
	r.elevation = common.Clamp(common.RadToDeg(math.Atan2(dy, horiz)), r.minElevation, r.maxElevation)

	r.desiredRadius = r.radius
	r.desiredAzimuth = r.azimuth
	r.desiredElevation = r.elevation
	r.hasWritten = false
}

func (r *orbitRigImpl) Update(dt float64) {
	if r.controller.Mode() != ModeOrbit {
		return
	}

	r.mu.Lock()
	r.radius = Damp(r.radius, r.desiredRadius, dt, r.zoomTau)
	r.azimuth = DampAngle(r.azimuth, r.desiredAzimuth, dt, r.rotateTau)
	r.elevation = Damp(r.elevation, r.desiredElevation, dt, r.rotateTau)

	pose := r.poseLocked()
	write := !r.hasWritten || !PoseSettled(pose, r.lastWritten)
	if write {
		r.lastWritten = pose
		r.hasWritten = true
	}
	r.mu.Unlock()

	if write {
		r.controller.State().SetPose(pose)
	}
}

// poseLocked computes the rig's pose from the spherical coordinates, aimed
// at the focus point. Caller must hold the mutex.
func (r *orbitRigImpl) poseLocked() Pose {
	az := common.DegToRad(r.azimuth)
	el := common.DegToRad(r.elevation)
	cosEl := math.Cos(el)

	pose := Pose{Position: [3]float64{
		r.focus[0] + r.radius*cosEl*math.Sin(az),
		r.focus[1] + r.radius*math.Sin(el),
		r.focus[2] + r.radius*cosEl*math.Cos(az),
	}}
	pose.AimAt(r.focus)
	return pose
}

// localAxesLocked returns the horizontal components of the camera's local
// right axis and the full local up axis, consistent with a look-at view
// matrix with world up (0, 1, 0). Caller must hold the mutex.
func (r *orbitRigImpl) localAxesLocked() (rightX, rightZ, upX, upY, upZ float64) {
	az := common.DegToRad(r.azimuth)
	el := common.DegToRad(r.elevation)

	// backward = normalize(position - focus) in spherical terms
	bx := math.Cos(el) * math.Sin(az)
	by := math.Sin(el)
	bz := math.Cos(el) * math.Cos(az)

	// right = normalize(cross(worldUp, backward)) = (bz, 0, -bx) normalized
	rightX = bz
	rightZ = -bx
	rLen := math.Sqrt(rightX*rightX + rightZ*rightZ)
	if rLen < 1e-8 {
		return 0, 0, 0, 0, 0
	}
	rightX /= rLen
	rightZ /= rLen

	// up = cross(backward, right)
	upX = by * rightZ
	upY = bz*rightX - bx*rightZ
	upZ = -by * rightX
	return
}
