package camera

import (
	"math"
	"sync"

	"github.com/gimbal-dev/gimbal/common"
)

// flyPitchLimit keeps free-flight pitch away from the poles, where yaw and
// roll become degenerate.
const flyPitchLimit = 89.0

// flyRigImpl is the single implementation of the fly Rig: free flight with
// mouse look and held-key translation along the view axes. Look angles and
// velocity are smoothed independently, so releasing a key glides the camera
// to a stop instead of freezing it.
type flyRigImpl struct {
	mu *sync.Mutex

	controller Controller

	position [3]float64

	// Smoothed look angles in degrees and the raw targets they chase.
	yaw   float64
	pitch float64

	desiredYaw   float64
	desiredPitch float64

	// moveInput holds the held-key axes in [-1, 1]: forward, right, up.
	moveInput [3]float64
	velocity  [3]float64

	moveSpeed   float64 // world units per second at full input
	rotateSpeed float64 // degrees per pixel of drag

	rotateTau float64
	moveTau   float64

	lastWritten Pose
	hasWritten  bool
}

var _ Rig = &flyRigImpl{}

// NewFlyRig creates a fly rig bound to a controller. The rig observes the
// controller's mode machine and re-syncs from the live pose whenever fly
// mode becomes active.
//
// Parameters:
//   - controller: the controller whose camera this rig drives
//   - options: functional options to configure the rig
//
// Returns:
//   - Rig: the newly created rig
func NewFlyRig(controller Controller, options ...FlyRigOption) Rig {
	r := &flyRigImpl{
		mu:         &sync.Mutex{},
		controller: controller,

		moveSpeed:   5,
		rotateSpeed: 0.25,

		rotateTau: 0.1,
		moveTau:   0.15,
	}
	for _, option := range options {
		option(r)
	}
	r.desiredYaw = r.yaw
	r.desiredPitch = r.pitch

	controller.Modes().AddObserver(ModeObserver{
		OnEnter: func(mode Mode, trigger string) {
			if mode == ModeFly {
				r.SyncFromPose(controller.Pose())
			}
		},
	})
	return r
}

func (r *flyRigImpl) Mode() Mode {
	return ModeFly
}

func (r *flyRigImpl) HandleDrag(dx, dy float64) {
	r.controller.NotifyInputActivity(InputPointer)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.desiredYaw -= dx * r.rotateSpeed
	r.desiredPitch = common.Clamp(r.desiredPitch-dy*r.rotateSpeed, -flyPitchLimit, flyPitchLimit)
}

func (r *flyRigImpl) HandleScroll(delta float64) {
	r.controller.NotifyInputActivity(InputScroll)

	r.mu.Lock()
	defer r.mu.Unlock()
	// Scroll adjusts flight speed multiplicatively, clamped to a sane range.
	r.moveSpeed = common.Clamp(r.moveSpeed*math.Pow(1.1, delta), 0.1, 1000)
}

func (r *flyRigImpl) HandlePan(dx, dy float64) {
	// Free flight has no pan concept; the movement axes cover it.
}

func (r *flyRigImpl) SetMoveInput(forward, right, up float64) {
	if forward != 0 || right != 0 || up != 0 {
		r.controller.NotifyInputActivity(InputKeyboard)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.moveInput[0] = common.Clamp(forward, -1, 1)
	r.moveInput[1] = common.Clamp(right, -1, 1)
	r.moveInput[2] = common.Clamp(up, -1, 1)
}

func (r *flyRigImpl) SyncFromPose(p Pose) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.position = p.Position
	r.yaw = p.Orientation[1]
	r.pitch = common.Clamp(p.Orientation[0], -flyPitchLimit, flyPitchLimit)
	r.desiredYaw = r.yaw
	r.desiredPitch = r.pitch
	r.velocity = [3]float64{}
	r.hasWritten = false
}

func (r *flyRigImpl) Update(dt float64) {
	if r.controller.Mode() != ModeFly {
		return
	}

	r.mu.Lock()
	r.yaw = DampAngle(r.yaw, r.desiredYaw, dt, r.rotateTau)
	r.pitch = Damp(r.pitch, r.desiredPitch, dt, r.rotateTau)

	// Desired velocity in world space from the held-key axes.
	forward := Pose{Orientation: [3]float64{r.pitch, r.yaw, 0}}.Forward()
	yawRad := common.DegToRad(r.yaw)
	rightX, rightZ := math.Cos(yawRad), -math.Sin(yawRad)

	var want [3]float64
	want[0] = (forward[0]*r.moveInput[0] + rightX*r.moveInput[1]) * r.moveSpeed
	want[1] = (forward[1]*r.moveInput[0] + r.moveInput[2]) * r.moveSpeed
	want[2] = (forward[2]*r.moveInput[0] + rightZ*r.moveInput[1]) * r.moveSpeed

	for i := 0; i < 3; i++ {
		r.velocity[i] = Damp(r.velocity[i], want[i], dt, r.moveTau)
		r.position[i] += r.velocity[i] * dt
	}

	pose := Pose{Position: r.position, Orientation: [3]float64{r.pitch, r.yaw, 0}}
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
