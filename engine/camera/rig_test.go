package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// settleRig runs enough frames for the rig's damped channels to converge.
func settleRig(r Rig, c Controller) {
	for i := 0; i < 400; i++ {
		r.Update(0.01)
		c.State().Update(0.01)
	}
}

func newOrbitSetup(t *testing.T, options ...OrbitRigOption) (Controller, Rig) {
	t.Helper()
	c := NewController()
	require.NoError(t, c.Modes().Transition(ModeOrbit, "test setup"))
	r := NewOrbitRig(c, options...)
	return c, r
}

func TestOrbitRigWritesSphericalPose(t *testing.T) {
	c, r := newOrbitSetup(t,
		WithOrbitFocus(0, 0, 0),
		WithOrbitRadius(10),
		WithOrbitAngles(0, 0),
	)
	settleRig(r, c)

	p := c.Pose()
	assert.InDelta(t, 0, p.Position[0], 1e-6)
	assert.InDelta(t, 0, p.Position[1], 1e-6)
	assert.InDelta(t, 10, p.Position[2], 1e-6)

	target, ok := p.LookTarget()
	require.True(t, ok)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0, target[i], 1e-6)
	}
}

func TestOrbitRigDragOrbitsTheFocus(t *testing.T) {
	c, r := newOrbitSetup(t, WithOrbitRadius(10), WithOrbitAngles(0, 0), WithOrbitSpeeds(0.25, 1, 0.01))
	settleRig(r, c)

	// 360 pixels at 0.25 deg/px swings the azimuth by -90 degrees.
	r.HandleDrag(360, 0)
	settleRig(r, c)

	p := c.Pose()
	assert.InDelta(t, -10, p.Position[0], 1e-3)
	assert.InDelta(t, 0, p.Position[2], 1e-3)

	radius := math.Sqrt(p.Position[0]*p.Position[0] + p.Position[2]*p.Position[2])
	assert.InDelta(t, 10, radius, 1e-6, "dragging never changes the orbit radius")
}

func TestOrbitRigElevationClamp(t *testing.T) {
	c, r := newOrbitSetup(t,
		WithOrbitRadius(10),
		WithOrbitAngles(0, 0),
		WithOrbitElevationRange(-30, 60),
		WithOrbitSpeeds(1, 1, 0.01),
	)
	settleRig(r, c)

	r.HandleDrag(0, 10000)
	settleRig(r, c)
	assert.InDelta(t, 10*math.Sin(60*math.Pi/180), c.Pose().Position[1], 1e-3,
		"elevation clamps at the configured maximum")
}

func TestOrbitRigScrollZoomsWithinRange(t *testing.T) {
	c, r := newOrbitSetup(t,
		WithOrbitRadius(10),
		WithOrbitAngles(0, 0),
		WithOrbitRadiusRange(2, 50),
	)
	settleRig(r, c)

	for i := 0; i < 100; i++ {
		r.HandleScroll(5)
	}
	settleRig(r, c)
	assert.InDelta(t, 2, c.Pose().Position[2], 1e-3, "zooming in stops at the minimum radius")

	for i := 0; i < 200; i++ {
		r.HandleScroll(-5)
	}
	settleRig(r, c)
	assert.InDelta(t, 50, c.Pose().Position[2], 1e-3, "zooming out stops at the maximum radius")
}

func TestOrbitRigPanShiftsFocus(t *testing.T) {
	c, r := newOrbitSetup(t, WithOrbitRadius(10), WithOrbitAngles(0, 0))
	settleRig(r, c)
	before := c.Pose()

	r.HandlePan(100, 0)
	settleRig(r, c)
	after := c.Pose()

	assert.NotEqual(t, before.Position[0], after.Position[0])
	assert.InDelta(t, before.Position[2], after.Position[2], 1e-6,
		"panning sideways slides the orbit, it does not rotate it")
}

func TestOrbitRigPanDisabled(t *testing.T) {
	c, r := newOrbitSetup(t, WithOrbitRadius(10), WithOrbitAngles(0, 0), WithOrbitPanEnabled(false))
	settleRig(r, c)
	before := c.Pose()

	r.HandlePan(100, 50)
	settleRig(r, c)
	assert.Equal(t, before.Position, c.Pose().Position)
}

func TestOrbitRigIgnoredOutsideOrbitMode(t *testing.T) {
	c := NewController()
	r := NewOrbitRig(c, WithOrbitRadius(10))

	r.Update(0.1)
	assert.Equal(t, Pose{}, c.Pose(), "rigs never write while another mode owns the camera")
}

func TestOrbitRigSyncsOnModeEntry(t *testing.T) {
	c := NewController()
	r := NewOrbitRig(c, WithOrbitRadius(99))
	c.State().SetPose(Pose{Position: [3]float64{0, 0, 5}, FocusDistance: 5})

	require.NoError(t, c.Modes().Transition(ModeOrbit, "input"))
	settleRig(r, c)

	assert.InDelta(t, 5, c.Pose().Position[2], 1e-3,
		"gaining control adopts the live pose instead of snapping to rig defaults")
}

func TestOrbitRigInputNotifiesController(t *testing.T) {
	c := NewController(WithIdleAnimation(&stubIdle{}), WithInactivityTimeout(1))
	r := NewOrbitRig(c)
	c.Update(1.1)
	require.Equal(t, ModeIdle, c.Mode())

	r.HandleDrag(1, 0)
	assert.Equal(t, ModeOrbit, c.Mode(), "drag input pulls the camera out of idle")
}

func TestFlyRigMovesAlongViewDirection(t *testing.T) {
	c := NewController()
	require.NoError(t, c.Modes().Transition(ModeFly, "test setup"))
	r := NewFlyRig(c, WithFlyPosition(0, 0, 0), WithFlyAngles(0, 0), WithFlySpeeds(10, 0.25))

	r.SetMoveInput(1, 0, 0)
	for i := 0; i < 100; i++ {
		r.Update(0.01)
	}

	p := c.Pose()
	assert.Less(t, p.Position[2], -5.0, "full forward input flies along -Z")
	assert.InDelta(t, 0, p.Position[0], 1e-9)
	assert.False(t, p.HasFocusDistance(), "free flight carries no focus distance")
}

func TestFlyRigStrafe(t *testing.T) {
	c := NewController()
	require.NoError(t, c.Modes().Transition(ModeFly, "test setup"))
	r := NewFlyRig(c, WithFlySpeeds(10, 0.25))

	r.SetMoveInput(0, 1, 0)
	for i := 0; i < 100; i++ {
		r.Update(0.01)
	}
	assert.Greater(t, c.Pose().Position[0], 5.0, "right input strafes along +X at yaw 0")
}

func TestFlyRigLookClampsPitch(t *testing.T) {
	c := NewController()
	require.NoError(t, c.Modes().Transition(ModeFly, "test setup"))
	r := NewFlyRig(c, WithFlySpeeds(10, 1))

	r.HandleDrag(0, 10000)
	for i := 0; i < 200; i++ {
		r.Update(0.01)
	}
	assert.InDelta(t, -flyPitchLimit, c.Pose().Orientation[0], 1e-3)
}

func TestFlyRigGlidesToAStop(t *testing.T) {
	c := NewController()
	require.NoError(t, c.Modes().Transition(ModeFly, "test setup"))
	r := NewFlyRig(c, WithFlySpeeds(10, 0.25))

	r.SetMoveInput(1, 0, 0)
	for i := 0; i < 50; i++ {
		r.Update(0.01)
	}
	r.SetMoveInput(0, 0, 0)
	atRelease := c.Pose().Position[2]

	for i := 0; i < 10; i++ {
		r.Update(0.01)
	}
	assert.Less(t, c.Pose().Position[2], atRelease, "momentum carries briefly after release")

	for i := 0; i < 500; i++ {
		r.Update(0.01)
	}
	settled := c.Pose().Position[2]
	r.Update(0.01)
	assert.InDelta(t, settled, c.Pose().Position[2], 1e-6, "velocity damps to zero")
}

func TestCameraMatricesFollowPose(t *testing.T) {
	state := NewCameraState(WithInitialPose(Pose{Position: [3]float64{0, 0, 5}, FocusDistance: 5}))
	cam := NewCamera(WithSource(state), WithAspect(16.0/9.0))

	view := cam.ViewMatrix()
	// Looking down -Z from (0,0,5): the view translation carries the eye to
	// the origin.
	assert.InDelta(t, -5, float64(view[14]), 1e-5)

	state.SetPose(Pose{Position: [3]float64{3, 0, 5}, FocusDistance: 5})
	cam.Update()
	assert.NotEqual(t, view, cam.ViewMatrix())

	u := cam.Uniform()
	assert.Equal(t, float32(3), u.CameraPosition[0])
	assert.Equal(t, 80, u.Size())
	assert.Len(t, u.Marshal(), 80)
}
