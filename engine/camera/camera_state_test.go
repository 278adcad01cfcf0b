package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gimbal-dev/gimbal/engine/easing"
)

func TestCameraStateDampingConvergence(t *testing.T) {
	s := NewCameraState(WithTimeConstant(0.5))
	s.SetTarget(Pose{Position: [3]float64{10, 0, 0}})

	// After one time constant the camera has closed ~63% of the distance.
	s.Update(0.5)
	assert.InDelta(t, 10*(1-math.Exp(-1)), s.Pose().Position[0], 1e-9)
	assert.False(t, s.IsSettled())

	// A few seconds of frames settles it exactly onto the target.
	for i := 0; i < 500; i++ {
		s.Update(0.01)
	}
	assert.True(t, s.IsSettled())
	assert.Equal(t, [3]float64{10, 0, 0}, s.Pose().Position, "settling snaps exactly onto the target")
}

func TestCameraStateSetPoseIsInstant(t *testing.T) {
	s := NewCameraState()
	p := Pose{Position: [3]float64{1, 2, 3}, Orientation: [3]float64{-5, 40, 0}}
	s.SetPose(p)

	assert.Equal(t, p, s.Pose())
	assert.Equal(t, p, s.Target())
	assert.True(t, s.IsSettled())
	assert.True(t, s.Dirty())

	// The frame-boundary clear still surfaces the instant set once.
	s.Update(0.016)
	assert.True(t, s.Dirty(), "the pose sink observes an instant set on the following frame")
	s.Update(0.016)
	assert.False(t, s.Dirty())
}

func TestCameraStateRejectsInvalidPoses(t *testing.T) {
	s := NewCameraState(WithInitialPose(Pose{Position: [3]float64{1, 1, 1}}))
	bad := Pose{Position: [3]float64{math.NaN(), 0, 0}}

	s.SetPose(bad)
	assert.Equal(t, [3]float64{1, 1, 1}, s.Pose().Position)

	s.SetTarget(bad)
	assert.Equal(t, [3]float64{1, 1, 1}, s.Target().Position)

	fut := s.TransitionTo(bad, 1, nil)
	require.True(t, fut.Resolved())
	assert.True(t, fut.Canceled())
	assert.False(t, s.Transitioning())
}

func TestCameraStateTransitionCompletesExactly(t *testing.T) {
	s := NewCameraState(WithInitialPose(Pose{Position: [3]float64{0, 0, 0}}))
	dest := Pose{Position: [3]float64{4, 2, -6}, Orientation: [3]float64{-10, 90, 0}}

	fut := s.TransitionTo(dest, 1, easing.QuadInOut)
	assert.True(t, s.Transitioning())

	s.Update(0.5)
	mid := s.Pose()
	assert.Greater(t, mid.Position[0], 0.0)
	assert.Less(t, mid.Position[0], 4.0)
	assert.True(t, s.Dirty())
	assert.False(t, fut.Resolved())

	s.Update(0.6)
	require.True(t, fut.Resolved())
	assert.False(t, fut.Canceled())
	assert.Equal(t, dest, fut.Value())
	assert.Equal(t, dest, s.Pose(), "completion snaps exactly onto the destination")
	assert.True(t, s.IsSettled())
	assert.False(t, s.Transitioning())
}

func TestCameraStateTransitionSupersession(t *testing.T) {
	s := NewCameraState()
	p1 := Pose{Position: [3]float64{10, 0, 0}}
	p2 := Pose{Position: [3]float64{0, 0, -20}}

	fut1 := s.TransitionTo(p1, 1, nil)
	s.Update(0.25)

	fut2 := s.TransitionTo(p2, 1, nil)
	require.True(t, fut1.Resolved(), "a superseded transition resolves immediately")
	assert.True(t, fut1.Canceled())
	assert.False(t, fut2.Resolved())

	for i := 0; i < 12; i++ {
		s.Update(0.1)
	}
	require.True(t, fut2.Resolved())
	assert.False(t, fut2.Canceled())
	assert.Equal(t, p2, s.Pose(), "the superseding transition lands on its own destination, with no trace of the first")
}

func TestCameraStateZeroDurationTransitionDegradesToRetarget(t *testing.T) {
	s := NewCameraState(WithTimeConstant(0.2))
	dest := Pose{Position: [3]float64{5, 0, 0}}

	fut := s.TransitionTo(dest, 0, nil)
	require.True(t, fut.Resolved())
	assert.False(t, fut.Canceled())
	assert.Equal(t, dest, fut.Value())
	assert.False(t, s.Transitioning())
	assert.Equal(t, dest, s.Target())

	s.Update(0.1)
	assert.Greater(t, s.Pose().Position[0], 0.0, "damping carries the camera toward the retargeted pose")
}

func TestCameraStateCancelTransitionDiscardsEntirely(t *testing.T) {
	s := NewCameraState()
	fut := s.TransitionTo(Pose{Position: [3]float64{10, 0, 0}}, 1, nil)
	s.Update(0.3)
	partial := s.Pose()

	s.CancelTransition()
	require.True(t, fut.Resolved())
	assert.True(t, fut.Canceled())
	assert.Equal(t, partial, fut.Value(), "the canceled future reports where the camera stopped")
	assert.False(t, s.Transitioning())

	s.Update(0.3)
	assert.Equal(t, partial, s.Pose(), "no residual motion survives a cancel")
}

func TestCameraStateSetPoseCancelsTransition(t *testing.T) {
	s := NewCameraState()
	fut := s.TransitionTo(Pose{Position: [3]float64{10, 0, 0}}, 1, nil)
	s.Update(0.2)

	snap := Pose{Position: [3]float64{-3, 0, 0}}
	s.SetPose(snap)
	assert.True(t, fut.Canceled())
	assert.Equal(t, snap, s.Pose())
	assert.True(t, s.IsSettled())
}

func TestCameraStateBlendTowards(t *testing.T) {
	s := NewCameraState(WithInitialPose(Pose{Position: [3]float64{0, 0, 0}}))
	candidate := Pose{Position: [3]float64{10, 0, 0}}

	s.BlendTowards(candidate, 0)
	assert.Equal(t, 0.0, s.Pose().Position[0], "zero weight leaves the pose untouched")
	assert.False(t, s.Dirty())

	s.BlendTowards(candidate, 0.5)
	assert.InDelta(t, 5, s.Pose().Position[0], 1e-12)
	assert.True(t, s.Dirty())

	s.BlendTowards(candidate, 3)
	assert.Equal(t, candidate.Position, s.Pose().Position, "weights above one clamp to an exact copy")
}

func TestCameraStateDirtyClearsWhenNothingMoves(t *testing.T) {
	s := NewCameraState()
	s.SetTarget(Pose{Position: [3]float64{1, 0, 0}})
	for i := 0; i < 500; i++ {
		s.Update(0.01)
	}
	require.True(t, s.IsSettled())

	s.Update(0.016)
	assert.False(t, s.Dirty(), "a settled camera stops reporting dirt")
}

func TestCameraStateSnapTimeConstant(t *testing.T) {
	s := NewCameraState(WithTimeConstant(0))
	s.SetTarget(Pose{Position: [3]float64{7, 7, 7}})
	s.Update(0.001)
	assert.Equal(t, [3]float64{7, 7, 7}, s.Pose().Position, "non-positive tau snaps in one frame")
	assert.True(t, s.IsSettled())
}
