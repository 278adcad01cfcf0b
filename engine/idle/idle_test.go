package idle

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gimbal-dev/gimbal/engine/camera"
	"github.com/gimbal-dev/gimbal/engine/config"
)

// fixedPoseContext returns an IdleContext whose accessor always reports the
// given pose.
func fixedPoseContext(p camera.Pose) camera.IdleContext {
	return camera.IdleContext{Pose: func() camera.Pose { return p }}
}

func TestDriftPauseEnterBeforeAttachIsNoOp(t *testing.T) {
	d := NewDriftPause()
	d.Enter()
	assert.False(t, d.Active())

	_, ok := d.ComputePose(0.016)
	assert.False(t, ok)
}

func TestDriftPauseBlendFadeInAndOut(t *testing.T) {
	d := NewDriftPause(WithBlendTimeConstant(0.5), WithSeed(1))
	d.Attach(fixedPoseContext(camera.Pose{Position: [3]float64{0, 2, 8}}))

	d.Enter()
	require.True(t, d.Active())
	assert.Equal(t, 0.0, d.BlendWeight())

	d.Update(0.5)
	assert.InDelta(t, 1-math.Exp(-1), d.BlendWeight(), 1e-9)

	// A long frame settles the fade onto its target exactly.
	d.Update(10)
	assert.Equal(t, 1.0, d.BlendWeight())

	d.Exit()
	assert.False(t, d.Active())
	assert.Equal(t, 1.0, d.BlendWeight(), "exit starts the fade, it does not snap")

	d.Update(0.5)
	assert.InDelta(t, math.Exp(-1), d.BlendWeight(), 1e-9)

	d.Update(10)
	assert.Equal(t, 0.0, d.BlendWeight())

	_, ok := d.ComputePose(0.016)
	assert.False(t, ok, "fully faded-out animation produces no pose")
}

func TestDriftPauseSeededDeterminism(t *testing.T) {
	start := camera.Pose{Position: [3]float64{3, 1, -4}, Orientation: [3]float64{-10, 45, 0}}

	run := func() []camera.Pose {
		d := NewDriftPause(WithSeed(99), WithHoverRadius(2))
		d.Attach(fixedPoseContext(start))
		d.Enter()

		poses := make([]camera.Pose, 0, 400)
		for i := 0; i < 400; i++ {
			d.Update(0.05)
			p, ok := d.ComputePose(0.05)
			require.True(t, ok)
			poses = append(poses, p)
		}
		return poses
	}

	assert.Equal(t, run(), run(), "identical seeds must replay the identical path")
}

func TestDriftPauseStaysWithinHoverBounds(t *testing.T) {
	center := [3]float64{5, 2, 5}
	d := NewDriftPause(WithSeed(7), WithHoverRadius(1.5))
	d.Attach(fixedPoseContext(camera.Pose{Position: center}))
	d.Enter()

	for i := 0; i < 2000; i++ {
		p, ok := d.ComputePose(0.05)
		require.True(t, ok)

		dx := p.Position[0] - center[0]
		dz := p.Position[2] - center[2]
		assert.LessOrEqual(t, math.Sqrt(dx*dx+dz*dz), 1.5+1e-9)
		assert.LessOrEqual(t, math.Abs(p.Position[1]-center[1]), 1.5*verticalJitterFraction+1e-9)
	}
}

func TestDriftPauseAimsAtFixedLookTarget(t *testing.T) {
	look := [3]float64{0, 0, 0}
	d := NewDriftPause(WithSeed(3), WithLookTarget(look))
	d.Attach(fixedPoseContext(camera.Pose{Position: [3]float64{0, 0, 10}}))
	d.Enter()

	for i := 0; i < 500; i++ {
		p, ok := d.ComputePose(0.05)
		require.True(t, ok)

		target, hasFocus := p.LookTarget()
		require.True(t, hasFocus)
		for axis := 0; axis < 3; axis++ {
			assert.InDelta(t, look[axis], target[axis], 1e-6)
		}
	}
}

func TestDriftPauseSetLookTarget(t *testing.T) {
	d := NewDriftPause(WithSeed(11))
	d.Attach(fixedPoseContext(camera.Pose{Position: [3]float64{0, 0, 10}, FocusDistance: 10}))
	d.Enter()
	d.Update(0.1)
	d.ComputePose(0.1)

	newLook := [3]float64{20, 5, 0}
	d.SetLookTarget(newLook)

	p, ok := d.ComputePose(0.016)
	require.True(t, ok)
	target, hasFocus := p.LookTarget()
	require.True(t, hasFocus)
	for axis := 0; axis < 3; axis++ {
		assert.InDelta(t, newLook[axis], target[axis], 1e-6)
	}
	assert.Equal(t, [3]float64{0, 0, 10}, p.Position,
		"retargeting restarts from a pause at the current position")
}

func TestDriftPauseAutoStopFiresExactlyOnce(t *testing.T) {
	d := NewDriftPause(WithSeed(5), WithAutoStop(0.5))
	d.Attach(fixedPoseContext(camera.Pose{Position: [3]float64{0, 0, 5}}))

	fired := 0
	d.SetAutoStopHandler(func() { fired++ })

	d.Enter()
	d.Update(0.3)
	assert.Equal(t, 0, fired)
	assert.True(t, d.Active())

	d.Update(0.3)
	assert.Equal(t, 1, fired)
	assert.False(t, d.Active(), "auto-stop exits the animation")

	for i := 0; i < 100; i++ {
		d.Update(0.1)
	}
	assert.Equal(t, 1, fired, "the handler never fires twice per activation")
}

func TestDriftPauseDisposeIsIdempotent(t *testing.T) {
	d := NewDriftPause(WithSeed(2))
	d.Attach(fixedPoseContext(camera.Pose{Position: [3]float64{1, 1, 1}}))
	d.Enter()

	d.Dispose()
	assert.False(t, d.Active())
	d.Dispose()

	d.Enter()
	assert.False(t, d.Active(), "a disposed animation cannot re-enter without Attach")
}

func TestAutoRotatePreservesOrbitRadius(t *testing.T) {
	start := camera.Pose{Position: [3]float64{0, 3, 10}}
	start.AimAt([3]float64{0, 0, 0})

	r := NewAutoRotate(WithSpeed(45))
	r.Attach(fixedPoseContext(start))
	r.Enter()

	radius := math.Sqrt(3*3 + 10*10)
	for i := 0; i < 300; i++ {
		r.Update(0.05)
		p, ok := r.ComputePose(0.05)
		require.True(t, ok)

		got := math.Sqrt(p.Position[0]*p.Position[0] +
			p.Position[1]*p.Position[1] +
			p.Position[2]*p.Position[2])
		assert.InDelta(t, radius, got, 1e-6)

		target, hasFocus := p.LookTarget()
		require.True(t, hasFocus)
		for axis := 0; axis < 3; axis++ {
			assert.InDelta(t, 0, target[axis], 1e-6)
		}
	}
}

func TestAutoRotateAdvancesAtConfiguredSpeed(t *testing.T) {
	start := camera.Pose{Position: [3]float64{0, 0, 10}}
	start.AimAt([3]float64{0, 0, 0})

	r := NewAutoRotate(WithSpeed(90))
	r.Attach(fixedPoseContext(start))
	r.Enter()

	// One second at 90°/s moves the camera a quarter turn around the focus.
	p, ok := r.ComputePose(1.0)
	require.True(t, ok)
	assert.InDelta(t, 10, p.Position[0], 1e-6)
	assert.InDelta(t, 0, p.Position[2], 1e-6)
}

func TestAutoRotateReverse(t *testing.T) {
	start := camera.Pose{Position: [3]float64{0, 0, 10}}
	start.AimAt([3]float64{0, 0, 0})

	r := NewAutoRotate(WithSpeed(90), WithReverse(true))
	r.Attach(fixedPoseContext(start))
	r.Enter()

	p, ok := r.ComputePose(1.0)
	require.True(t, ok)
	assert.InDelta(t, -10, p.Position[0], 1e-6)
}

func TestAutoRotateBoundsPingPong(t *testing.T) {
	start := camera.Pose{Position: [3]float64{0, 0, 10}}
	start.AimAt([3]float64{0, 0, 0})

	r := NewAutoRotate(WithSpeed(30), WithBounds(-45, 45))
	r.Attach(fixedPoseContext(start))
	r.Enter()

	// Sweep long enough to bounce off both bounds several times.
	minX, maxX := math.Inf(1), math.Inf(-1)
	for i := 0; i < 1000; i++ {
		p, ok := r.ComputePose(0.05)
		require.True(t, ok)
		minX = math.Min(minX, p.Position[0])
		maxX = math.Max(maxX, p.Position[0])
	}

	limit := 10 * math.Sin(45*math.Pi/180)
	assert.InDelta(t, limit, maxX, 1e-6)
	assert.InDelta(t, -limit, minX, 1e-6)
}

func TestAutoRotateMaintainPitch(t *testing.T) {
	start := camera.Pose{Position: [3]float64{0, 5, 10}, Orientation: [3]float64{-12, 0, 0}, FocusDistance: 11}

	r := NewAutoRotate(WithSpeed(60), WithMaintainPitch(true))
	r.Attach(fixedPoseContext(start))
	r.Enter()

	for i := 0; i < 200; i++ {
		p, ok := r.ComputePose(0.05)
		require.True(t, ok)
		assert.Equal(t, -12.0, p.Orientation[0])
	}
}

func TestAutoRotateIsNeverStatic(t *testing.T) {
	r := NewAutoRotate()
	assert.False(t, r.IsStaticPose())
}

func TestDriftPauseIsStaticWhilePausing(t *testing.T) {
	d := NewDriftPause(WithSeed(4), WithBlendTimeConstant(0.1))
	d.Attach(fixedPoseContext(camera.Pose{Position: [3]float64{0, 0, 5}}))
	d.Enter()

	// The first segment is always a pause; settle the blend onto 1.
	d.Update(10)
	d.ComputePose(0.001)
	assert.True(t, d.IsStaticPose())
}

func TestFromConfigDriftPause(t *testing.T) {
	seed := int64(42)
	anim, err := FromConfig(config.IdleConfig{
		Type:               config.IdleTypeDriftPause,
		BlendTimeConstantS: 2,
		DriftPause: &config.DriftPauseConfig{
			HoverRadius:        3,
			DriftDurationRange: [2]float64{1, 2},
			PauseDurationRange: [2]float64{1, 1},
			StepScaleRange:     [2]float64{0.5, 1},
			Seed:               &seed,
		},
	})
	require.NoError(t, err)

	d, ok := anim.(*DriftPause)
	require.True(t, ok)
	assert.Equal(t, 3.0, d.hoverRadius)
	assert.Equal(t, 2.0, d.blendTau)
}

func TestFromConfigAutoRotate(t *testing.T) {
	anim, err := FromConfig(config.IdleConfig{
		Type:           config.IdleTypeAutoRotate,
		EnableAutoStop: true,
		AutoStopMs:     1500,
		AutoRotate: &config.AutoRotateConfig{
			Speed:   25,
			Axis:    config.AxisPitch,
			Reverse: true,
		},
	})
	require.NoError(t, err)

	r, ok := anim.(*AutoRotate)
	require.True(t, ok)
	assert.Equal(t, 25.0, r.speed)
	assert.Equal(t, AxisPitch, r.axis)
	assert.Equal(t, -1.0, r.direction)
	assert.Equal(t, 1.5, r.autoStop)
}

func TestFromConfigUnknownType(t *testing.T) {
	_, err := FromConfig(config.IdleConfig{Type: "spiral"})
	assert.Error(t, err)
}
