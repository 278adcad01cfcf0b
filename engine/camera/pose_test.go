package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoseForwardConventions(t *testing.T) {
	tests := []struct {
		name        string
		orientation [3]float64
		want        [3]float64
	}{
		{"identity faces -Z", [3]float64{0, 0, 0}, [3]float64{0, 0, -1}},
		{"yaw 90 faces -X", [3]float64{0, 90, 0}, [3]float64{-1, 0, 0}},
		{"yaw -90 faces +X", [3]float64{0, -90, 0}, [3]float64{1, 0, 0}},
		{"pitch 90 faces up", [3]float64{90, 0, 0}, [3]float64{0, 1, 0}},
		{"pitch -90 faces down", [3]float64{-90, 0, 0}, [3]float64{0, -1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Pose{Orientation: tt.orientation}.Forward()
			for i := 0; i < 3; i++ {
				assert.InDelta(t, tt.want[i], f[i], 1e-12)
			}
		})
	}
}

func TestPoseAimAtRoundTrip(t *testing.T) {
	p := Pose{Position: [3]float64{3, 4, -2}}
	target := [3]float64{-1, 7, 5}
	p.AimAt(target)

	require.True(t, p.HasFocusDistance())
	got, ok := p.LookTarget()
	require.True(t, ok)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, target[i], got[i], 1e-9)
	}
}

func TestPoseAimAtSelfIsNoOp(t *testing.T) {
	p := Pose{Position: [3]float64{1, 2, 3}, Orientation: [3]float64{10, 20, 30}}
	p.AimAt([3]float64{1, 2, 3})
	assert.Equal(t, [3]float64{10, 20, 30}, p.Orientation)
	assert.False(t, p.HasFocusDistance())
}

func TestPoseAimAtPreservesRoll(t *testing.T) {
	p := Pose{Position: [3]float64{0, 0, 10}, Orientation: [3]float64{0, 0, 15}}
	p.AimAt([3]float64{0, 0, 0})
	assert.Equal(t, 15.0, p.Orientation[2])
	assert.InDelta(t, 0, p.Orientation[0], 1e-12)
	assert.InDelta(t, 0, p.Orientation[1], 1e-12)
	assert.InDelta(t, 10, p.FocusDistance, 1e-12)
}

func TestPoseLerpTakesShortestAngularPath(t *testing.T) {
	from := Pose{Orientation: [3]float64{0, 170, 0}}
	to := Pose{Orientation: [3]float64{0, -170, 0}}

	mid := from.Lerp(to, 0.5)
	assert.InDelta(t, 180, math.Abs(mid.Orientation[1]), 1e-12,
		"interpolating across the seam passes through 180, not 0")

	end := from.Lerp(to, 1)
	assert.InDelta(t, -170, end.Orientation[1], 1e-12)
}

func TestPoseLerpEndpoints(t *testing.T) {
	from := Pose{Position: [3]float64{1, 2, 3}, Orientation: [3]float64{10, 20, 30}, FocusDistance: 5}
	to := Pose{Position: [3]float64{-4, 0, 9}, Orientation: [3]float64{-15, 60, 0}, FocusDistance: 12}

	assert.Equal(t, from, from.Lerp(to, 0))
	got := from.Lerp(to, 1)
	assert.Equal(t, to.Position, got.Position)
	assert.Equal(t, to.FocusDistance, got.FocusDistance)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, to.Orientation[i], got.Orientation[i], 1e-12)
	}
}

func TestPoseValid(t *testing.T) {
	assert.True(t, Pose{}.Valid())
	assert.False(t, Pose{Position: [3]float64{math.NaN(), 0, 0}}.Valid())
	assert.False(t, Pose{Orientation: [3]float64{0, math.Inf(1), 0}}.Valid())
	assert.False(t, Pose{FocusDistance: math.NaN()}.Valid())
}

func TestPoseLookTargetWithoutFocus(t *testing.T) {
	_, ok := Pose{Position: [3]float64{1, 1, 1}}.LookTarget()
	assert.False(t, ok)
}

func TestPoseEncodeDecode(t *testing.T) {
	p := Pose{Position: [3]float64{1.5, -2, 0.25}, Orientation: [3]float64{-30, 135, 0}, FocusDistance: 8}
	data, err := p.Encode()
	require.NoError(t, err)

	got, err := DecodePose(data)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestPoseDistances(t *testing.T) {
	a := Pose{Position: [3]float64{0, 0, 0}, Orientation: [3]float64{0, 175, 0}}
	b := Pose{Position: [3]float64{1, -2, 3}, Orientation: [3]float64{0, -175, 0}}

	assert.InDelta(t, 6, a.PositionDistance(b), 1e-12)
	assert.InDelta(t, 10, a.OrientationDistance(b), 1e-12,
		"angular distance wraps through the seam")
}

func TestDampFactor(t *testing.T) {
	assert.Equal(t, 1.0, DampFactor(0.016, 0), "non-positive tau snaps")
	assert.Equal(t, 1.0, DampFactor(0.016, -1))
	assert.InDelta(t, 1-math.Exp(-1), DampFactor(0.5, 0.5), 1e-12)
	assert.InDelta(t, 1-math.Exp(-2), DampFactor(1.0, 0.5), 1e-12)
}

func TestDampIsFrameRateIndependent(t *testing.T) {
	// Two 0.25s steps must land exactly where one 0.5s step does.
	one := Damp(0, 10, 0.5, 0.5)
	two := Damp(Damp(0, 10, 0.25, 0.5), 10, 0.25, 0.5)
	assert.InDelta(t, one, two, 1e-12)
}

func TestDampAngleSeam(t *testing.T) {
	got := DampAngle(170, -170, 0.5, 0.5)
	assert.Greater(t, math.Abs(got), 170.0, "damping toward -170 crosses the seam, never the long way")
}

func TestPoseSettled(t *testing.T) {
	a := Pose{Position: [3]float64{1, 1, 1}}
	assert.True(t, PoseSettled(a, a))

	b := a
	b.Position[0] += PoseSettleEpsilon * 2
	assert.False(t, PoseSettled(a, b))
}
