package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFrustumFromPerspectiveMatrix(t *testing.T) {
	// 90 degree vertical fov at square aspect puts the side planes at 45
	// degrees: the half-extent at depth |z| equals |z|.
	proj := make([]float32, 16)
	Perspective(proj, float32(math.Pi/2), 1, 1, 100)

	f := ExtractFrustumFromMatrix(proj)

	for i, p := range f.Planes {
		length := math.Sqrt(float64(
			p.Normal[0]*p.Normal[0] + p.Normal[1]*p.Normal[1] + p.Normal[2]*p.Normal[2]))
		assert.InDelta(t, 1, length, 1e-5, "plane %d normal is unit length", i)
	}

	inv := float32(1 / math.Sqrt2)
	left := f.Planes[FrustumLeft]
	assert.InDelta(t, inv, left.Normal[0], 1e-5)
	assert.InDelta(t, 0, left.Normal[1], 1e-5)
	assert.InDelta(t, -inv, left.Normal[2], 1e-5)
	assert.InDelta(t, 0, left.Distance, 1e-5)

	far := f.Planes[FrustumFar]
	assert.InDelta(t, 0, far.Normal[0], 1e-5)
	assert.InDelta(t, 1, far.Normal[2], 1e-3)
	assert.InDelta(t, 100, far.Distance, 0.05)
}

func TestFrustumPointAndSphereQueries(t *testing.T) {
	proj := make([]float32, 16)
	Perspective(proj, float32(math.Pi/2), 1, 1, 100)
	f := ExtractFrustumFromMatrix(proj)

	assert.True(t, f.ContainsPoint(0, 0, -10))
	assert.True(t, f.ContainsPoint(5, -5, -10), "inside the 45 degree side planes")
	assert.False(t, f.ContainsPoint(0, 0, 10), "behind the eye")
	assert.False(t, f.ContainsPoint(0, 0, -200), "beyond the far plane")
	assert.False(t, f.ContainsPoint(30, 0, -10), "outside the right plane")

	assert.True(t, f.IntersectsSphere(0, 0, -105, 10), "straddles the far plane")
	assert.False(t, f.IntersectsSphere(0, 0, -120, 10))
}
