package surface

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaneFlatThroughOrigin(t *testing.T) {
	p := Plane{A: 0, B: 0, C: 1, D: 0}
	for _, pt := range samplePoints {
		assert.Equal(t, 0.0, math.Abs(p.ZAt(pt[0], pt[1])), "pt=%v", pt)
	}
}

func TestNewPlaneUnitZ(t *testing.T) {
	p := NewPlane(Vec3{Z: 5})
	require.Equal(t, Plane{A: 0, B: 0, C: 1, D: 0}, p)
}

func TestPlaneSlopeSettersKeepNegatedSlope(t *testing.T) {
	p := NewPlane(UnitZ)
	p.SetSlopeXZ(2)
	p.SetSlopeYZ(-0.5)

	// Pinned: A and B hold the negated slope, C and D are untouched.
	require.Equal(t, Plane{A: -2, B: 0.5, C: 1, D: 0}, p)
	assert.InDelta(t, 2.0, p.ZAt(1, 0), tol)
	assert.InDelta(t, -0.5, p.ZAt(0, 1), tol)
	assert.InDelta(t, 2*0.3-0.5*0.7, p.ZAt(0.3, 0.7), tol)
}

func TestPlaneResetAfterSlopes(t *testing.T) {
	p := NewPlane(UnitZ)
	for i := 0; i < 10; i++ {
		p.SetSlopeXZ(float64(i) * 1.7)
		p.SetSlopeYZ(float64(-i) * 0.3)
	}
	p.D = 4

	p.Reset(UnitZ)
	require.Equal(t, NewPlane(UnitZ), p)
	assert.Equal(t, 0.0, p.D)
}

func TestPlaneZeroCIsNonFinite(t *testing.T) {
	p := Plane{A: 1, B: 0, C: 0, D: 0}

	z := p.ZAt(1, 0)
	assert.True(t, math.IsInf(z, 0), "ZAt(1,0) = %v, want Inf", z)

	z = p.ZAt(0, 0)
	assert.True(t, math.IsNaN(z), "ZAt(0,0) = %v, want NaN", z)
}

func TestVec3NormalizeZero(t *testing.T) {
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
	n := Vec3{X: 3, Y: 0, Z: 4}.Normalize()
	assert.InDelta(t, 0.6, n.X, tol)
	assert.InDelta(t, 0.8, n.Z, tol)
}
