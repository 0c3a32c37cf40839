package surface

import "math"

// Vec3 is a direction used to seed a plane normal.
type Vec3 struct {
	X, Y, Z Scalar
}

// Normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func (v Vec3) Normalize() Vec3 {
	l := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	if l == 0 {
		return v
	}
	return Vec3{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}

// UnitZ is the normal of the flat starting plane.
var UnitZ = Vec3{Z: 1}

// Plane is A·x + B·y + C·z + D = 0, solved for z.
//
// C must be non-zero for ZAt to be finite; NewPlane seeds it from a unit
// normal and the slope setters never touch it.
type Plane struct {
	A, B, C, D Scalar
}

// NewPlane returns the plane through the origin with the given normal.
func NewPlane(normal Vec3) Plane {
	n := normal.Normalize()
	return Plane{A: n.X, B: n.Y, C: n.Z, D: 0}
}

// Reset restores the coefficients of NewPlane(normal).
func (p *Plane) Reset(normal Vec3) {
	*p = NewPlane(normal)
}

// SetSlopeXZ sets the slope seen on the XZ face.
//
// The coefficient is the negated slope, not its reciprocal. With C=1 this
// makes ZAt rise by m per unit x, which is what the tangent patch relies on.
func (p *Plane) SetSlopeXZ(m Scalar) {
	p.A = -m
}

// SetSlopeYZ sets the slope seen on the YZ face. See SetSlopeXZ.
func (p *Plane) SetSlopeYZ(m Scalar) {
	p.B = -m
}

// ZAt returns z at (x, y). A zero C yields ±Inf or NaN.
func (p Plane) ZAt(x, y Scalar) Scalar {
	return (-p.A*x - p.B*y - p.D) / p.C
}
