package quarkgl

import "math"

// OrbitController keeps a Z-up camera on a horizontal circle around Target.
//
// Only yaw is controlled; the eye stays at a fixed Height above Target.
type OrbitController struct {
	Target Vec3
	Yaw    Scalar
	Radius Scalar
	Height Scalar
}

// Apply places cam on the orbit and aims it at Target with +Z up.
func (c *OrbitController) Apply(cam *Camera) {
	if cam == nil {
		return
	}
	r := c.Radius
	if r == 0 {
		r = 1
	}
	yaw := float64(c.Yaw)
	off := V3(
		r*Scalar(math.Cos(yaw)),
		r*Scalar(math.Sin(yaw)),
		c.Height,
	)
	cam.Position = c.Target.Add(off)
	cam.Target = c.Target
	cam.Up = V3(0, 0, 1)
}
