package quarkgl

// CameraType selects camera projection.
type CameraType uint8

const (
	CameraPerspective CameraType = iota
	CameraOrtho
)

// Camera describes the viewing transform.
type Camera struct {
	Type CameraType

	Position Vec3
	Target   Vec3
	Up       Vec3

	// Perspective.
	FOVYRad Scalar

	// Orthographic (half-height).
	OrthoSize Scalar

	// Ortho cameras may use a negative Near to keep geometry behind the
	// eye plane visible.
	Near Scalar
	Far  Scalar
}

// View returns the camera view matrix.
func (c Camera) View() Mat4 {
	return Mat4LookAt(c.Position, c.Target, c.up())
}

// Right returns the world-space unit vector pointing to screen right.
func (c Camera) Right() Vec3 {
	f := Normalize(c.Target.Sub(c.Position))
	return Normalize(Cross(f, c.up()))
}

func (c Camera) up() Vec3 {
	if c.Up == (Vec3{}) {
		return V3(0, 1, 0)
	}
	return c.Up
}

// Projection returns the projection matrix for a target aspect.
func (c Camera) Projection(aspect Scalar) Mat4 {
	switch c.Type {
	case CameraOrtho:
		size := c.OrthoSize
		if size == 0 {
			size = 1
		}
		top := size
		bottom := -size
		right := size * aspect
		left := -right
		return Mat4Ortho(left, right, bottom, top, c.Near, c.Far)
	default:
		fov := c.FOVYRad
		if fov == 0 {
			fov = Scalar(1.0)
		}
		return Mat4Perspective(fov, aspect, c.Near, c.Far)
	}
}
