package viz

import "tangentviz/quarkgl"

// Background is the clear color of a RenderCanvas.
var Background = quarkgl.RGB(245, 245, 245)

// RenderCanvas draws through a quarkgl renderer into a pixel target.
type RenderCanvas struct {
	R *quarkgl.Renderer
	T quarkgl.Target
}

// NewRenderCanvas returns a depth-tested canvas over t.
func NewRenderCanvas(t quarkgl.Target) *RenderCanvas {
	w, h := t.Size()
	r := quarkgl.NewRenderer(w, h, true)
	r.ClearColor = Background
	return &RenderCanvas{R: r, T: t}
}

func (c *RenderCanvas) Begin(cam quarkgl.Camera) { c.R.Begin(c.T, cam) }

func (c *RenderCanvas) Point(p quarkgl.Vec3, radius quarkgl.Scalar, col quarkgl.Color) {
	c.R.DrawPoint3D(p, radius, col)
}

func (c *RenderCanvas) Line(a, b quarkgl.Vec3, col quarkgl.Color) {
	c.R.DrawLine3D(a, b, col)
}

func (c *RenderCanvas) End() { c.R.End() }
