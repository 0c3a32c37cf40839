package quarkgl

import "math"

// Renderer is an immediate-mode software renderer for points and lines.
//
// Create it once and reuse it to avoid allocations. A frame is bracketed by
// Begin and End; draw calls outside a frame are ignored.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	ClearColor Color

	depthBuf []float32

	t      Target
	reader PixelReader
	w, h   int
	mvp    Mat4
	right  Vec3
	active bool

	stats Stats
}

// Stats counts the primitives submitted and rasterized in the last frame.
type Stats struct {
	Points        int
	Lines         int
	PointsCulled  int
	PixelsWritten int
}

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Mode:       RenderPointShaded,
		Depth:      enableDepth,
		ClearColor: RGB(0, 0, 0),
	}
	if enableDepth && w > 0 && h > 0 {
		r.depthBuf = make([]float32, w*h)
	}
	return r
}

func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on {
		r.depthBuf = nil
		return
	}
	if w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// Stats returns the counters of the current or last frame.
func (r *Renderer) Stats() Stats { return r.stats }

// Begin clears the target and fixes the camera for the following draw calls.
func (r *Renderer) Begin(t Target, cam Camera) {
	if r == nil {
		return
	}
	r.active = false
	if t == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)

	if r.Depth {
		r.EnableDepth(true, w, h)
		r.clearDepth()
	}

	aspect := Scalar(1)
	if h != 0 {
		aspect = Scalar(float32(w) / float32(h))
	}
	r.mvp = Mat4Mul(cam.Projection(aspect), cam.View())
	r.right = cam.Right()
	r.t = t
	r.reader, _ = t.(PixelReader)
	r.w, r.h = w, h
	r.stats = Stats{}
	r.active = true
}

// End closes the frame. The target keeps the rendered pixels.
func (r *Renderer) End() {
	r.active = false
	r.t = nil
	r.reader = nil
}

// DrawLine3D draws a one-pixel line between two world-space points.
func (r *Renderer) DrawLine3D(a, b Vec3, c Color) {
	if !r.active {
		return
	}
	r.stats.Lines++
	pa, ok0 := r.project(a)
	pb, ok1 := r.project(b)
	if !ok0 || !ok1 {
		return
	}
	x0, y0 := ndcToScreen(pa, r.w, r.h)
	x1, y1 := ndcToScreen(pb, r.w, r.h)
	r.drawLine(x0, y0, x1, y1, c)
}

// DrawPoint3D draws a point of world-space radius as a screen-space disc.
// Points with non-finite coordinates or outside the depth range are culled.
func (r *Renderer) DrawPoint3D(p Vec3, radius Scalar, c Color) {
	if !r.active {
		return
	}
	r.stats.Points++
	if !p.Finite() {
		r.stats.PointsCulled++
		return
	}
	center, ok := r.project(p)
	if !ok || center.Z < -1 || center.Z > 1 {
		r.stats.PointsCulled++
		return
	}
	rim, ok := r.project(p.Add(r.right.Mul(radius)))
	if !ok {
		r.stats.PointsCulled++
		return
	}

	cx := (center.X*0.5 + 0.5) * float32(r.w-1)
	cy := (1 - (center.Y*0.5 + 0.5)) * float32(r.h-1)
	rx := (rim.X*0.5 + 0.5) * float32(r.w-1)
	ry := (1 - (rim.Y*0.5 + 0.5)) * float32(r.h-1)
	rad := float32(math.Hypot(float64(rx-cx), float64(ry-cy)))
	if rad < 0.5 {
		rad = 0.5
	}

	x0 := int(math.Floor(float64(cx - rad)))
	x1 := int(math.Ceil(float64(cx + rad)))
	y0 := int(math.Floor(float64(cy - rad)))
	y1 := int(math.Ceil(float64(cy + rad)))
	if x1 < 0 || y1 < 0 || x0 >= r.w || y0 >= r.h {
		r.stats.PointsCulled++
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 >= r.w {
		x1 = r.w - 1
	}
	if y1 >= r.h {
		y1 = r.h - 1
	}

	r2 := rad * rad
	for y := y0; y <= y1; y++ {
		dy := float32(y) - cy
		for x := x0; x <= x1; x++ {
			dx := float32(x) - cx
			d2 := dx*dx + dy*dy
			if d2 > r2 {
				continue
			}
			if !r.depthTest(x, y, center.Z) {
				continue
			}
			pc := c
			if r.Mode == RenderPointShaded {
				// Lambert-ish falloff over a hemisphere facing the viewer.
				shade := Scalar(0.35 + 0.65*math.Sqrt(float64(1-d2/r2)))
				pc = c.MulScalar(shade)
			}
			r.plot(x, y, pc)
		}
	}
}

func (r *Renderer) plot(x, y int, c Color) {
	if c.A < 0xFF && r.reader != nil {
		c = c.Over(r.reader.Pixel(x, y))
	}
	r.t.SetPixel(x, y, c)
	r.stats.PixelsWritten++
}

func (r *Renderer) project(v Vec3) (ndcPoint, bool) {
	return clipToNDC(Mat4MulV4(r.mvp, Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1}))
}

type ndcPoint struct {
	X, Y, Z float32
}

func clipToNDC(p Vec4) (ndcPoint, bool) {
	w := float32(p.W)
	if w == 0 {
		return ndcPoint{}, false
	}
	invW := 1.0 / w
	n := ndcPoint{
		X: float32(p.X) * invW,
		Y: float32(p.Y) * invW,
		Z: float32(p.Z) * invW,
	}
	if !finite(n.X) || !finite(n.Y) || !finite(n.Z) {
		return ndcPoint{}, false
	}
	return n, true
}

func ndcToScreen(p ndcPoint, w, h int) (x, y int) {
	sx := (p.X*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p.Y*0.5 + 0.5)) * float32(h-1)
	return int(sx + 0.5), int(sy + 0.5)
}

func (r *Renderer) depthTest(x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	if x < 0 || y < 0 || x >= r.w {
		return false
	}
	idx := y*r.w + x
	if idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is typically in [-1,1]. Map to [0,1].
	d := (z*0.5 + 0.5)
	if d < 0 {
		d = 0
	}
	if d > 1 {
		d = 1
	}
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

// drawLine is Bresenham clipped to the target. Lines do not write depth.
func (r *Renderer) drawLine(x0, y0, x1, y1 int, c Color) {
	if (x0 < 0 && x1 < 0) || (y0 < 0 && y1 < 0) || (x0 >= r.w && x1 >= r.w) || (y0 >= r.h && y1 >= r.h) {
		return
	}
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		if x0 >= 0 && y0 >= 0 && x0 < r.w && y0 < r.h {
			r.plot(x0, y0, c)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
