package viz

import (
	"fmt"

	"tangentviz/colormap"
	"tangentviz/grid"
	"tangentviz/hal"
	"tangentviz/quarkgl"
	"tangentviz/surface"
)

// ErrTerminated is returned by Frame once the window is closing.
var ErrTerminated = hal.ErrTerminated

// Canvas receives the draw calls of one frame.
type Canvas interface {
	Begin(cam quarkgl.Camera)
	Point(p quarkgl.Vec3, radius quarkgl.Scalar, c quarkgl.Color)
	Line(a, b quarkgl.Vec3, c quarkgl.Color)
	End()
}

// Stats counts what the driver has drawn.
type Stats struct {
	Frames uint64
	// Points and Lines are the counts of the last drawn frame.
	Points int
	Lines  int
}

// Driver runs the per-frame update and draw sequence.
type Driver struct {
	cfg     Config
	surface surface.Polynomial
	state   State

	buf    *grid.Buffer
	domain grid.Domain
	patch  grid.Domain

	orbit quarkgl.OrbitController
	cam   quarkgl.Camera

	log   hal.Logger
	stats Stats
}

// NewDriver allocates the height-map buffer and the initial state. log may
// be nil.
func NewDriver(cfg Config, log hal.Logger) *Driver {
	domain := grid.Square(cfg.DomainBegin, cfg.DomainEnd, cfg.Step)
	d := &Driver{
		cfg:     cfg,
		surface: cfg.Surface,
		state:   NewState(cfg),
		buf:     grid.NewBuffer(cfg.Resolution, cfg.Resolution),
		domain:  domain,
		patch:   domain.Scale(cfg.PatchScale),
		orbit: quarkgl.OrbitController{
			Radius: 1,
			Height: quarkgl.Scalar(cfg.CameraHeight),
		},
		cam: quarkgl.Camera{
			Type:      quarkgl.CameraOrtho,
			OrthoSize: quarkgl.Scalar(cfg.OrthoSize),
			Near:      -10,
			Far:       10,
		},
		log: log,
	}
	d.orbit.Apply(&d.cam)
	d.logf("viz: surface %s", d.surface)
	return d
}

func (d *Driver) State() State           { return d.state }
func (d *Driver) Stats() Stats           { return d.stats }
func (d *Driver) Camera() quarkgl.Camera { return d.cam }
func (d *Driver) Surface() surface.Polynomial {
	return d.surface
}

// Frame advances the state from the held keys and draws one frame to cv.
// It returns ErrTerminated, without drawing, once closing is set or the
// close key is held. A nil cv only advances the state.
func (d *Driver) Frame(kb KeyState, closing bool, cv Canvas) error {
	if d.state.Phase == PhaseTerminated {
		return ErrTerminated
	}
	switch d.state.Step(ReadControls(kb, closing, d.cfg.Bindings)) {
	case PhaseTerminated:
		d.logf("viz: closing after %d frames", d.stats.Frames)
		return ErrTerminated
	case PhaseResetting:
		d.logf("viz: plane reset at seek (%.2f, %.2f)", d.state.SeekX, d.state.SeekY)
	}

	d.fitPlane()
	d.orbit.Yaw = quarkgl.Scalar(d.state.Yaw)
	d.orbit.Apply(&d.cam)

	d.stats.Frames++
	if cv == nil {
		return nil
	}

	cv.Begin(d.cam)
	lines := d.drawAxes(cv)
	points := d.drawPass(cv, d.surface.Eval, d.domain, surface.Vec3{})
	points += d.drawPass(cv, d.state.Plane.ZAt, d.patch, surface.Vec3{
		X: d.state.SeekX,
		Y: d.state.SeekY,
		Z: d.surface.Eval(d.state.SeekX, d.state.SeekY),
	})
	if d.cfg.Derivative {
		points += d.drawPass(cv, d.surface.Derivative().Eval, d.domain, surface.Vec3{})
	}
	cv.End()

	d.stats.Points = points
	d.stats.Lines = lines
	return nil
}

// fitPlane sets the plane slopes from the surface partials at the seek point.
func (d *Driver) fitPlane() {
	px := d.surface.PartialX()
	py := d.surface.PartialY()
	d.state.Plane.SetSlopeXZ(px.Eval(d.state.SeekX, 0))
	d.state.Plane.SetSlopeYZ(py.Eval(0, d.state.SeekY))
}

func (d *Driver) drawAxes(cv Canvas) int {
	o := quarkgl.V3(0, 0, 0)
	cv.Line(o, quarkgl.V3(1, 0, 0), colormap.Red)
	cv.Line(o, quarkgl.V3(0, 1, 0), colormap.Green)
	cv.Line(o, quarkgl.V3(0, 0, 1), colormap.Blue)
	return 3
}

// drawPass samples f over dom into the shared buffer and draws every
// written cell, shifted by off.
func (d *Driver) drawPass(cv Canvas, f grid.Field, dom grid.Domain, off surface.Vec3) int {
	nx, ny := grid.Sample(f, dom, d.buf)
	m := colormap.Mapper{Range: colormap.ScanRange(d.buf.Values()), Domain: dom}
	r := quarkgl.Scalar(d.cfg.PointRadius)

	n := 0
	grid.Each(dom, func(ix, iy int, x, y float64) {
		if ix >= nx || iy >= ny {
			return
		}
		z := d.buf.At(ix, iy)
		cv.Point(quarkgl.V3f(x+off.X, y+off.Y, z+off.Z), r, m.Color(x, y, z))
		n++
	})
	return n
}

func (d *Driver) logf(format string, args ...any) {
	if d.log == nil {
		return
	}
	d.log.WriteLineString(fmt.Sprintf(format, args...))
}
