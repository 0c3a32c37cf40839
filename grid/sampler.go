package grid

import "math"

// Field is a scalar field z(x, y). Method values such as
// surface.Polynomial.Eval and surface.Plane.ZAt satisfy it.
type Field func(x, y float64) float64

// Domain is the sampled rectangle and its per-axis step.
//
// The lattice starts at Begin and advances by Step while the coordinate is
// below End-Step, so the last sample falls short of End by at least a step.
type Domain struct {
	BeginX, EndX, StepX float64
	BeginY, EndY, StepY float64
}

// Square returns the domain [begin, end) on both axes with the same step.
func Square(begin, end, step float64) Domain {
	return Domain{
		BeginX: begin, EndX: end, StepX: step,
		BeginY: begin, EndY: end, StepY: step,
	}
}

// Scale shrinks or grows the bounds by f around zero. Steps are kept.
func (d Domain) Scale(f float64) Domain {
	d.BeginX *= f
	d.EndX *= f
	d.BeginY *= f
	d.EndY *= f
	return d
}

// Steps reports how many samples the lattice walk takes along one axis.
// Malformed input (begin >= end or step <= 0) yields 0.
func Steps(begin, end, step float64) int {
	if step <= 0 {
		return 0
	}
	n := 0
	for x := begin; x < end-step; x = advance(x, step) {
		n++
	}
	return n
}

// advance steps x forward, ending the walk (NaN) when step is too small to
// change x.
func advance(x, step float64) float64 {
	next := x + step
	if next == x {
		return math.NaN()
	}
	return next
}

// Size returns the per-axis sample counts of the domain.
func (d Domain) Size() (nx, ny int) {
	return Steps(d.BeginX, d.EndX, d.StepX), Steps(d.BeginY, d.EndY, d.StepY)
}

// Each walks the lattice of d in x-major order. ix and iy are the cell
// indices matching what Sample writes.
func Each(d Domain, fn func(ix, iy int, x, y float64)) {
	if d.StepX <= 0 || d.StepY <= 0 {
		return
	}
	ix := 0
	for x := d.BeginX; x < d.EndX-d.StepX; x = advance(x, d.StepX) {
		iy := 0
		for y := d.BeginY; y < d.EndY-d.StepY; y = advance(y, d.StepY) {
			fn(ix, iy, x, y)
			iy++
		}
		ix++
	}
}

// Sample evaluates f over d into buf and returns the number of x and y
// samples written. Cells outside the pass keep their previous values.
// Samples that fall past the buffer edge are dropped.
func Sample(f Field, d Domain, buf *Buffer) (nx, ny int) {
	if f == nil || buf == nil {
		return 0, 0
	}
	Each(d, func(ix, iy int, x, y float64) {
		if ix >= buf.w || iy >= buf.h {
			return
		}
		buf.vals[buf.index(ix, iy)] = f(x, y)
		if ix+1 > nx {
			nx = ix + 1
		}
		if iy+1 > ny {
			ny = iy + 1
		}
	})
	return nx, ny
}
