// Package colormap turns sampled surface values into point colors.
//
// Each sample gets three blend factors (height, x position, y position),
// each fading one primary from full strength towards black, and the three
// results are summed channel-wise.
package colormap

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"tangentviz/grid"
	"tangentviz/quarkgl"
)

// PointAlpha is the alpha of every mapped point color.
const PointAlpha = 125

var (
	Red   = quarkgl.RGB(230, 41, 55)
	Green = quarkgl.RGB(0, 228, 48)
	Blue  = quarkgl.RGB(0, 121, 241)
)

// Range is the closed interval of values seen in a buffer.
type Range struct {
	Min, Max float64
}

// ScanRange returns the min and max of values. NaN entries are skipped;
// an empty (or all-NaN) slice yields the zero Range.
func ScanRange(values []float64) Range {
	if len(values) == 0 {
		return Range{}
	}
	lo, hi := floats.Min(values), floats.Max(values)
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return scanFinite(values)
	}
	return Range{Min: lo, Max: hi}
}

func scanFinite(values []float64) Range {
	var r Range
	seen := false
	for _, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if !seen {
			r = Range{Min: v, Max: v}
			seen = true
			continue
		}
		r.Min = math.Min(r.Min, v)
		r.Max = math.Max(r.Max, v)
	}
	return r
}

// RemapToRange maps v linearly from [inMin, inMax] to [outMin, outMax]. The
// result is not clamped. A degenerate input range maps everything to outMin.
func RemapToRange(inMin, inMax, outMin, outMax, v float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

// Mix returns base*t + zeroed*(1-t) per channel, saturated to 0..255.
// Alpha is opaque.
func Mix(base, zeroed quarkgl.Color, t float64) quarkgl.Color {
	ch := func(a, b uint8) uint8 {
		return saturate(float64(a)*t + float64(b)*(1-t))
	}
	return quarkgl.Color{
		R: ch(base.R, zeroed.R),
		G: ch(base.G, zeroed.G),
		B: ch(base.B, zeroed.B),
		A: 0xFF,
	}
}

func saturate(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

func addSat(a, b uint8) uint8 {
	if s := uint16(a) + uint16(b); s < 255 {
		return uint8(s)
	}
	return 255
}

// Mapper colors samples of one draw pass.
type Mapper struct {
	Range  Range
	Domain grid.Domain
}

// Factors returns the red, green and blue blend factors for a sample v at
// (x, y): v within Range, x within [BeginX, EndX], y within [BeginY, EndY].
func (m Mapper) Factors(x, y, v float64) (fr, fg, fb float64) {
	fr = RemapToRange(m.Range.Min, m.Range.Max, 0, 1, v)
	fg = RemapToRange(m.Domain.BeginX, m.Domain.EndX, 0, 1, x)
	fb = RemapToRange(m.Domain.BeginY, m.Domain.EndY, 0, 1, y)
	return fr, fg, fb
}

// Color returns the point color for sample v at (x, y).
func (m Mapper) Color(x, y, v float64) quarkgl.Color {
	fr, fg, fb := m.Factors(x, y, v)
	r := Mix(Red, quarkgl.RGB(0, Red.G, Red.B), fr)
	g := Mix(Green, quarkgl.RGB(Green.R, 0, Green.B), fg)
	b := Mix(Blue, quarkgl.RGB(Blue.R, Blue.G, 0), fb)
	return quarkgl.Color{
		R: addSat(addSat(r.R, g.R), b.R),
		G: addSat(addSat(r.G, g.G), b.G),
		B: addSat(addSat(r.B, g.B), b.B),
		A: PointAlpha,
	}
}
