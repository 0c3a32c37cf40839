package colormap

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"tangentviz/grid"
	"tangentviz/quarkgl"
)

func TestRemapToRange(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"midpoint", 5, 0.5},
		{"min", 0, 0},
		{"max", 10, 1},
		{"below", -5, -0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RemapToRange(0, 10, 0, 1, tt.v), 1e-12)
		})
	}
}

func TestRemapToRangeDegenerate(t *testing.T) {
	assert.Equal(t, 0.25, RemapToRange(3, 3, 0.25, 1, 3))
	assert.Equal(t, 0.25, RemapToRange(3, 3, 0.25, 1, 100))
}

func TestScanRange(t *testing.T) {
	assert.Equal(t, Range{Min: -2, Max: 7}, ScanRange([]float64{1, -2, 7, 0}))
	assert.Equal(t, Range{}, ScanRange(nil))
	assert.Equal(t, Range{Min: -1, Max: 3}, ScanRange([]float64{math.NaN(), 3, -1}))
}

func TestMixEndpoints(t *testing.T) {
	zeroed := quarkgl.RGB(0, Red.G, Red.B)
	assert.Equal(t, Red, Mix(Red, zeroed, 1))
	assert.Equal(t, zeroed, Mix(Red, zeroed, 0))

	half := Mix(Red, zeroed, 0.5)
	assert.Equal(t, uint8(115), half.R)
	assert.Equal(t, Red.G, half.G)
}

func TestMixSaturates(t *testing.T) {
	assert.Equal(t, uint8(255), Mix(Red, quarkgl.RGB(0, 0, 0), 4).R)
	assert.Equal(t, uint8(0), Mix(Red, quarkgl.RGB(0, 0, 0), -1).R)
	assert.Equal(t, uint8(0), Mix(Red, quarkgl.RGB(0, 0, 0), math.NaN()).R)
}

func TestMapperFactors(t *testing.T) {
	m := Mapper{Range: Range{Min: -1, Max: 1}, Domain: grid.Square(-0.8, 0.8, 0.04)}

	fr, fg, fb := m.Factors(-0.8, 0.8, 1)
	assert.InDelta(t, 1, fr, 1e-12)
	assert.InDelta(t, 0, fg, 1e-12)
	assert.InDelta(t, 1, fb, 1e-12)

	fr, fg, fb = m.Factors(0, 0, 0)
	assert.InDelta(t, 0.5, fr, 1e-12)
	assert.InDelta(t, 0.5, fg, 1e-12)
	assert.InDelta(t, 0.5, fb, 1e-12)
}

func TestMapperColor(t *testing.T) {
	m := Mapper{Range: Range{Min: 0, Max: 1}, Domain: grid.Square(0, 1, 0.1)}

	// All factors zero: each primary loses its own channel.
	got := m.Color(0, 0, 0)
	want := quarkgl.RGBA(0+0+0, 41+0+121, 55+48+0, PointAlpha)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Color() mismatch (-want +got):\n%s", diff)
	}

	// All factors one: full primaries summed and saturated.
	got = m.Color(1, 1, 1)
	want = quarkgl.RGBA(230, 255, 255, PointAlpha)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Color() mismatch (-want +got):\n%s", diff)
	}
}

func TestMapperColorDegenerateRange(t *testing.T) {
	m := Mapper{Range: Range{Min: 2, Max: 2}, Domain: grid.Square(0, 1, 0.1)}
	assert.Equal(t, m.Color(0, 0, 0), m.Color(0, 0, 2))
	assert.Equal(t, uint8(PointAlpha), m.Color(0.3, 0.6, 2).A)
}
