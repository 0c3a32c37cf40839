// Package grid samples scalar fields over a rectangular lattice into a
// reusable height-map buffer.
package grid

// Buffer is a fixed-size W×H height map backed by one contiguous slice.
//
// Cell (i, j) holds the sample at the i-th x step and j-th y step. The
// buffer is allocated once and overwritten in place by every Sample call.
type Buffer struct {
	w, h int
	vals []float64
}

// NewBuffer allocates a zeroed w×h buffer.
func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Buffer{w: w, h: h, vals: make([]float64, w*h)}
}

func (b *Buffer) Width() int  { return b.w }
func (b *Buffer) Height() int { return b.h }

// Values exposes the backing slice, including cells a shorter pass left
// untouched.
func (b *Buffer) Values() []float64 { return b.vals }

func (b *Buffer) index(i, j int) int { return i*b.h + j }

// At returns cell (i, j). Out-of-range indices return 0.
func (b *Buffer) At(i, j int) float64 {
	if i < 0 || j < 0 || i >= b.w || j >= b.h {
		return 0
	}
	return b.vals[b.index(i, j)]
}

// Set writes cell (i, j). Out-of-range indices are ignored.
func (b *Buffer) Set(i, j int, v float64) {
	if i < 0 || j < 0 || i >= b.w || j >= b.h {
		return
	}
	b.vals[b.index(i, j)] = v
}

// Fill sets every cell to v.
func (b *Buffer) Fill(v float64) {
	for i := range b.vals {
		b.vals[i] = v
	}
}
