package quarkgl

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// PixelReader is implemented by targets that can read pixels back. The
// renderer uses it to blend translucent colors; without it alpha is ignored.
type PixelReader interface {
	Pixel(x, y int) Color
}

// RenderMode selects how points are rasterized.
type RenderMode uint8

const (
	// RenderPointFlat fills each point disc with its color.
	RenderPointFlat RenderMode = iota
	// RenderPointShaded darkens the disc towards its rim so points read as
	// small spheres.
	RenderPointShaded
)
