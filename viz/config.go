// Package viz drives the tangent-plane visualizer frame by frame.
//
// A Driver owns the simulation State (seek point, yaw, tangent plane and
// phase) and the shared height-map buffer. Each Frame reads the held keys,
// advances the State, refits the plane to the surface partials at the seek
// point and issues draw calls to a Canvas.
package viz

import (
	"tangentviz/surface"
)

// Config holds the visualizer tunables.
type Config struct {
	WindowWidth, WindowHeight int
	// Resolution is the height-map buffer size on each axis.
	Resolution int
	// Step is the lattice spacing on both axes.
	Step float64
	// Multiplier is the per-frame change of a held key.
	Multiplier float64
	// DomainBegin and DomainEnd bound the surface pass on both axes.
	DomainBegin, DomainEnd float64
	// PatchScale shrinks the domain for the tangent plane pass.
	PatchScale  float64
	PointRadius float64
	// CameraHeight is the fixed z of the orbiting eye.
	CameraHeight float64
	// OrthoSize is half the visible height in world units.
	OrthoSize float64
	FPS       int

	Surface surface.Polynomial
	// Normal is the plane normal restored by a reset.
	Normal surface.Vec3
	// Derivative adds a pass for the surface's total derivative.
	Derivative bool

	Bindings Bindings
}

// DefaultConfig returns the stock window: z = -x³ + x² - y² sampled 50×50
// over [-0.8, 0.8) in steps of 0.04, viewed at 10 frames per second.
func DefaultConfig() Config {
	const resolution = 50
	return Config{
		WindowWidth:  600,
		WindowHeight: 600,
		Resolution:   resolution,
		Step:         2.0 / resolution,
		Multiplier:   0.1,
		DomainBegin:  -0.8,
		DomainEnd:    0.8,
		PatchScale:   0.25,
		PointRadius:  0.01,
		CameraHeight: 1,
		OrthoSize:    1,
		FPS:          10,
		Surface:      surface.NewPolynomial(-1, 1, 0, 0, 0, -1, 0, 0),
		Normal:       surface.UnitZ,
		Bindings:     DefaultBindings(),
	}
}
