package quarkgl

import (
	"math"
	"testing"
)

const testSize = 21

func newTestTarget() *RGB565Target {
	return &RGB565Target{
		Buf:    make([]byte, testSize*testSize*2),
		Stride: testSize * 2,
		W:      testSize,
		H:      testSize,
	}
}

// plotCamera is the ortho Z-up camera the plot view uses.
func plotCamera() Camera {
	return Camera{
		Type:      CameraOrtho,
		Position:  V3(1, -1, 1),
		Up:        V3(0, 0, 1),
		OrthoSize: 1,
		Near:      -10,
		Far:       10,
	}
}

func TestRGB565PixelRoundTrip(t *testing.T) {
	tg := newTestTarget()
	for _, c := range []Color{RGB(0, 0, 0), RGB(255, 255, 255), RGB(255, 0, 0), RGB(0, 255, 0), RGB(0, 0, 255)} {
		tg.SetPixel(3, 4, c)
		if got := tg.Pixel(3, 4); got != c {
			t.Fatalf("Pixel() = %+v, want %+v", got, c)
		}
	}
	if got := tg.Pixel(-1, 0); got != (Color{}) {
		t.Fatalf("Pixel(out of range) = %+v, want zero", got)
	}
}

func TestColorOver(t *testing.T) {
	if got := RGB(10, 20, 30).Over(RGB(200, 200, 200)); got != RGB(10, 20, 30) {
		t.Fatalf("opaque Over() = %+v", got)
	}
	if got := RGBA(10, 20, 30, 0).Over(RGB(200, 100, 50)); got != RGB(200, 100, 50) {
		t.Fatalf("transparent Over() = %+v", got)
	}
	got := RGBA(255, 0, 0, 128).Over(RGB(0, 0, 0))
	if got.R != 128 || got.G != 0 || got.A != 0xFF {
		t.Fatalf("half Over() = %+v", got)
	}
}

func TestOrthoCameraCentersTarget(t *testing.T) {
	cam := plotCamera()
	mvp := Mat4Mul(cam.Projection(1), cam.View())
	p, ok := clipToNDC(Mat4MulV4(mvp, Vec4{W: 1}))
	if !ok {
		t.Fatalf("origin not projectable")
	}
	if abs32(p.X) > 1e-5 || abs32(p.Y) > 1e-5 {
		t.Fatalf("origin ndc = %+v, want center", p)
	}
	x, y := ndcToScreen(p, testSize, testSize)
	if x != testSize/2 || y != testSize/2 {
		t.Fatalf("origin screen = %d,%d", x, y)
	}
}

func TestDrawPoint3DFlat(t *testing.T) {
	tg := newTestTarget()
	r := NewRenderer(testSize, testSize, false)
	r.Mode = RenderPointFlat

	r.Begin(tg, plotCamera())
	r.DrawPoint3D(V3(0, 0, 0), 0.1, RGB(255, 0, 0))
	r.End()

	if got := tg.Pixel(testSize/2, testSize/2); got != RGB(255, 0, 0) {
		t.Fatalf("center = %+v, want red", got)
	}
	if got := tg.Pixel(0, 0); got != RGB(0, 0, 0) {
		t.Fatalf("corner = %+v, want clear color", got)
	}
	st := r.Stats()
	if st.Points != 1 || st.PointsCulled != 0 || st.PixelsWritten == 0 {
		t.Fatalf("Stats() = %+v", st)
	}
}

func TestDrawPoint3DBlendsAlpha(t *testing.T) {
	tg := newTestTarget()
	r := NewRenderer(testSize, testSize, false)
	r.Mode = RenderPointFlat

	r.Begin(tg, plotCamera())
	r.DrawPoint3D(V3(0, 0, 0), 0.1, RGBA(255, 0, 0, 125))
	r.End()

	got := tg.Pixel(testSize/2, testSize/2)
	if got.R < 100 || got.R > 160 {
		t.Fatalf("blended center = %+v, want about half red", got)
	}
}

func TestDrawPoint3DDepth(t *testing.T) {
	tg := newTestTarget()
	r := NewRenderer(testSize, testSize, true)
	r.Mode = RenderPointFlat

	r.Begin(tg, plotCamera())
	r.DrawPoint3D(V3(0.3, -0.3, 0.3), 0.1, RGB(0, 255, 0)) // nearer the eye
	r.DrawPoint3D(V3(0, 0, 0), 0.1, RGB(0, 0, 255))
	r.End()

	if got := tg.Pixel(testSize/2, testSize/2); got != RGB(0, 255, 0) {
		t.Fatalf("center = %+v, want the nearer point", got)
	}
}

func TestDrawPoint3DCulls(t *testing.T) {
	tg := newTestTarget()
	r := NewRenderer(testSize, testSize, false)

	r.Begin(tg, plotCamera())
	r.DrawPoint3D(V3f(math.NaN(), 0, 0), 0.1, RGB(255, 255, 255))
	r.DrawPoint3D(V3f(0, 0, math.Inf(-1)), 0.1, RGB(255, 255, 255))
	r.DrawPoint3D(V3(-20, 20, -20), 0.1, RGB(255, 255, 255)) // past Far
	r.DrawPoint3D(V3(0, 0, 5), 0.1, RGB(255, 255, 255))      // off screen
	r.End()

	st := r.Stats()
	if st.Points != 4 || st.PointsCulled != 4 || st.PixelsWritten != 0 {
		t.Fatalf("Stats() = %+v", st)
	}
}

func TestDrawLine3D(t *testing.T) {
	tg := newTestTarget()
	r := NewRenderer(testSize, testSize, false)

	r.Begin(tg, plotCamera())
	r.DrawLine3D(V3(0, 0, 0), V3(0, 0, 0.5), RGB(0, 0, 255))
	r.End()

	if got := tg.Pixel(testSize/2, testSize/2); got != RGB(0, 0, 255) {
		t.Fatalf("line start = %+v, want blue", got)
	}
	// +Z is screen up.
	if got := tg.Pixel(testSize/2, testSize/2-3); got != RGB(0, 0, 255) {
		t.Fatalf("line above center = %+v, want blue", got)
	}
	if st := r.Stats(); st.Lines != 1 || st.PixelsWritten < 4 {
		t.Fatalf("Stats() = %+v", st)
	}
}

func TestDrawOutsideFrameIgnored(t *testing.T) {
	tg := newTestTarget()
	r := NewRenderer(testSize, testSize, false)
	r.DrawPoint3D(V3(0, 0, 0), 0.1, RGB(255, 0, 0))
	r.DrawLine3D(V3(0, 0, 0), V3(1, 0, 0), RGB(255, 0, 0))
	if st := r.Stats(); st != (Stats{}) {
		t.Fatalf("Stats() = %+v, want zero", st)
	}
	if got := tg.Pixel(testSize/2, testSize/2); got != (RGB(0, 0, 0)) {
		t.Fatalf("pixel touched outside a frame: %+v", got)
	}
}
