//go:build !tinygo

// Command vizshot renders one visualizer frame offscreen and writes it as PNG.
//
// The seek point and yaw are reached by replaying held keys, so the image
// matches what the window shows after the same key presses.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/golang/glog"

	"tangentviz/hal"
	"tangentviz/quarkgl"
	"tangentviz/viz"
)

const defaultOutPath = "tangentviz.png"

func main() {
	cfg := viz.DefaultConfig()
	var (
		out   = flag.String("o", defaultOutPath, "Output PNG path.")
		size  = flag.Int("size", cfg.WindowWidth, "Image width and height in pixels.")
		seekX = flag.Float64("seekx", 0, "Seek point x.")
		seekY = flag.Float64("seeky", 0, "Seek point y.")
		yaw   = flag.Float64("yaw", 0, "Camera yaw in radians.")
	)
	flag.BoolVar(&cfg.Derivative, "derivative", false, "Also draw the surface's total derivative.")
	flag.Parse()
	defer glog.Flush()

	if err := run(cfg, *out, *size, *seekX, *seekY, *yaw); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg viz.Config, out string, size int, seekX, seekY, yaw float64) error {
	if size <= 0 {
		return fmt.Errorf("invalid size %d", size)
	}
	t := &quarkgl.RGB565Target{
		Buf:    make([]byte, size*size*2),
		Stride: size * 2,
		W:      size,
		H:      size,
	}
	cv := viz.NewRenderCanvas(t)
	d := viz.NewDriver(cfg, nil)

	script := newReplay(cfg, seekX, seekY, yaw)
	for !script.done() {
		if err := d.Frame(script, false, nil); err != nil {
			return fmt.Errorf("replay frame: %w", err)
		}
		script.advance()
	}
	if err := d.Frame(nil, false, cv); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}

	s := d.State()
	glog.Infof("vizshot: seek (%.2f, %.2f) yaw %.2f, %d points", s.SeekX, s.SeekY, s.Yaw, d.Stats().Points)
	return writePNG(out, t)
}

// replay holds the keys that move the state towards a target, one
// multiplier per frame and axis.
type replay struct {
	b                 viz.Bindings
	seekX, seekY, yaw int
}

func newReplay(cfg viz.Config, seekX, seekY, yaw float64) *replay {
	steps := func(v float64) int {
		if cfg.Multiplier == 0 {
			return 0
		}
		return int(math.Round(v / cfg.Multiplier))
	}
	return &replay{b: cfg.Bindings, seekX: steps(seekX), seekY: steps(seekY), yaw: steps(yaw)}
}

func (r *replay) done() bool { return r.seekX == 0 && r.seekY == 0 && r.yaw == 0 }

func (r *replay) Down(code hal.KeyCode) bool {
	switch code {
	case r.b.SeekXInc:
		return r.seekX > 0
	case r.b.SeekXDec:
		return r.seekX < 0
	case r.b.SeekYInc:
		return r.seekY > 0
	case r.b.SeekYDec:
		return r.seekY < 0
	case r.b.YawInc:
		return r.yaw > 0
	case r.b.YawDec:
		return r.yaw < 0
	}
	return false
}

func (r *replay) advance() {
	toward := func(v int) int {
		switch {
		case v > 0:
			return v - 1
		case v < 0:
			return v + 1
		}
		return 0
	}
	r.seekX, r.seekY, r.yaw = toward(r.seekX), toward(r.seekY), toward(r.yaw)
}

func writePNG(path string, t *quarkgl.RGB565Target) error {
	img := image.NewRGBA(image.Rect(0, 0, t.W, t.H))
	for y := 0; y < t.H; y++ {
		for x := 0; x < t.W; x++ {
			c := t.Pixel(x, y)
			img.SetRGBA(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %q: %w", path, err)
	}
	return nil
}
