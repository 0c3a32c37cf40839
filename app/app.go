package app

import (
	"fmt"

	"tangentviz/hal"
	"tangentviz/internal/buildinfo"
	"tangentviz/quarkgl"
	"tangentviz/viz"
)

// Config selects the visualizer setup.
type Config struct {
	Viz viz.Config
	// HUD shows the text overlay at start. F1 toggles it.
	HUD bool
}

// DefaultConfig is the stock visualizer with the HUD on.
func DefaultConfig() Config {
	return Config{Viz: viz.DefaultConfig(), HUD: true}
}

type system struct {
	h   hal.HAL
	log hal.Logger
	drv *viz.Driver

	fb      hal.Framebuffer
	canvas  *viz.RenderCanvas
	hud     *hud
	showHUD bool
}

// New initializes the visualizer with default config and returns its frame step.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, DefaultConfig())
}

// NewWithConfig initializes the visualizer and returns its frame step.
func NewWithConfig(h hal.HAL, cfg Config) func() error {
	return newSystem(h, cfg).step
}

func newSystem(h hal.HAL, cfg Config) *system {
	s := &system{
		h:       h,
		log:     h.Logger(),
		drv:     viz.NewDriver(cfg.Viz, h.Logger()),
		showHUD: cfg.HUD,
	}
	if d := h.Display(); d != nil {
		s.fb = d.Framebuffer()
	}
	if s.fb != nil && s.fb.Format() == hal.PixelFormatRGB565 {
		s.canvas = viz.NewRenderCanvas(&quarkgl.RGB565Target{
			Buf:    s.fb.Buffer(),
			Stride: s.fb.StrideBytes(),
			W:      s.fb.Width(),
			H:      s.fb.Height(),
		})
		s.hud = newHUD(s.fb)
	}
	if s.log != nil {
		w, hh := 0, 0
		if s.fb != nil {
			w, hh = s.fb.Width(), s.fb.Height()
		}
		s.log.WriteLineString(fmt.Sprintf("app: tangentviz %s on a %dx%d framebuffer", buildinfo.Short(), w, hh))
	}
	return s
}

func (s *system) step() error {
	var kb hal.Keyboard
	closing := false
	if in := s.h.Input(); in != nil {
		kb = in.Keyboard()
		closing = in.CloseRequested()
	}
	s.drainEvents(kb)

	var cv viz.Canvas
	if s.canvas != nil {
		cv = s.canvas
	}
	if err := s.drv.Frame(kb, closing, cv); err != nil {
		return err
	}
	if s.canvas == nil {
		return nil
	}
	if s.showHUD {
		s.hud.draw(hudLines(s.drv))
	}
	return s.fb.Present()
}

// drainEvents consumes pending key edges. F1 toggles the HUD.
func (s *system) drainEvents(kb hal.Keyboard) {
	if kb == nil {
		return
	}
	ch := kb.Events()
	for {
		select {
		case ev := <-ch:
			if ev.Press && ev.Code == hal.KeyF1 {
				s.showHUD = !s.showHUD
			}
		default:
			return
		}
	}
}
