package app

import (
	"fmt"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"

	"tangentviz/hal"
	"tangentviz/viz"
)

var hudColor = color.RGBA{R: 40, G: 40, B: 40, A: 255}

// hud writes status lines into the top-left corner of the framebuffer.
type hud struct {
	d          *fbDisplayer
	font       tinyfont.Fonter
	lineHeight int16
}

func newHUD(fb hal.Framebuffer) *hud {
	font := &tinyfont.Org01
	lh := int16(font.GetYAdvance())
	if lh <= 0 {
		lh = 8
	}
	return &hud{d: &fbDisplayer{fb: fb}, font: font, lineHeight: lh}
}

func (h *hud) draw(lines []string) {
	if h == nil {
		return
	}
	for i, s := range lines {
		y := int16(i+1)*h.lineHeight + 2
		tinyfont.WriteLine(h.d, h.font, 4, y, s, hudColor)
	}
}

func hudLines(d *viz.Driver) []string {
	s := d.State()
	st := d.Stats()
	p := d.Surface()
	return []string{
		p.String(),
		fmt.Sprintf("seek %.2f %.2f  z %.3f", s.SeekX, s.SeekY, p.Eval(s.SeekX, s.SeekY)),
		fmt.Sprintf("yaw %.2f  %s", s.Yaw, s.Phase),
		fmt.Sprintf("frame %d  points %d", st.Frames, st.Points),
	}
}

var _ drivers.Displayer = (*fbDisplayer)(nil)

// fbDisplayer adapts an RGB565 framebuffer to tinyfont.
type fbDisplayer struct {
	fb hal.Framebuffer
}

func (d *fbDisplayer) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplayer) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	w, h := d.fb.Width(), d.fb.Height()
	if x < 0 || y < 0 || int(x) >= w || int(y) >= h {
		return
	}
	off := int(y)*d.fb.StrideBytes() + int(x)*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	p := rgb565From888(c.R, c.G, c.B)
	buf[off] = byte(p)
	buf[off+1] = byte(p >> 8)
}

func (d *fbDisplayer) Display() error { return nil }

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}
