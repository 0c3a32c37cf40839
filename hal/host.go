//go:build !tinygo

package hal

import (
	"github.com/golang/glog"
)

// HostConfig sizes the host framebuffer and its window.
type HostConfig struct {
	Title string
	// Width and Height are framebuffer pixels.
	Width, Height int
	// Scale is window pixels per framebuffer pixel.
	Scale int
	// TPS is the frame rate limit.
	TPS int
}

func (c HostConfig) withDefaults() HostConfig {
	if c.Width <= 0 {
		c.Width = 300
	}
	if c.Height <= 0 {
		c.Height = 300
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = 10
	}
	return c
}

type hostHAL struct {
	logger  hostLogger
	fb      *hostFramebuffer
	kbd     *hostKeyboard
	closing bool
}

// New returns a host HAL implementation.
func New(cfg HostConfig) HAL {
	return newHostHAL(cfg.withDefaults())
}

func newHostHAL(cfg HostConfig) *hostHAL {
	return &hostHAL{
		fb:  newHostFramebuffer(cfg.Width, cfg.Height),
		kbd: newHostKeyboard(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }
func (h *hostHAL) Input() Input     { return hostInput{h: h} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	h *hostHAL
}

func (in hostInput) Keyboard() Keyboard    { return in.h.kbd }
func (in hostInput) CloseRequested() bool { return in.h.closing }

// hostLogger forwards lines to glog, so -logtostderr, -log_dir and -v apply.
type hostLogger struct{}

func (hostLogger) WriteLineString(s string) {
	glog.InfoDepth(1, s)
}

func (hostLogger) WriteLineBytes(b []byte) {
	glog.InfoDepth(1, string(b))
}
