package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// ErrTerminated is returned by a frame step to end the run cleanly.
var ErrTerminated = errors.New("terminated")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyF1
	KeyR
	KeyKP2
	KeyKP4
	KeyKP6
	KeyKP7
	KeyKP8
	KeyKP9
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keyboard provides key edges as events and the held state of each key.
type Keyboard interface {
	Events() <-chan KeyEvent
	Down(code KeyCode) bool
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	// CloseRequested reports whether the user asked to close the window.
	CloseRequested() bool
}

// HAL is the only contact point between the visualizer and the host.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
}
