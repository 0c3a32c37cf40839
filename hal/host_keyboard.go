//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hostKeys maps the keys the visualizer reads to ebiten keys.
var hostKeys = map[KeyCode]ebiten.Key{
	KeyUp:     ebiten.KeyArrowUp,
	KeyDown:   ebiten.KeyArrowDown,
	KeyLeft:   ebiten.KeyArrowLeft,
	KeyRight:  ebiten.KeyArrowRight,
	KeyEnter:  ebiten.KeyEnter,
	KeyEscape: ebiten.KeyEscape,
	KeyF1:     ebiten.KeyF1,
	KeyR:      ebiten.KeyR,
	KeyKP2:    ebiten.KeyNumpad2,
	KeyKP4:    ebiten.KeyNumpad4,
	KeyKP6:    ebiten.KeyNumpad6,
	KeyKP7:    ebiten.KeyNumpad7,
	KeyKP8:    ebiten.KeyNumpad8,
	KeyKP9:    ebiten.KeyNumpad9,
}

type hostKeyboard struct {
	ch   chan KeyEvent
	down map[KeyCode]bool
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{
		ch:   make(chan KeyEvent, 64),
		down: make(map[KeyCode]bool, len(hostKeys)),
	}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

// Down reports whether code was held at the last poll.
func (k *hostKeyboard) Down(code KeyCode) bool { return k.down[code] }

// poll runs on the ebiten update goroutine before each frame step.
func (k *hostKeyboard) poll() {
	emit := func(code KeyCode, press bool) {
		select {
		case k.ch <- KeyEvent{Code: code, Press: press}:
		default:
		}
	}

	for code, key := range hostKeys {
		if inpututil.IsKeyJustPressed(key) {
			emit(code, true)
		}
		if inpututil.IsKeyJustReleased(key) {
			emit(code, false)
		}
		k.down[code] = ebiten.IsKeyPressed(key)
	}
}
