package viz

import (
	"fmt"

	"tangentviz/hal"
	"tangentviz/surface"
)

// Phase is the visualizer lifecycle state.
type Phase uint8

const (
	PhaseRunning Phase = iota
	// PhaseResetting lasts for the step that restores the plane.
	PhaseResetting
	// PhaseTerminated is absorbing.
	PhaseTerminated
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseResetting:
		return "resetting"
	case PhaseTerminated:
		return "terminated"
	}
	return fmt.Sprintf("phase(%d)", uint8(p))
}

// Transition returns the phase entered from p given this frame's controls.
// Close wins over Reset.
func Transition(p Phase, c Controls) Phase {
	switch {
	case p == PhaseTerminated, c.Close:
		return PhaseTerminated
	case c.Reset:
		return PhaseResetting
	}
	return PhaseRunning
}

// Bindings maps logical controls to keys.
type Bindings struct {
	SeekXInc, SeekXDec hal.KeyCode
	SeekYInc, SeekYDec hal.KeyCode
	YawInc, YawDec     hal.KeyCode
	Reset              hal.KeyCode
	Close              hal.KeyCode
}

// DefaultBindings uses the numeric keypad: 6/4 move x, 8/2 move y and 9/7
// turn the camera. R resets the plane and Escape closes.
func DefaultBindings() Bindings {
	return Bindings{
		SeekXInc: hal.KeyKP6, SeekXDec: hal.KeyKP4,
		SeekYInc: hal.KeyKP8, SeekYDec: hal.KeyKP2,
		YawInc: hal.KeyKP9, YawDec: hal.KeyKP7,
		Reset: hal.KeyR,
		Close: hal.KeyEscape,
	}
}

// KeyState reports held keys. hal.Keyboard satisfies it.
type KeyState interface {
	Down(code hal.KeyCode) bool
}

// Controls is one frame of input. Axis values are -1, 0 or +1.
type Controls struct {
	SeekX, SeekY, Yaw int
	Reset             bool
	Close             bool
}

// ReadControls samples kb through b. closing is the window close signal.
// Opposite keys held together cancel.
func ReadControls(kb KeyState, closing bool, b Bindings) Controls {
	c := Controls{Close: closing}
	if kb == nil {
		return c
	}
	axis := func(inc, dec hal.KeyCode) int {
		v := 0
		if kb.Down(inc) {
			v++
		}
		if kb.Down(dec) {
			v--
		}
		return v
	}
	c.SeekX = axis(b.SeekXInc, b.SeekXDec)
	c.SeekY = axis(b.SeekYInc, b.SeekYDec)
	c.Yaw = axis(b.YawInc, b.YawDec)
	c.Reset = kb.Down(b.Reset)
	c.Close = c.Close || kb.Down(b.Close)
	return c
}

// State is the per-frame simulation state.
type State struct {
	SeekX, SeekY float64
	Yaw          float64
	Plane        surface.Plane
	Phase        Phase

	multiplier float64
	normal     surface.Vec3
}

// NewState returns the initial state: origin seek point, zero yaw and the
// plane through the origin with cfg.Normal.
func NewState(cfg Config) State {
	return State{
		Plane:      surface.NewPlane(cfg.Normal),
		Phase:      PhaseRunning,
		multiplier: cfg.Multiplier,
		normal:     cfg.Normal,
	}
}

// Step applies one frame of controls and returns the phase the frame
// entered. Seek and yaw are not clamped. A reset restores the plane and
// leaves the state Running again. Once terminated the state no longer
// changes.
func (s *State) Step(c Controls) Phase {
	entered := Transition(s.Phase, c)
	s.Phase = entered
	if entered == PhaseTerminated {
		return entered
	}
	s.SeekX += float64(c.SeekX) * s.multiplier
	s.SeekY += float64(c.SeekY) * s.multiplier
	s.Yaw += float64(c.Yaw) * s.multiplier

	if entered == PhaseResetting {
		s.Plane.Reset(s.normal)
		s.Phase = PhaseRunning
	}
	return entered
}
