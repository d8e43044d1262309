package peripherals

import (
	"github.com/jetsetilly/test64/gui"
)

// joystick switch bits as read on the control port, active low
const (
	stickUp     = 0x01
	stickDown   = 0x02
	stickLeft   = 0x04
	stickRight  = 0x08
	stickButton = 0x10
)

type Stick struct {
	matrix Matrix

	// which control port the stick is plugged into
	port int

	// current switch state, active low
	state uint8
}

func NewStick(matrix Matrix, port int) *Stick {
	st := &Stick{
		matrix: matrix,
		port:   port,
	}
	st.Reset()
	return st
}

func (st *Stick) Reset() {
	st.state = 0xff
	st.matrix.SetJoystick(st.port, st.state)
}

func (st *Stick) set(bit uint8, closed bool) {
	if closed {
		st.state &^= bit
	} else {
		st.state |= bit
	}
	st.matrix.SetJoystick(st.port, st.state)
}

func (st *Stick) Update(inp gui.Input) {
	switch inp.Action {
	case gui.StickLeft:
		if inp.Data.(bool) {
			// unset the opposite direction first (applies to all other
			// directions below)
			st.set(stickRight, false)
		}
		st.set(stickLeft, inp.Data.(bool))
	case gui.StickRight:
		if inp.Data.(bool) {
			st.set(stickLeft, false)
		}
		st.set(stickRight, inp.Data.(bool))
	case gui.StickUp:
		if inp.Data.(bool) {
			st.set(stickDown, false)
		}
		st.set(stickUp, inp.Data.(bool))
	case gui.StickDown:
		if inp.Data.(bool) {
			st.set(stickUp, false)
		}
		st.set(stickDown, inp.Data.(bool))
	case gui.StickButton:
		st.set(stickButton, inp.Data.(bool))
	}
}
