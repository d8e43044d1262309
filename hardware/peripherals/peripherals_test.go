package peripherals_test

import (
	"testing"

	"github.com/jetsetilly/test64/gui"
	"github.com/jetsetilly/test64/hardware/peripherals"
	"github.com/jetsetilly/test64/test"
)

type keyEvent struct {
	row  int
	col  int
	down bool
}

type mockMatrix struct {
	joy  map[int]uint8
	keys []keyEvent
}

func newMockMatrix() *mockMatrix {
	return &mockMatrix{
		joy: make(map[int]uint8),
	}
}

func (m *mockMatrix) KeyEvent(row int, col int, down bool) {
	m.keys = append(m.keys, keyEvent{row: row, col: col, down: down})
}

func (m *mockMatrix) SetJoystick(port int, state uint8) {
	m.joy[port] = state
}

func TestStickDirections(t *testing.T) {
	matrix := newMockMatrix()
	st := peripherals.NewStick(matrix, 2)
	test.ExpectEquality(t, matrix.joy[2], 0xff)

	st.Update(gui.Input{Action: gui.StickLeft, Data: true})
	test.ExpectEquality(t, matrix.joy[2], 0xfb)

	st.Update(gui.Input{Action: gui.StickUp, Data: true})
	test.ExpectEquality(t, matrix.joy[2], 0xfa)

	st.Update(gui.Input{Action: gui.StickLeft, Data: false})
	test.ExpectEquality(t, matrix.joy[2], 0xfe)

	st.Update(gui.Input{Action: gui.StickUp, Data: false})
	test.ExpectEquality(t, matrix.joy[2], 0xff)
}

func TestStickOppositeRelease(t *testing.T) {
	matrix := newMockMatrix()
	st := peripherals.NewStick(matrix, 2)

	// pressing a direction releases the opposite direction. protects the
	// emulation from impossible switch combinations
	st.Update(gui.Input{Action: gui.StickLeft, Data: true})
	st.Update(gui.Input{Action: gui.StickRight, Data: true})
	test.ExpectEquality(t, matrix.joy[2], 0xf7)

	st.Update(gui.Input{Action: gui.StickDown, Data: true})
	st.Update(gui.Input{Action: gui.StickUp, Data: true})
	test.ExpectEquality(t, matrix.joy[2], 0xf6)
}

func TestStickButton(t *testing.T) {
	matrix := newMockMatrix()
	st := peripherals.NewStick(matrix, 1)

	st.Update(gui.Input{Action: gui.StickButton, Data: true})
	test.ExpectEquality(t, matrix.joy[1], 0xef)

	st.Update(gui.Input{Action: gui.StickButton, Data: false})
	test.ExpectEquality(t, matrix.joy[1], 0xff)
}

func TestKeyboard(t *testing.T) {
	matrix := newMockMatrix()
	kb := peripherals.NewKeyboard(matrix)

	kb.Update(gui.Input{Action: gui.MatrixKey, Data: gui.KeyPress{Row: 1, Col: 2, Down: true}})
	kb.Update(gui.Input{Action: gui.MatrixKey, Data: gui.KeyPress{Row: 1, Col: 2, Down: false}})

	// events that are not matrix keys are ignored
	kb.Update(gui.Input{Action: gui.StickLeft, Data: true})

	test.DemandEquality(t, len(matrix.keys), 2)
	test.ExpectEquality(t, matrix.keys[0], keyEvent{row: 1, col: 2, down: true})
	test.ExpectEquality(t, matrix.keys[1], keyEvent{row: 1, col: 2, down: false})
}
