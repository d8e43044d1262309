package peripherals

import (
	"github.com/jetsetilly/test64/gui"
)

type Keyboard struct {
	matrix Matrix
}

func NewKeyboard(matrix Matrix) *Keyboard {
	return &Keyboard{
		matrix: matrix,
	}
}

func (kb *Keyboard) Update(inp gui.Input) {
	if inp.Action != gui.MatrixKey {
		return
	}
	kp, ok := inp.Data.(gui.KeyPress)
	if !ok {
		return
	}
	kb.matrix.KeyEvent(kp.Row, kp.Col, kp.Down)
}
