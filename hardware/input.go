package hardware

import (
	"github.com/jetsetilly/test64/gui"
	"github.com/jetsetilly/test64/logger"
)

func (con *Console) handleInput() {
	var drained bool
	for !drained {
		select {
		default:
			drained = true
		case inp := <-con.g.UserInput:
			switch inp.Action {
			case gui.MatrixKey:
				con.keyboard.Update(inp)

			case gui.StickLeft, gui.StickUp, gui.StickRight, gui.StickDown, gui.StickButton:
				con.stick.Update(inp)

			case gui.Restore:
				// the restore key is wired directly to the processor's
				// non-maskable interrupt line
				con.MC.SetNMI(inp.Data.(bool))

			case gui.ResetMachine:
				if inp.Data.(bool) {
					logger.Log(logger.Allow, "console", "reset key pressed")
					con.Reset(true)
				}
			}
		}
	}
}
