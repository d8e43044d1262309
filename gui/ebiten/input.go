package ebiten

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	input "github.com/quasilyte/ebitengine-input"

	"github.com/jetsetilly/test64/gui"
)

// the joystick is handled through the input system so that gamepads and
// keyboard both work without further mapping
const (
	actionStickLeft = input.Action(iota)
	actionStickUp
	actionStickRight
	actionStickDown
	actionStickButton
)

func (eg *guiEbiten) initialiseInput() {
	keymap := input.Keymap{
		actionStickLeft:   {input.KeyGamepadLeft, input.KeyLeft},
		actionStickUp:     {input.KeyGamepadUp, input.KeyUp},
		actionStickRight:  {input.KeyGamepadRight, input.KeyRight},
		actionStickDown:   {input.KeyGamepadDown, input.KeyDown},
		actionStickButton: {input.KeyGamepadA, input.KeyControlRight},
	}
	eg.inputHandler = eg.inputSystem.NewHandler(uint8(0), keymap)
}

func (eg *guiEbiten) send(inp gui.Input) {
	select {
	case eg.g.UserInput <- inp:
	default:
	}
}

func (eg *guiEbiten) inputStick() {
	eg.inputSystem.Update()

	actions := []input.Action{
		actionStickLeft, actionStickUp, actionStickRight, actionStickDown,
		actionStickButton,
	}
	guiActions := []gui.Action{
		gui.StickLeft, gui.StickUp, gui.StickRight, gui.StickDown,
		gui.StickButton,
	}

	for i, a := range actions {
		if eg.inputHandler.ActionIsJustPressed(a) {
			eg.send(gui.Input{Action: guiActions[i], Data: true})
		}
		if eg.inputHandler.ActionIsJustReleased(a) {
			eg.send(gui.Input{Action: guiActions[i], Data: false})
		}
	}
}

// positions in the keyboard matrix for the keys we can sensibly map from a
// modern keyboard. row and column as wired on the real machine
var keymatrix = map[ebiten.Key]gui.KeyPress{
	ebiten.KeyBackspace: {Row: 0, Col: 0},
	ebiten.KeyEnter:     {Row: 0, Col: 1},
	ebiten.KeyF7:        {Row: 0, Col: 3},
	ebiten.KeyF1:        {Row: 0, Col: 4},
	ebiten.KeyF3:        {Row: 0, Col: 5},
	ebiten.KeyF5:        {Row: 0, Col: 6},

	ebiten.KeyDigit3: {Row: 1, Col: 0},
	ebiten.KeyW:      {Row: 1, Col: 1},
	ebiten.KeyA:      {Row: 1, Col: 2},
	ebiten.KeyDigit4: {Row: 1, Col: 3},
	ebiten.KeyZ:      {Row: 1, Col: 4},
	ebiten.KeyS:      {Row: 1, Col: 5},
	ebiten.KeyE:      {Row: 1, Col: 6},
	ebiten.KeyShift:  {Row: 1, Col: 7},

	ebiten.KeyDigit5: {Row: 2, Col: 0},
	ebiten.KeyR:      {Row: 2, Col: 1},
	ebiten.KeyD:      {Row: 2, Col: 2},
	ebiten.KeyDigit6: {Row: 2, Col: 3},
	ebiten.KeyC:      {Row: 2, Col: 4},
	ebiten.KeyF:      {Row: 2, Col: 5},
	ebiten.KeyT:      {Row: 2, Col: 6},
	ebiten.KeyX:      {Row: 2, Col: 7},

	ebiten.KeyDigit7: {Row: 3, Col: 0},
	ebiten.KeyY:      {Row: 3, Col: 1},
	ebiten.KeyG:      {Row: 3, Col: 2},
	ebiten.KeyDigit8: {Row: 3, Col: 3},
	ebiten.KeyB:      {Row: 3, Col: 4},
	ebiten.KeyH:      {Row: 3, Col: 5},
	ebiten.KeyU:      {Row: 3, Col: 6},
	ebiten.KeyV:      {Row: 3, Col: 7},

	ebiten.KeyDigit9: {Row: 4, Col: 0},
	ebiten.KeyI:      {Row: 4, Col: 1},
	ebiten.KeyJ:      {Row: 4, Col: 2},
	ebiten.KeyDigit0: {Row: 4, Col: 3},
	ebiten.KeyM:      {Row: 4, Col: 4},
	ebiten.KeyK:      {Row: 4, Col: 5},
	ebiten.KeyO:      {Row: 4, Col: 6},
	ebiten.KeyN:      {Row: 4, Col: 7},

	ebiten.KeyEqual:     {Row: 5, Col: 0},
	ebiten.KeyP:         {Row: 5, Col: 1},
	ebiten.KeyL:         {Row: 5, Col: 2},
	ebiten.KeyMinus:     {Row: 5, Col: 3},
	ebiten.KeyPeriod:    {Row: 5, Col: 4},
	ebiten.KeySemicolon: {Row: 5, Col: 5},
	ebiten.KeyComma:     {Row: 5, Col: 7},

	ebiten.KeyHome:  {Row: 6, Col: 3},
	ebiten.KeySlash: {Row: 6, Col: 7},

	ebiten.KeyDigit1:  {Row: 7, Col: 0},
	ebiten.KeyControl: {Row: 7, Col: 2},
	ebiten.KeyDigit2:  {Row: 7, Col: 3},
	ebiten.KeySpace:   {Row: 7, Col: 4},
	ebiten.KeyTab:     {Row: 7, Col: 5},
	ebiten.KeyQ:       {Row: 7, Col: 6},
	ebiten.KeyEscape:  {Row: 7, Col: 7},
}

func (eg *guiEbiten) inputKeyboard() error {
	var pressed []ebiten.Key
	var released []ebiten.Key
	pressed = inpututil.AppendJustPressedKeys(pressed)
	released = inpututil.AppendJustReleasedKeys(released)

	for _, k := range released {
		switch k {
		case ebiten.KeyPageUp:
			eg.send(gui.Input{Action: gui.Restore, Data: false})
		default:
			if kp, ok := keymatrix[k]; ok {
				kp.Down = false
				eg.send(gui.Input{Action: gui.MatrixKey, Data: kp})
			}
		}
	}

	for _, k := range pressed {
		switch k {
		case ebiten.KeyF12:
			eg.send(gui.Input{Action: gui.ResetMachine, Data: true})
		case ebiten.KeyPageUp:
			eg.send(gui.Input{Action: gui.Restore, Data: true})
		default:
			if kp, ok := keymatrix[k]; ok {
				kp.Down = true
				eg.send(gui.Input{Action: gui.MatrixKey, Data: kp})
			}
		}
	}

	return nil
}

func (eg *guiEbiten) inputDragAndDrop() error {
	df := ebiten.DroppedFiles()
	if df != nil {
		f := fmt.Sprintf("%#v", df)
		s := strings.Split(f, "\"")
		if len(s) > 1 {
			select {
			case eg.g.Commands <- []string{"INSERT", s[1]}:
			default:
				return nil
			}
		}
	}
	return nil
}
