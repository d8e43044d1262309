package cia

// port handling for the two chips. the first chip's ports scan the keyboard
// matrix and joysticks, the second chip's ports carry the serial bus lines
// and the video bank select

// readPortCIA1 combines the port registers with the keyboard matrix and the
// joysticks. all switch inputs are active low
func (cia *CIA) readPortCIA1(reg uint16) uint8 {
	switch reg {
	case 0x00:
		retval := cia.pra | ^cia.ddra
		tst := (cia.prb | ^cia.ddrb) & cia.joystick1
		for i := range uint8(8) {
			if tst&(1<<i) == 0 {
				retval &= cia.revMatrix[i]
			}
		}
		return retval & cia.joystick2

	case 0x01:
		retval := ^cia.ddrb
		tst := (cia.pra | ^cia.ddra) & cia.joystick2
		for i := range uint8(8) {
			if tst&(1<<i) == 0 {
				retval &= cia.keyMatrix[i]
			}
		}
		return (retval | (cia.prb & cia.ddrb)) & cia.joystick1
	}
	return 0
}

func (cia *CIA) writePortCIA1(reg uint16, data uint8) {
	switch reg {
	case 0x00:
		cia.pra = data
	case 0x01:
		cia.prb = data
		cia.checkLightPen()
	case 0x02:
		cia.ddra = data
	case 0x03:
		cia.ddrb = data
		cia.checkLightPen()
	}
	cia.shadow(reg, data)
}

// the light pen line is bit 4 of port B. the video chip is told about any
// transition of the pin as driven by the port output
func (cia *CIA) checkLightPen() {
	lp := (cia.prb | ^cia.ddrb) & 0x10
	if lp != cia.prevLP {
		cia.vic.TriggerLightPen()
	}
	cia.prevLP = lp
}

func (cia *CIA) readPortCIA2(reg uint16) uint8 {
	switch reg {
	case 0x00:
		return (cia.pra|^cia.ddra)&0x3f | cia.iecLines
	case 0x01:
		return cia.prb | ^cia.ddrb
	}
	return 0
}

func (cia *CIA) writePortCIA2(reg uint16, data uint8) {
	switch reg {
	case 0x00:
		cia.pra = data
		cia.vic.BankSelect(^(cia.pra | ^cia.ddra) & 0x03)
	case 0x01:
		cia.prb = data
	case 0x02:
		cia.ddra = data
		cia.vic.BankSelect(^(cia.pra | ^cia.ddra) & 0x03)
	case 0x03:
		cia.ddrb = data
	}
	cia.shadow(reg, data)
}

// KeyEvent records a key press or release in the keyboard matrix. the matrix
// is indexed by row and column with a pressed key pulling its line low
func (cia *CIA) KeyEvent(row int, col int, down bool) {
	if row < 0 || row > 7 || col < 0 || col > 7 {
		return
	}
	if down {
		cia.keyMatrix[row] &^= 1 << col
		cia.revMatrix[col] &^= 1 << row
	} else {
		cia.keyMatrix[row] |= 1 << col
		cia.revMatrix[col] |= 1 << row
	}
}

// SetJoystick records the state of a joystick port. bits are active low in
// the order up, down, left, right, fire
func (cia *CIA) SetJoystick(port int, state uint8) {
	switch port {
	case 1:
		cia.joystick1 = state
	case 2:
		cia.joystick2 = state
	}
}

// SetIECLines sets the state of the serial bus input lines as seen on the
// upper bits of the second chip's port A
func (cia *CIA) SetIECLines(lines uint8) {
	cia.iecLines = lines & 0xd0
}
