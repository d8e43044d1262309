package cia

import (
	"fmt"
)

// each chip occupies a 256 byte page of the address space but has only
// sixteen registers. the block repeats through the page
func (cia *CIA) fold(idx uint16) uint16 {
	if idx > 0xff {
		panic(fmt.Sprintf("address out of %s memory range: %04x", cia.Label(), idx))
	}
	return idx % 0x0010
}

// shadow mirrors a register write into the I/O memory bank
func (cia *CIA) shadow(reg uint16, data uint8) {
	cia.mem.ShadowWrite(cia.instance.origin()+reg, data)
}

// Read implements the memory.Area interface
func (cia *CIA) Read(idx uint16) (uint8, error) {
	switch cia.fold(idx) {
	case 0x00, 0x01:
		if cia.instance == CIA1 {
			return cia.readPortCIA1(cia.fold(idx)), nil
		}
		return cia.readPortCIA2(cia.fold(idx)), nil
	case 0x02:
		return cia.ddra, nil
	case 0x03:
		return cia.ddrb, nil
	case 0x04:
		return uint8(cia.timerA.value), nil
	case 0x05:
		return uint8(cia.timerA.value >> 8), nil
	case 0x06:
		return uint8(cia.timerB.value), nil
	case 0x07:
		return uint8(cia.timerB.value >> 8), nil
	case 0x08:
		// reading tenths releases a latched clock
		cia.tod.halt = false
		return cia.tod.dsec, nil
	case 0x09:
		return cia.tod.sec, nil
	case 0x0a:
		return cia.tod.min, nil
	case 0x0b:
		// reading hours latches the clock until tenths is read
		cia.tod.halt = true
		return cia.tod.hour, nil
	case 0x0c:
		return cia.sdr, nil
	case 0x0d:
		// reading the interrupt control register clears it and releases the
		// interrupt line
		curr := cia.irq.readAndClear()
		cia.acknowledge()
		return curr, nil
	case 0x0e:
		return cia.timerA.ctrl, nil
	case 0x0f:
		return cia.timerB.ctrl, nil
	}

	panic(fmt.Sprintf("%s: impossible register read: %04x", cia.Label(), idx))
}

// Write implements the memory.Area interface
func (cia *CIA) Write(idx uint16, data uint8) error {
	reg := cia.fold(idx)

	switch reg {
	case 0x00, 0x01, 0x02, 0x03:
		if cia.instance == CIA1 {
			cia.writePortCIA1(reg, data)
		} else {
			cia.writePortCIA2(reg, data)
		}
		return nil

	case 0x04:
		cia.timerA.latch = (cia.timerA.latch & 0xff00) | uint16(data)

	case 0x05:
		cia.timerA.latch = (cia.timerA.latch & 0x00ff) | (uint16(data) << 8)

		// a stopped timer reloads immediately on a write to the high byte
		if cia.timerA.ctrl&ctrlStart == 0 {
			cia.timerA.value = cia.timerA.latch
		}

	case 0x06:
		cia.timerB.latch = (cia.timerB.latch & 0xff00) | uint16(data)

	case 0x07:
		cia.timerB.latch = (cia.timerB.latch & 0x00ff) | (uint16(data) << 8)
		if cia.timerB.ctrl&ctrlStart == 0 {
			cia.timerB.value = cia.timerB.latch
		}

	case 0x08:
		// bit 7 of timer B's control selects whether the time registers
		// address the clock or the alarm
		if cia.timerB.ctrl&0x80 != 0 {
			cia.tod.alarmDsec = data & 0x0f
		} else {
			cia.tod.dsec = data & 0x0f
		}

	case 0x09:
		if cia.timerB.ctrl&0x80 != 0 {
			cia.tod.alarmSec = data & 0x7f
		} else {
			cia.tod.sec = data & 0x7f
		}

	case 0x0a:
		if cia.timerB.ctrl&0x80 != 0 {
			cia.tod.alarmMin = data & 0x7f
		} else {
			cia.tod.min = data & 0x7f
		}

	case 0x0b:
		if cia.timerB.ctrl&0x80 != 0 {
			cia.tod.alarmHour = data & 0x9f
		} else {
			cia.tod.hour = data & 0x9f
		}

	case 0x0c:
		// a write to the serial register flags completion of a shift
		cia.sdr = data
		if cia.irq.raise(IntSerial) {
			cia.signal()
		}
		return nil

	case 0x0d:
		// enabling a source that has already flagged raises the interrupt
		if cia.irq.writeMask(data) {
			cia.signal()
		}

	case 0x0e:
		cia.timerA.newCtrl = data
		cia.timerA.hasNewCtrl = true
		cia.timerA.cntPhi2 = data&0x20 == 0

	case 0x0f:
		cia.timerB.newCtrl = data
		cia.timerB.hasNewCtrl = true
		cia.timerB.cntPhi2 = data&0x60 == 0
		cia.timerB.cntTAUnderflow = data&0x60 == 0x40
	}

	cia.shadow(reg, data)

	return nil
}
