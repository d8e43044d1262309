// Package cia implements the two 6526 interval timer chips. Each chip has
// two interval timers, an interrupt control register, a BCD time of day clock
// with an alarm, a serial shift register stub and two I/O ports
//
// The two chips differ in how their ports are wired and in which processor
// interrupt line they drive. The first chip scans the keyboard matrix and
// joysticks and raises IRQ. The second chip drives the serial bus and the
// video bank select lines and raises NMI
package cia

import (
	"fmt"
	"strings"
)

// Instance distinguishes the two chips in the machine
type Instance int

const (
	CIA1 Instance = iota
	CIA2
)

// origin of each chip's page in the address space. used for the register
// shadow in the I/O memory bank
func (ins Instance) origin() uint16 {
	if ins == CIA1 {
		return 0xdc00
	}
	return 0xdd00
}

// CPU is the interface to the processor's interrupt lines
type CPU interface {
	SetIRQ(asserted bool)
	SetNMI(asserted bool)
}

// VIC is the interface to the video chip inputs driven from the CIA ports
type VIC interface {
	BankSelect(bits uint8)
	TriggerLightPen()
}

// Memory allows the chip to mirror register writes into the I/O memory bank
type Memory interface {
	ShadowWrite(address uint16, data uint8)
}

// interrupt source flags as they appear in the interrupt control register
const (
	IntTimerA = uint8(0x01)
	IntTimerB = uint8(0x02)
	IntAlarm  = uint8(0x04)
	IntSerial = uint8(0x08)
	IntFlag   = uint8(0x10)
)

type CIA struct {
	instance Instance

	mem Memory
	cpu CPU
	vic VIC

	timerA timer
	timerB timer

	irq interrupts

	pra  uint8
	prb  uint8
	ddra uint8
	ddrb uint8

	sdr uint8

	tod todClock

	// first chip only. each matrix byte holds the key state for one column
	// (keyMatrix) or row (revMatrix), active low
	keyMatrix [8]uint8
	revMatrix [8]uint8
	joystick1 uint8
	joystick2 uint8
	prevLP    uint8

	// second chip only. state of the serial bus lines as seen on port A
	iecLines uint8
}

func Create(instance Instance, mem Memory, cpu CPU, vic VIC) *CIA {
	cia := &CIA{
		instance: instance,
		mem:      mem,
		cpu:      cpu,
		vic:      vic,
	}
	cia.timerA.srcMask = IntTimerA
	cia.timerB.srcMask = IntTimerB
	cia.Reset()
	return cia
}

func (cia *CIA) Reset() {
	cia.timerA.reset()
	cia.timerB.reset()
	cia.irq.reset()
	cia.pra = 0
	cia.prb = 0
	cia.ddra = 0
	cia.ddrb = 0
	cia.sdr = 0
	cia.tod.reset()

	for i := range cia.keyMatrix {
		cia.keyMatrix[i] = 0xff
		cia.revMatrix[i] = 0xff
	}
	cia.joystick1 = 0xff
	cia.joystick2 = 0xff
	cia.prevLP = 0x10

	cia.iecLines = 0xd0
}

func (cia *CIA) Label() string {
	if cia.instance == CIA1 {
		return "CIA1"
	}
	return "CIA2"
}

func (cia *CIA) Status() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("TA=%04x (%04x) %s", cia.timerA.value, cia.timerA.latch, cia.timerA.state))
	s.WriteString(fmt.Sprintf("  TB=%04x (%04x) %s", cia.timerB.value, cia.timerB.latch, cia.timerB.state))
	s.WriteString(fmt.Sprintf("  ICR=%02x/%02x", cia.irq.pending, cia.irq.mask))
	s.WriteString(fmt.Sprintf("  TOD=%02x:%02x:%02x.%x", cia.tod.hour, cia.tod.min, cia.tod.sec, cia.tod.dsec))
	if cia.tod.halt {
		s.WriteString(" (latched)")
	}
	return s.String()
}

func (cia *CIA) String() string {
	return fmt.Sprintf("%s: %s", cia.Label(), cia.Status())
}

// TODStatus describes the time of day clock and its alarm
func (cia *CIA) TODStatus() string {
	meridian := func(hour uint8) string {
		if hour&0x80 != 0 {
			return "pm"
		}
		return "am"
	}
	s := fmt.Sprintf("%02x:%02x:%02x.%x %s", cia.tod.hour&0x1f, cia.tod.min, cia.tod.sec, cia.tod.dsec,
		meridian(cia.tod.hour))
	if cia.tod.halt {
		s = fmt.Sprintf("%s (latched)", s)
	}
	return fmt.Sprintf("%s  alarm=%02x:%02x:%02x.%x %s", s,
		cia.tod.alarmHour&0x1f, cia.tod.alarmMin, cia.tod.alarmSec, cia.tod.alarmDsec,
		meridian(cia.tod.alarmHour))
}

// Update advances both timers by one phi2 cycle. timer A is always updated
// first because timer B may be counting timer A underflows
func (cia *CIA) Update() {
	cia.timerA.update(&cia.irq.pending, false)
	cia.timerB.update(&cia.irq.pending, cia.timerA.underflow)
}

// signal asserts the interrupt line appropriate for this chip
func (cia *CIA) signal() {
	if cia.instance == CIA1 {
		cia.cpu.SetIRQ(true)
	} else {
		cia.cpu.SetNMI(true)
	}
}

// acknowledge releases the interrupt line appropriate for this chip
func (cia *CIA) acknowledge() {
	if cia.instance == CIA1 {
		cia.cpu.SetIRQ(false)
	} else {
		cia.cpu.SetNMI(false)
	}
}

// ProcessIRQ delivers any timer underflow from the previous cycle to the
// processor. delivery is one cycle behind the underflow itself
func (cia *CIA) ProcessIRQ() {
	if cia.timerA.irqNextCycle {
		cia.timerA.irqNextCycle = false
		if cia.irq.raise(IntTimerA) {
			cia.signal()
		}
	}
	if cia.timerB.irqNextCycle {
		cia.timerB.irqNextCycle = false
		if cia.irq.raise(IntTimerB) {
			cia.signal()
		}
	}
}

// CountTOD advances the time of day clock by one mains cycle. the 50/60Hz
// input select comes from timer A's control register
func (cia *CIA) CountTOD() {
	fiftyHz := cia.timerA.ctrl&0x80 != 0
	if cia.tod.tick(fiftyHz) {
		if cia.irq.raise(IntAlarm) {
			cia.signal()
		}
	}
}

// TriggerFlag raises the flag line interrupt source. the flag pin is wired to
// the serial bus and the cassette port
func (cia *CIA) TriggerFlag() {
	if cia.irq.raise(IntFlag) {
		cia.signal()
	}
}
