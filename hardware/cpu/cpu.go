// Package cpu implements the processor side of the interrupt wiring. It is
// not an instruction emulator. It latches the IRQ and NMI lines as driven by
// the chips and services them with the standard 6510 vectors, which is enough
// to observe and to test the interrupt behaviour of the rest of the hardware
package cpu

import (
	"fmt"
	"strings"
)

// vectors used when an interrupt is serviced
const (
	NMIVector = uint16(0xfffa)
	IRQVector = uint16(0xfffe)
)

type Memory interface {
	Read16bit(address uint16) (uint16, error)
}

type CPU struct {
	mem Memory

	PC uint16

	// the current level of the IRQ line. IRQ is level triggered so the line
	// is serviced for as long as it is held low and interrupts are enabled
	irqLine bool

	// NMI is edge triggered. the line level is kept so that a falling edge
	// can be detected and the pending flag survives until serviced
	nmiLine    bool
	nmiPending bool

	// interrupt disable flag. set while an IRQ is being serviced, in the
	// manner of the real processor pushing the status register and setting I
	InterruptDisable bool

	// count of interrupts serviced. useful for testing and for the debugger
	IRQCount int
	NMICount int
}

func Create(mem Memory) *CPU {
	return &CPU{mem: mem}
}

func (mc *CPU) Reset() {
	mc.irqLine = false
	mc.nmiLine = false
	mc.nmiPending = false
	mc.InterruptDisable = false
	mc.IRQCount = 0
	mc.NMICount = 0
}

func (mc *CPU) Label() string {
	return "CPU"
}

func (mc *CPU) Status() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("PC=%04x", mc.PC))
	if mc.irqLine {
		s.WriteString(" IRQ")
	}
	if mc.nmiPending {
		s.WriteString(" NMI")
	}
	if mc.InterruptDisable {
		s.WriteString(" I")
	}
	s.WriteString(fmt.Sprintf(" irq=%d nmi=%d", mc.IRQCount, mc.NMICount))
	return s.String()
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s: %s", mc.Label(), mc.Status())
}

// SetIRQ drives the IRQ line. true means the line is asserted
func (mc *CPU) SetIRQ(asserted bool) {
	mc.irqLine = asserted
}

// SetNMI drives the NMI line. the interrupt is latched on the falling edge
// and remains pending until serviced
func (mc *CPU) SetNMI(asserted bool) {
	if asserted && !mc.nmiLine {
		mc.nmiPending = true
	}
	mc.nmiLine = asserted
}

// Update services any pending interrupt. NMI takes priority over IRQ and an
// IRQ is ignored while the interrupt disable flag is set
func (mc *CPU) Update() error {
	if mc.nmiPending {
		mc.nmiPending = false
		pc, err := mc.mem.Read16bit(NMIVector)
		if err != nil {
			return fmt.Errorf("cpu: %w", err)
		}
		mc.PC = pc
		mc.NMICount++
		return nil
	}

	if mc.irqLine && !mc.InterruptDisable {
		pc, err := mc.mem.Read16bit(IRQVector)
		if err != nil {
			return fmt.Errorf("cpu: %w", err)
		}
		mc.PC = pc
		mc.InterruptDisable = true
		mc.IRQCount++
	}

	return nil
}

// RTI clears the interrupt disable flag, allowing the IRQ line to be serviced
// again. called by whatever is standing in for the instruction stream
func (mc *CPU) RTI() {
	mc.InterruptDisable = false
}
