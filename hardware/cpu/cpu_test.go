package cpu_test

import (
	"testing"

	"github.com/jetsetilly/test64/hardware/cpu"
	"github.com/jetsetilly/test64/test"
)

type mockMem struct {
	vectors map[uint16]uint16
}

func (m *mockMem) Read16bit(address uint16) (uint16, error) {
	return m.vectors[address], nil
}

func createTestCPU() *cpu.CPU {
	mem := &mockMem{
		vectors: map[uint16]uint16{
			cpu.IRQVector: 0x4000,
			cpu.NMIVector: 0x5000,
		},
	}
	mc := cpu.Create(mem)
	mc.Reset()
	return mc
}

func TestIRQLevel(t *testing.T) {
	mc := createTestCPU()

	// nothing happens while the line is released
	test.ExpectSuccess(t, mc.Update())
	test.ExpectEquality(t, mc.IRQCount, 0)

	mc.SetIRQ(true)
	test.ExpectSuccess(t, mc.Update())
	test.ExpectEquality(t, mc.IRQCount, 1)
	test.ExpectEquality(t, mc.PC, 0x4000)
	test.ExpectEquality(t, mc.InterruptDisable, true)

	// the line is still asserted but the interrupt disable flag holds the
	// interrupt off
	test.ExpectSuccess(t, mc.Update())
	test.ExpectEquality(t, mc.IRQCount, 1)

	// returning from the service routine reenables the interrupt. the line
	// is level triggered so it is serviced again immediately
	mc.RTI()
	test.ExpectSuccess(t, mc.Update())
	test.ExpectEquality(t, mc.IRQCount, 2)

	// releasing the line ends the interrupts
	mc.SetIRQ(false)
	mc.RTI()
	test.ExpectSuccess(t, mc.Update())
	test.ExpectEquality(t, mc.IRQCount, 2)
}

func TestNMIEdge(t *testing.T) {
	mc := createTestCPU()

	mc.SetNMI(true)
	test.ExpectSuccess(t, mc.Update())
	test.ExpectEquality(t, mc.NMICount, 1)
	test.ExpectEquality(t, mc.PC, 0x5000)

	// the line is edge triggered. holding it asserted does not retrigger
	mc.SetNMI(true)
	test.ExpectSuccess(t, mc.Update())
	test.ExpectEquality(t, mc.NMICount, 1)

	// a release and a new falling edge does
	mc.SetNMI(false)
	mc.SetNMI(true)
	test.ExpectSuccess(t, mc.Update())
	test.ExpectEquality(t, mc.NMICount, 2)
}

func TestNMIIgnoresInterruptDisable(t *testing.T) {
	mc := createTestCPU()

	mc.SetIRQ(true)
	test.ExpectSuccess(t, mc.Update())
	test.ExpectEquality(t, mc.InterruptDisable, true)

	mc.SetNMI(true)
	test.ExpectSuccess(t, mc.Update())
	test.ExpectEquality(t, mc.NMICount, 1)
	test.ExpectEquality(t, mc.PC, 0x5000)
}

func TestNMIPriority(t *testing.T) {
	mc := createTestCPU()

	mc.SetIRQ(true)
	mc.SetNMI(true)

	// both lines asserted. NMI is serviced first
	test.ExpectSuccess(t, mc.Update())
	test.ExpectEquality(t, mc.NMICount, 1)
	test.ExpectEquality(t, mc.IRQCount, 0)
	test.ExpectEquality(t, mc.PC, 0x5000)

	// the IRQ line is still asserted and is serviced on the next update
	test.ExpectSuccess(t, mc.Update())
	test.ExpectEquality(t, mc.IRQCount, 1)
	test.ExpectEquality(t, mc.PC, 0x4000)
}
