package memory_test

import (
	"testing"

	"github.com/jetsetilly/test64/hardware/memory"
	"github.com/jetsetilly/test64/test"
)

type testContext struct{}

func (ctx *testContext) Rand8Bit() uint8 {
	return 0
}

// mockArea stands in for a chip. it counts dispatched reads and writes so
// that tests can tell chip access apart from backing store access
type mockArea struct {
	label  string
	reads  int
	writes int
	data   [0x100]uint8
}

func (a *mockArea) Read(idx uint16) (uint8, error) {
	a.reads++
	return a.data[idx], nil
}

func (a *mockArea) Write(idx uint16, data uint8) error {
	a.writes++
	a.data[idx] = data
	return nil
}

func (a *mockArea) Label() string {
	return a.label
}

func createTestMemory() (*memory.Memory, *mockArea, *mockArea) {
	mem, addChips := memory.Create(&testContext{})
	cia1 := &mockArea{label: "CIA1"}
	cia2 := &mockArea{label: "CIA2"}
	addChips(cia1, cia2)
	mem.Reset(false)
	return mem, cia1, cia2
}

func TestMapAddress(t *testing.T) {
	mem, cia1, cia2 := createTestMemory()

	// ordinary RAM below the I/O area
	idx, area := mem.MapAddress(0x0400)
	test.ExpectEquality(t, idx, 0x0400)
	test.ExpectSuccess(t, area == mem.RAM)

	// the I/O backing store
	idx, area = mem.MapAddress(0xd000)
	test.ExpectEquality(t, idx, 0x0000)
	test.ExpectSuccess(t, area == mem.IO)

	// chip pages dispatch to the chips with a page relative index
	idx, area = mem.MapAddress(0xdc05)
	test.ExpectEquality(t, idx, 0x0005)
	test.ExpectSuccess(t, area == memory.Area(cia1))

	idx, area = mem.MapAddress(0xddff)
	test.ExpectEquality(t, idx, 0x00ff)
	test.ExpectSuccess(t, area == memory.Area(cia2))

	// the top of the I/O area falls back to the backing store
	idx, area = mem.MapAddress(0xdfff)
	test.ExpectEquality(t, idx, 0x0fff)
	test.ExpectSuccess(t, area == mem.IO)

	// above the I/O area is RAM again
	_, area = mem.MapAddress(0xfffe)
	test.ExpectSuccess(t, area == mem.RAM)
}

func TestBankSelect(t *testing.T) {
	mem, cia1, _ := createTestMemory()

	// with the RAM bank selected the chip pages behave like ordinary RAM
	mem.SelectBank(memory.RAMBank)
	idx, area := mem.MapAddress(0xdc05)
	test.ExpectEquality(t, idx, 0xdc05)
	test.ExpectSuccess(t, area == mem.RAM)

	err := mem.Write(0xdc05, 0x99)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cia1.writes, 0)

	// reselecting the I/O bank restores chip dispatch
	mem.SelectBank(memory.IOBank)
	err = mem.Write(0xdc05, 0x42)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, cia1.writes, 1)

	// the RAM underneath is unaffected by the chip write
	mem.SelectBank(memory.RAMBank)
	v, err := mem.Read(0xdc05)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x99)
}

func TestPeek(t *testing.T) {
	mem, cia1, _ := createTestMemory()

	// a chip shadows its register writes into the backing store
	mem.ShadowWrite(0xdc04, 0x34)

	// Peek returns the shadowed value without dispatching to the chip
	v, err := mem.Peek(0xdc04)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x34)
	test.ExpectEquality(t, cia1.reads, 0)

	// Read dispatches to the chip
	cia1.data[0x04] = 0x56
	v, err = mem.Read(0xdc04)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x56)
	test.ExpectEquality(t, cia1.reads, 1)
}

func TestShadowWriteRange(t *testing.T) {
	mem, _, _ := createTestMemory()

	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	mem.ShadowWrite(0x1000, 0x00)
}

func TestRead16bit(t *testing.T) {
	mem, _, _ := createTestMemory()

	test.ExpectSuccess(t, mem.Write(0xfffe, 0x34))
	test.ExpectSuccess(t, mem.Write(0xffff, 0x12))

	v, err := mem.Read16bit(0xfffe)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x1234)
}

func TestLastArea(t *testing.T) {
	mem, cia1, _ := createTestMemory()

	test.ExpectSuccess(t, mem.Last == nil)
	test.ExpectSuccess(t, mem.Write(0xdc00, 0x00))
	test.ExpectSuccess(t, mem.Last == memory.Area(cia1))
}
