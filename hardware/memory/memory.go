package memory

import (
	"fmt"

	"github.com/jetsetilly/test64/hardware/memory/ram"
)

// Bank identifies one of the selectable overlays for the $d000 to $dfff area
// of the address space
type Bank int

const (
	// the I/O bank: reads/writes in the chip pages are dispatched to the
	// chips themselves and everything else to the I/O backing store
	IOBank Bank = iota

	// the RAM bank: the $d000 page area behaves like ordinary RAM
	RAMBank
)

type Memory struct {
	RAM *ram.RAM

	// backing store for the I/O area. chips shadow their register writes in
	// here so that raw memory reads see consistent values without going
	// through the chip dispatch
	IO *ram.RAM

	CIA1 Area
	CIA2 Area

	// which overlay is currently selected for the I/O area
	bank Bank

	// the last memory area to be written to. consumed by the debugger for
	// feedback on memory activity
	Last Area
}

type Context interface {
	ram.Context
}

// Create a new memory instance. Chip areas are not known at creation time
// (the chips need a reference to memory themselves) so they are attached with
// the returned AddChips function
func Create(ctx Context) (*Memory, AddChips) {
	mem := &Memory{
		RAM: ram.Create(ctx, "ram", 0x10000),
		IO:  ram.Create(ctx, "io", 0x1000),
	}
	return mem, func(cia1 Area, cia2 Area) {
		mem.CIA1 = cia1
		mem.CIA2 = cia2
	}
}

// AddChips is returned by the Create() function and should be called to
// finalise the memory creation process
type AddChips func(cia1 Area, cia2 Area)

type Area interface {
	// read and write both take an index value. this is an address in the area
	// but with the area origin removed. in other words, the area doesn't need
	// to know about it's location in memory, only the relative placement of
	// addresses within the area
	Read(idx uint16) (uint8, error)
	Write(idx uint16, data uint8) error
	Label() string
}

func (mem *Memory) Reset(random bool) {
	mem.RAM.Reset(random)
	mem.IO.Reset(false)
	mem.bank = IOBank
}

// memory map of the I/O area when the I/O bank is selected
const (
	OriginIO   = uint16(0xd000)
	MemtopIO   = uint16(0xdfff)
	OriginCIA1 = uint16(0xdc00)
	MemtopCIA1 = uint16(0xdcff)
	OriginCIA2 = uint16(0xdd00)
	MemtopCIA2 = uint16(0xddff)
)

// SelectBank chooses the overlay for the I/O area of the address space
func (mem *Memory) SelectBank(bank Bank) {
	mem.bank = bank
}

// MapAddress returns the memory "area" and index into the area corresponding
// to the address.
//
// Each CIA is assigned a 256-byte page of the I/O area. mirroring of the
// 16-byte register block within the page is the responsibility of the chip
func (mem *Memory) MapAddress(address uint16) (uint16, Area) {
	if mem.bank == IOBank && address >= OriginIO && address <= MemtopIO {
		if address >= OriginCIA1 && address <= MemtopCIA1 {
			return address - OriginCIA1, mem.CIA1
		}
		if address >= OriginCIA2 && address <= MemtopCIA2 {
			return address - OriginCIA2, mem.CIA2
		}
		return address - OriginIO, mem.IO
	}
	return address, mem.RAM
}

func (mem *Memory) Read(address uint16) (uint8, error) {
	idx, area := mem.MapAddress(address)
	if area == nil {
		return 0, fmt.Errorf("read unmapped address: %04x", address)
	}
	v, err := area.Read(idx)
	if err != nil {
		return 0, fmt.Errorf("read %04x: %w", address, err)
	}
	return v, nil
}

func (mem *Memory) Write(address uint16, data uint8) error {
	idx, area := mem.MapAddress(address)
	if area == nil {
		return fmt.Errorf("write unmapped address: %04x", address)
	}
	mem.Last = area
	err := area.Write(idx, data)
	if err != nil {
		return fmt.Errorf("write %04x: %w", address, err)
	}
	return nil
}

// Peek reads the byte at the address without triggering chip side effects.
// chip registers are read from the I/O backing store, where the chips shadow
// their writes
func (mem *Memory) Peek(address uint16) (uint8, error) {
	idx, area := mem.MapAddress(address)
	if area == nil {
		return 0, fmt.Errorf("peek unmapped address: %04x", address)
	}
	if area == mem.CIA1 || area == mem.CIA2 {
		return mem.IO.Read(address - OriginIO)
	}
	return area.Read(idx)
}

// Read16bit reads an address from the two bytes at the specified address,
// least significant byte first
func (mem *Memory) Read16bit(address uint16) (uint16, error) {
	lo, err := mem.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := mem.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// ShadowWrite writes directly into the I/O backing store, bypassing area
// dispatch. Used by the chips to mirror their register state
func (mem *Memory) ShadowWrite(address uint16, data uint8) {
	if address < OriginIO || address > MemtopIO {
		panic(fmt.Sprintf("shadow write to address outside of I/O area: %04x", address))
	}
	mem.IO.Write(address-OriginIO, data)
}
