// Package vic implements the small part of the video chip that the I/O chips
// interact with: the bank select lines driven from the second CIA's port A
// and the light pen input driven from the first CIA's port B
package vic

import (
	"fmt"
	"image"

	"github.com/jetsetilly/test64/hardware/spec"
)

type VIC struct {
	spec spec.Spec

	// the two lowest bits of the inverted CIA2 port A output. selects which
	// 16K bank of the address space the video chip sees
	bank uint8

	// number of light pen triggers received this frame. the real chip latches
	// the raster position on the first trigger only
	lpTriggers int

	// raster and frame progress
	cycle    int
	Scanline int
	Frame    int

	// the frame as rendered so far. this emulation draws only the border
	// colour so the image serves as a pacing and presentation aid
	Pixels *image.RGBA
}

func Create(sp spec.Spec) *VIC {
	vic := &VIC{
		spec:   sp,
		Pixels: image.NewRGBA(image.Rect(0, 0, sp.Width, sp.Height)),
	}
	return vic
}

func (vic *VIC) Reset() {
	vic.bank = 0
	vic.lpTriggers = 0
	vic.cycle = 0
	vic.Scanline = 0
	vic.Frame = 0
	for i := 0; i < vic.spec.Width; i++ {
		for j := 0; j < vic.spec.Height; j++ {
			vic.Pixels.SetRGBA(i, j, spec.Palette[14])
		}
	}
}

func (vic *VIC) Label() string {
	return "VIC"
}

func (vic *VIC) Status() string {
	return fmt.Sprintf("frame=%d scanline=%d bank=%d", vic.Frame, vic.Scanline, vic.bank)
}

func (vic *VIC) String() string {
	return fmt.Sprintf("%s: %s", vic.Label(), vic.Status())
}

// BankSelect is called when the bank select lines change. bits is the two bit
// bank number after inversion of the port output
func (vic *VIC) BankSelect(bits uint8) {
	vic.bank = bits & 0x03
}

// Bank returns the currently selected 16K bank
func (vic *VIC) Bank() uint8 {
	return vic.bank
}

// Origin returns the base address of the currently selected bank
func (vic *VIC) Origin() uint16 {
	return uint16(vic.bank) * 0x4000
}

// TriggerLightPen is called on a transition of the light pen line
func (vic *VIC) TriggerLightPen() {
	vic.lpTriggers++
}

// Step advances the raster position by one CPU cycle. returns true when a
// frame boundary has been reached
func (vic *VIC) Step() bool {
	vic.cycle++
	if vic.cycle >= vic.spec.CyclesScanline {
		vic.cycle = 0
		vic.Scanline++
		if vic.Scanline >= vic.spec.Scanlines {
			vic.Scanline = 0
			vic.Frame++
			vic.lpTriggers = 0
			return true
		}
	}
	return false
}
