package spec

import (
	"image/color"

	"github.com/jetsetilly/test64/hardware/clocks"
)

// Spec is the television specification of the console. The CIA timers are fed
// by the CPU clock and the TOD clocks tick at mains frequency, both of which
// differ between the NTSC and PAL machines
type Spec struct {
	ID string

	// dimensions of the TV frame, including borders
	Width  int
	Height int

	// the number of scanlines in the frame and the number of CPU cycles in
	// each scanline. the product is the number of emulated cycles between
	// frame boundaries
	Scanlines      int
	CyclesScanline int

	// the CPU/CIA clock in Hz
	ClockFreq float64

	// frames (and so TOD service calls) per second
	RefreshRate float64
}

var NTSC Spec
var PAL Spec

func init() {
	NTSC = Spec{
		ID:             "NTSC",
		Width:          384,
		Height:         247,
		Scanlines:      263,
		CyclesScanline: clocks.NTSC_CyclesScanline,
		ClockFreq:      clocks.NTSC,
		RefreshRate:    59.826,
	}

	PAL = Spec{
		ID:             "PAL",
		Width:          384,
		Height:         272,
		Scanlines:      312,
		CyclesScanline: clocks.PAL_CyclesScanline,
		ClockFreq:      clocks.PAL,
		RefreshRate:    50.125,
	}
}

// CyclesFrame returns the number of CPU cycles in one frame of the
// specification
func (sp Spec) CyclesFrame() int {
	return sp.Scanlines * sp.CyclesScanline
}

// Palette is the 16 colour palette of the VIC chip. RGB values taken from
// WinVICE
var Palette = [16]color.RGBA{
	{R: 0x00, G: 0x00, B: 0x00, A: 255},
	{R: 0xff, G: 0xff, B: 0xff, A: 255},
	{R: 0x89, G: 0x40, B: 0x36, A: 255},
	{R: 0x7a, G: 0xbf, B: 0xc7, A: 255},
	{R: 0x8a, G: 0x46, B: 0xae, A: 255},
	{R: 0x68, G: 0xa9, B: 0x41, A: 255},
	{R: 0x3e, G: 0x31, B: 0xa2, A: 255},
	{R: 0xd0, G: 0xdc, B: 0x71, A: 255},
	{R: 0x90, G: 0x5f, B: 0x25, A: 255},
	{R: 0x5c, G: 0x47, B: 0x00, A: 255},
	{R: 0xbb, G: 0x77, B: 0x6d, A: 255},
	{R: 0x55, G: 0x55, B: 0x55, A: 255},
	{R: 0x80, G: 0x80, B: 0x80, A: 255},
	{R: 0xac, G: 0xea, B: 0x88, A: 255},
	{R: 0x7c, G: 0x70, B: 0xda, A: 255},
	{R: 0xab, G: 0xab, B: 0xab, A: 255},
}
