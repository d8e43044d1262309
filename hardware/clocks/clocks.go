package clocks

const Mhz = 1000000

// CPU/CIA clock (phi2) frequencies. The C64 derives the CPU clock from the
// dot clock: 8.18MHz/8 for NTSC and 7.88MHz/8 for PAL
const (
	NTSC = 1.022727 * Mhz
	PAL  = 0.985248 * Mhz
)

// the number of CPU cycles in one scanline
const (
	NTSC_CyclesScanline = 65
	PAL_CyclesScanline  = 63
)
