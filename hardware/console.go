package hardware

import (
	"fmt"

	"github.com/jetsetilly/test64/gui"
	"github.com/jetsetilly/test64/hardware/cia"
	"github.com/jetsetilly/test64/hardware/cpu"
	"github.com/jetsetilly/test64/hardware/memory"
	"github.com/jetsetilly/test64/hardware/peripherals"
	"github.com/jetsetilly/test64/hardware/spec"
	"github.com/jetsetilly/test64/hardware/vic"
)

// well known entry points in the system ROMs. the power-on entry is where the
// processor lands after reset and the warm start is where control returns
// after a program has been loaded into memory
const (
	PowerOnEntry   = uint16(0xfce2)
	BASICWarmStart = uint16(0xa480)
)

type Context interface {
	Rand8Bit() uint8
	Spec() spec.Spec
}

type Console struct {
	ctx  Context
	spec spec.Spec

	MC   *cpu.CPU
	Mem  *memory.Memory
	VIC  *vic.VIC
	CIA1 *cia.CIA
	CIA2 *cia.CIA

	g   *gui.GUI
	lim *limiter

	stick    *peripherals.Stick
	keyboard *peripherals.Keyboard

	// total number of emulated cycles since the last reset
	Cycles uint64

	// set when the most recent Step() crossed a frame boundary. consumed by
	// the Run() loop for pacing
	endOfFrame bool
}

func Create(ctx Context, g *gui.GUI) Console {
	var con Console
	con.ctx = ctx
	con.spec = ctx.Spec()
	con.g = g

	mem, addChips := memory.Create(ctx)
	con.Mem = mem
	con.MC = cpu.Create(mem)
	con.VIC = vic.Create(con.spec)
	con.CIA1 = cia.Create(cia.CIA1, mem, con.MC, con.VIC)
	con.CIA2 = cia.Create(cia.CIA2, mem, con.MC, con.VIC)
	addChips(con.CIA1, con.CIA2)

	con.stick = peripherals.NewStick(con.CIA1, 2)
	con.keyboard = peripherals.NewKeyboard(con.CIA1)

	con.lim = newLimiter(con.spec)

	con.Reset(true)

	return con
}

func (con *Console) Reset(random bool) error {
	con.Mem.Reset(random)
	con.MC.Reset()
	con.VIC.Reset()
	con.CIA1.Reset()
	con.CIA2.Reset()
	con.stick.Reset()
	con.Cycles = 0
	con.MC.PC = PowerOnEntry
	return nil
}

// Step advances the emulation by one cycle: both chips are updated, pending
// interrupts are delivered, and then the processor runs. frame boundary work
// happens at the end of the cycle that completes a frame
func (con *Console) Step() error {
	con.CIA1.Update()
	con.CIA2.Update()
	con.CIA1.ProcessIRQ()
	con.CIA2.ProcessIRQ()

	err := con.MC.Update()
	if err != nil {
		return err
	}

	con.Cycles++

	if con.VIC.Step() {
		con.endOfFrame = true
		con.frameService()
	}

	return nil
}

// frameService runs once per frame boundary: pending user input is applied,
// the time of day clocks are advanced and the frame is pushed to the gui
func (con *Console) frameService() {
	con.handleInput()
	con.CIA1.CountTOD()
	con.CIA2.CountTOD()
	con.PushRender()
}

// PushRender offers the current frame to the gui. never blocks
func (con *Console) PushRender() {
	select {
	case con.g.SetImage <- con.VIC.Pixels:
	default:
	}
}

// Run the emulation at the pace of the limiter until the hook function
// returns an error. the hook is called after every cycle
func (con *Console) Run(hook func() error) error {
	for {
		err := con.Step()
		if err != nil {
			return err
		}

		if con.endOfFrame {
			con.endOfFrame = false
			con.lim.Wait()
		}

		err = hook()
		if err != nil {
			return err
		}
	}
}

// InsertProgram loads a program file into memory. the first two bytes of the
// file give the load address. the BASIC program pointers are adjusted and the
// processor is moved to the warm start entry, mirroring what the ROM load
// routine leaves behind
func (con *Console) InsertProgram(data []byte) (uint16, error) {
	if len(data) < 3 {
		return 0, fmt.Errorf("program file is too short")
	}

	origin := uint16(data[0]) | (uint16(data[1]) << 8)
	data = data[2:]

	if int(origin)+len(data) > 0x10000 {
		return 0, fmt.Errorf("program does not fit in memory: %04x + %d bytes", origin, len(data))
	}

	for i, b := range data {
		err := con.Mem.RAM.Write(origin+uint16(i), b)
		if err != nil {
			return 0, err
		}
	}

	// end of program pointers used by BASIC
	end := origin + uint16(len(data))
	con.Mem.RAM.Write(0x2d, uint8(end))
	con.Mem.RAM.Write(0x2e, uint8(end>>8))
	con.Mem.RAM.Write(0xae, uint8(end))
	con.Mem.RAM.Write(0xaf, uint8(end>>8))

	con.MC.PC = BASICWarmStart

	return origin, nil
}

// LastMemoryAccess returns a description of the most recent memory write
func (con *Console) LastMemoryAccess() string {
	if con.Mem.Last == nil {
		return ""
	}
	s := con.Mem.Last.Label()
	con.Mem.Last = nil
	return s
}
