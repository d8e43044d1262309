package gui

type Action int

type Input struct {
	Action Action

	// the meaning of Data depends on the Action. for stick and key actions
	// it is a bool indicating press or release. for matrix actions it is a
	// KeyPress
	Data any
}

const (
	Nothing Action = iota

	// joystick in the second control port, the one most software reads
	StickLeft
	StickUp
	StickRight
	StickDown
	StickButton

	// a key on the emulated keyboard, Data is a KeyPress
	MatrixKey

	// the restore key is wired to the processor's non-maskable interrupt
	// rather than the keyboard matrix
	Restore

	// the machine's reset line
	ResetMachine
)

// KeyPress identifies a position in the 8x8 keyboard matrix
type KeyPress struct {
	Row  int
	Col  int
	Down bool
}
