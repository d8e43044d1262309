// Package peripherals converts user input events into the port and matrix
// state of the keyboard chip
package peripherals

// Matrix is the interface to the chip that scans the keyboard and joysticks
type Matrix interface {
	KeyEvent(row int, col int, down bool)
	SetJoystick(port int, state uint8)
}
