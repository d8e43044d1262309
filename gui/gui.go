// Package gui defines the channels through which the emulation goroutine and
// the windowing front end communicate. The front end itself is in the ebiten
// sub-package
package gui

import (
	"image"
)

type State int

const (
	StateInitialising State = iota
	StateRunning
	StatePaused
)

type GUI struct {
	// the most recently completed frame. the emulation pushes and the front
	// end collects
	SetImage chan *image.RGBA

	// user input events from the front end to the emulation
	UserInput chan Input

	// emulation state changes for the front end
	State chan State

	// commands for the debugger loop, as though typed at the terminal. used
	// for drag and dropped files
	Commands chan []string
}

func Create() *GUI {
	return &GUI{
		SetImage:  make(chan *image.RGBA, 1),
		UserInput: make(chan Input, 32),
		State:     make(chan State, 1),
		Commands:  make(chan []string, 1),
	}
}
