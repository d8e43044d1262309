package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	input "github.com/quasilyte/ebitengine-input"

	"github.com/jetsetilly/test64/gui"
	"github.com/jetsetilly/test64/logger"
	"github.com/jetsetilly/test64/version"
)

type windowGeometry struct {
	x, y int
	w, h int
}

func (g windowGeometry) valid() bool {
	return g.x >= 0 && g.y >= 0 && g.w > 0 && g.h > 0
}

type guiEbiten struct {
	g    *gui.GUI
	geom windowGeometry

	started bool
	endGui  chan bool

	state gui.State

	main *ebiten.Image

	// width/height of incoming image from emulation. not to be confused with
	// window dimensions
	width  int
	height int

	// gamepad and cursor key handling for the joystick
	inputHandler *input.Handler
	inputSystem  input.System
}

func (eg *guiEbiten) Update() error {
	if !eg.started {
		eg.initialiseInput()
		eg.started = true
	}

	select {
	case <-eg.endGui:
		return ebiten.Termination
	default:
	}

	err := eg.inputKeyboard()
	if err != nil {
		return ebiten.Termination
	}
	eg.inputStick()

	err = eg.inputDragAndDrop()
	if err != nil {
		logger.Log(logger.Allow, "gui", err.Error())
	}

	select {
	case eg.state = <-eg.g.State:
	default:
	}

	// retrieve any pending images
	select {
	case img := <-eg.g.SetImage:
		if eg.main == nil || eg.main.Bounds() != img.Bounds() {
			eg.width = img.Bounds().Dx()
			eg.height = img.Bounds().Dy()
			eg.main = ebiten.NewImage(eg.width, eg.height)
		}
		eg.main.WritePixels(img.Pix)
	default:
	}

	return nil
}

func (eg *guiEbiten) Draw(screen *ebiten.Image) {
	if eg.main != nil {
		op := &ebiten.DrawImageOptions{}
		screen.DrawImage(eg.main, op)
	}

	eg.geom.x, eg.geom.y = ebiten.WindowPosition()
	eg.geom.w, eg.geom.h = ebiten.WindowSize()
}

func (eg *guiEbiten) Layout(width, height int) (int, int) {
	if eg.main != nil {
		return eg.width, eg.height
	}
	return width, height
}

func Launch(endGui chan bool, g *gui.GUI) error {
	ebiten.SetWindowTitle(version.Title())
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowPosition(10, 10)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	eg := &guiEbiten{
		endGui: endGui,
		g:      g,
		state:  gui.StateRunning,
	}

	eg.inputSystem.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})

	// wait for the first state change and a possible quit request
	select {
	case eg.state = <-g.State:
	case <-endGui:
		return nil
	}

	var err error

	eg.geom, err = onWindowOpen()
	if err != nil {
		logger.Log(logger.Allow, "gui", err.Error())
	}

	defer func() {
		err := onWindowClose(eg.geom)
		if err != nil {
			logger.Log(logger.Allow, "gui", err.Error())
			return
		}
	}()

	return ebiten.RunGame(eg)
}
