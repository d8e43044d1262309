package ebiten

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/jetsetilly/test64/resources"
)

func onWindowOpen() (windowGeometry, error) {
	var geom windowGeometry

	s, err := resources.Read("window")
	if err != nil {
		return geom, err
	}

	_, err = fmt.Sscanf(s, "%d %d %d %d", &geom.x, &geom.y, &geom.w, &geom.h)
	if err != nil {
		return geom, err
	}

	if geom.valid() {
		ebiten.SetWindowPosition(geom.x, geom.y)
		ebiten.SetWindowSize(geom.w, geom.h)
	}

	return geom, nil
}

func onWindowClose(geom windowGeometry) error {
	if !geom.valid() {
		return nil
	}
	s := fmt.Sprintf("%d %d %d %d", geom.x, geom.y, geom.w, geom.h)
	return resources.Write("window", s)
}
