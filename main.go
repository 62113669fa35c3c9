/*
Interactive holiday-tree display: particles choreograph between a tree
spiral and a scattered cloud, steered by hand gestures. This binary runs
the testbed frontend, which fakes the hand-landmark source with mouse and
keyboard.
*/
package main

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/frostpine/garland/testbed"
)

func main() {
	display, err := testbed.New()
	if err != nil {
		panic(err)
	}

	ebiten.SetWindowSize(1280, 720)
	ebiten.SetWindowTitle("Garland — U: add photo, F/O/P: gestures, Esc: quit")

	if err := ebiten.RunGame(display); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}
