package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/stride/debugui"
)

// keyboardInput reads WASD or the arrow keys for movement, Space to jump and the
// left mouse button or F to toggle aiming. Input ImGui is consuming is ignored.
type keyboardInput struct {
	ui *debugui.InputState
}

func axis(negative, positive []ebiten.Key) float64 {
	v := 0.0
	for _, k := range negative {
		if ebiten.IsKeyPressed(k) {
			v--
			break
		}
	}
	for _, k := range positive {
		if ebiten.IsKeyPressed(k) {
			v++
			break
		}
	}
	return v
}

func (in *keyboardInput) Axes() (float64, float64) {
	if in.ui.WantCaptureKeyboard {
		return 0, 0
	}
	h := axis([]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}, []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight})
	v := axis([]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp})
	return h, v
}

func (in *keyboardInput) JumpPressed() bool {
	return !in.ui.WantCaptureKeyboard && inpututil.IsKeyJustPressed(ebiten.KeySpace)
}

func (in *keyboardInput) AimTogglePressed() bool {
	if !in.ui.WantCaptureMouse && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return !in.ui.WantCaptureKeyboard && inpututil.IsKeyJustPressed(ebiten.KeyF)
}
