package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/stride/camera"
	"github.com/plus3/stride/config"
	"github.com/plus3/stride/controller"
	"github.com/plus3/stride/debugui"
	debugui_ebiten "github.com/plus3/stride/debugui/ebiten"
	"github.com/plus3/stride/geom"
	"github.com/plus3/stride/sim"
	"github.com/plus3/stride/terrain"
)

// Game implements ebiten.Game. Movement runs on the fixed-step scheduler; the
// debug panels run once per visual frame on their own scheduler.
type Game struct {
	cfg     *config.File
	field   *terrain.Field
	body    *terrain.Body
	rig     *camera.Orbit
	ctrl    *controller.Controller
	backend *debugui_ebiten.ImguiBackend

	scheduler   *sim.Scheduler
	uiScheduler *sim.Scheduler
	uiState     *debugui.InputState
	timer       *debugui.FrameTimer
	frameDelta  float32

	prevPos geom.Vec3
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	dt := 1.0 / float64(ebiten.TPS())
	g.frameDelta = g.timer.GetDeltaTime()

	g.backend.Frame(func() {
		if !g.uiState.WantCaptureKeyboard {
			g.rig.Orbit(axis([]ebiten.Key{ebiten.KeyQ}, []ebiten.Key{ebiten.KeyE}), 0, dt)
		}

		g.ctrl.Sample()
		g.scheduler.Advance(dt)
		g.uiScheduler.Once(dt)
	})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Interpolate between the last two ticks so motion stays smooth when the
	// display rate and the tick rate differ.
	cur := g.body.Position()
	pos := g.prevPos.Add(cur.Sub(g.prevPos).Scale(g.scheduler.Alpha()))

	g.drawWorld(screen, pos)
	g.backend.Overlay(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
