package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/stride/geom"
)

const pixelsPerMeter = 32

var (
	backgroundColor = color.RGBA{30, 32, 36, 255}
	gridColor       = color.RGBA{44, 47, 52, 255}
	bodyColor       = color.RGBA{120, 200, 255, 255}
	airborneColor   = color.RGBA{255, 200, 90, 255}
	velocityColor   = color.RGBA{120, 255, 140, 255}
	aimColor        = color.RGBA{255, 90, 90, 255}
	idleAimColor    = color.RGBA{140, 90, 90, 255}
	cameraColor     = color.RGBA{200, 200, 200, 255}
)

// view maps the ground plane to the screen, top-down with +Z up, centered on a point.
type view struct {
	center        geom.Vec3
	width, height float32
}

func (v view) project(p geom.Vec3) (float32, float32) {
	x := float32(p.X-v.center.X)*pixelsPerMeter + v.width/2
	y := -float32(p.Z-v.center.Z)*pixelsPerMeter + v.height/2
	return x, y
}

func columnColor(h float64) color.RGBA {
	shade := uint8(max(0, min(200, 70+h*60)))
	return color.RGBA{shade, shade, uint8(max(0, min(230, 80+h*70))), 255}
}

func (g *Game) drawWorld(screen *ebiten.Image, center geom.Vec3) {
	bounds := screen.Bounds()
	v := view{center: center, width: float32(bounds.Dx()), height: float32(bounds.Dy())}

	screen.Fill(backgroundColor)

	cell := float32(g.field.CellSize() * pixelsPerMeter)
	for c, h := range g.field.Columns() {
		x, y := v.project(geom.Vec3{X: float64(c.X) * g.field.CellSize(), Z: float64(c.Z+1) * g.field.CellSize()})
		vector.DrawFilledRect(screen, x, y, cell, cell, columnColor(h), false)
		vector.StrokeRect(screen, x, y, cell, cell, 1, gridColor, false)
	}

	pos := center
	px, py := v.project(pos)
	radius := float32(g.body.Radius() * pixelsPerMeter)

	fill := bodyColor
	if !g.body.IsGrounded() {
		fill = airborneColor
	}
	// The body grows with height so jumps read in a top-down view.
	lift := float32(g.body.HeightAboveSurface()) * 4
	vector.DrawFilledCircle(screen, px, py, radius+lift, fill, true)

	facing := g.body.Rotation().Forward()
	fx, fy := v.project(pos.Add(facing.Scale(g.body.Radius() * 1.5)))
	vector.StrokeLine(screen, px, py, fx, fy, 2, color.Black, true)

	vel := g.ctrl.Velocity().Horizontal()
	vx, vy := v.project(pos.Add(vel.Scale(0.25)))
	vector.StrokeLine(screen, px, py, vx, vy, 2, velocityColor, true)

	if g.cfg.Aim.Enabled {
		aimDir := g.ctrl.AimWorldRotation().Forward().Horizontal().Normalize()
		ax, ay := v.project(pos.Add(aimDir.Scale(2)))
		c := idleAimColor
		if g.ctrl.Aiming() {
			c = aimColor
		}
		vector.StrokeLine(screen, px, py, ax, ay, 1, c, true)
	}

	camDir := g.rig.Forward().Horizontal().Normalize()
	cx, cy := v.project(pos.Sub(camDir.Scale(3)))
	vector.StrokeCircle(screen, cx, cy, 5, 1, cameraColor, true)
	tx, ty := v.project(pos.Sub(camDir.Scale(2.5)))
	vector.StrokeLine(screen, cx, cy, tx, ty, 1, cameraColor, true)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"WASD move  Space jump  F/click aim  Q/E orbit  Esc quit\npos %.2f %.2f %.2f  %s",
		pos.X, pos.Y, pos.Z, g.ctrl.Phase()), 10, bounds.Dy()-40)
}
