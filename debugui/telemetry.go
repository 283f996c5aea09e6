package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/stride/geom"
	"github.com/plus3/stride/motion"
)

// MotionSource exposes the read side of a controller.
type MotionSource interface {
	Velocity() geom.Vec3
	Phase() motion.Phase
	JumpPending() bool
	Input() geom.Vec2
	Params() motion.AnimationParams
	Aiming() bool
	AimRotation() geom.Quat
}

// TelemetryPanel shows the live motion state and plots speed over time.
type TelemetryPanel struct {
	source     MotionSource
	horizontal *History
	vertical   *History
}

func NewTelemetryPanel(source MotionSource, historySize int) *TelemetryPanel {
	return &TelemetryPanel{
		source:     source,
		horizontal: NewHistory(historySize),
		vertical:   NewHistory(historySize),
	}
}

// Sample records the current speeds. Call once per tick.
func (p *TelemetryPanel) Sample() {
	v := p.source.Velocity()
	p.horizontal.Push(float32(v.Horizontal().Len()))
	p.vertical.Push(float32(v.Y))
}

func (p *TelemetryPanel) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 360), imgui.CondOnce)

	if !imgui.BeginV("Motion", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	v := p.source.Velocity()
	in := p.source.Input()
	params := p.source.Params()
	aimYaw := p.source.AimRotation().Euler().Y

	imgui.Text(fmt.Sprintf("Phase: %s", p.source.Phase()))
	imgui.Text(fmt.Sprintf("Velocity: (%.2f, %.2f, %.2f) m/s", v.X, v.Y, v.Z))
	imgui.Text(fmt.Sprintf("XZ speed: %.2f m/s (%.1f km/h)", v.Horizontal().Len(), v.Horizontal().Len()*3.6))
	imgui.Text(fmt.Sprintf("Input: (%.2f, %.2f)", in.X, in.Y))
	imgui.Text(fmt.Sprintf("Jump pending: %t", p.source.JumpPending()))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Anim forward: %.3f  strafe: %.3f", params.Forward, params.Strafe))
	imgui.Text(fmt.Sprintf("Aiming: %t  yaw: %.1f°", p.source.Aiming(), aimYaw))
	imgui.Separator()

	horizontal := p.horizontal.Ordered()
	vertical := p.vertical.Ordered()
	if implot.BeginPlotV("Speed", imgui.NewVec2(-1, -1), 0) {
		implot.SetupAxesV("Tick", "m/s", 0, implot.AxisFlagsAutoFit)
		implot.PlotLineFloatPtrInt("xz", &horizontal[0], int32(len(horizontal)))
		implot.PlotLineFloatPtrInt("y", &vertical[0], int32(len(vertical)))
		implot.EndPlot()
	}

	imgui.End()
}
