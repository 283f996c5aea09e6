package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stride/motion"
)

// Tunable accepts validated tuning changes between ticks.
type Tunable interface {
	Config() motion.Config
	Reconfigure(cfg motion.Config) error
}

// TuningPanel edits a copy of the motion config and applies it on request.
type TuningPanel struct {
	target Tunable
	form   motion.Config
	err    error
}

func NewTuningPanel(target Tunable) *TuningPanel {
	return &TuningPanel{
		target: target,
		form:   target.Config(),
	}
}

// apply pushes the form to the target. A rejected config leaves the target untouched.
func (p *TuningPanel) apply() {
	p.err = p.target.Reconfigure(p.form)
}

// reset discards edits and reloads the target's current config.
func (p *TuningPanel) reset() {
	p.form = p.target.Config()
	p.err = nil
}

// setExponential switches the drag mode of the form.
func (p *TuningPanel) setExponential(on bool) {
	p.form.DragMode = motion.DragLinear
	if on {
		p.form.DragMode = motion.DragExponential
	}
}

// floatField edits v through a float32 widget. v is only written when the
// widget reports an edit, so untouched fields keep their full precision.
func floatField(label string, v *float64) {
	f := float32(*v)
	imgui.Text(label)
	imgui.SameLine()
	imgui.SetNextItemWidth(120)
	if imgui.InputFloat(fmt.Sprintf("##%s", label), &f) {
		*v = float64(f)
	}
}

func (p *TuningPanel) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(340, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(300, 220), imgui.CondOnce)

	if !imgui.BeginV("Tuning", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	floatField("Acceleration", &p.form.Acceleration)
	floatField("Drag", &p.form.Drag)
	floatField("Max XZ speed", &p.form.MaxXZSpeed)
	floatField("Jump height", &p.form.JumpHeight)
	exponential := p.form.DragMode == motion.DragExponential
	if imgui.Checkbox("Exponential drag", &exponential) {
		p.setExponential(exponential)
	}

	imgui.Separator()
	if imgui.Button("Apply") {
		p.apply()
	}
	imgui.SameLine()
	if imgui.Button("Reset") {
		p.reset()
	}

	if p.err != nil {
		imgui.TextColored(imgui.NewVec4(1.0, 0.4, 0.4, 1.0), p.err.Error())
	}

	imgui.End()
}
