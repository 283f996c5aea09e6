// Package debugui provides Dear ImGui panels for inspecting and tuning a running
// character controller. Panels are plain render functions queued by ImguiSystem.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stride/sim"
)

// ImguiItem holds a Dear ImGui render function.
type ImguiItem struct {
	Render func()
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// ImguiSystem defers every item's render function to the end of the frame.
// When State is set it is refreshed from the current ImGui IO first.
type ImguiSystem struct {
	Items []ImguiItem
	State *InputState
}

// Add queues render on every frame.
func (s *ImguiSystem) Add(render func()) {
	s.Items = append(s.Items, ImguiItem{Render: render})
}

func (s *ImguiSystem) Execute(frame *sim.UpdateFrame) {
	if s.State != nil {
		io := imgui.CurrentIO()
		s.State.WantCaptureMouse = io.WantCaptureMouse()
		s.State.WantCaptureKeyboard = io.WantCaptureKeyboard()
	}

	for _, item := range s.Items {
		frame.Commands.Defer(item.Render)
	}
}
