package main

import (
	"io"
	"text/template"
	"time"

	"github.com/plus3/stride/config"
	"github.com/plus3/stride/geom"
	"github.com/plus3/stride/sim"
)

type Report struct {
	// Configuration
	Duration   float64
	FrameDelta float64
	Realtime   bool
	Config     *config.File

	// Results
	Frames        int64
	FinalPosition geom.Vec3
	FinalPhase    string
	MaxXZSpeed    float64
	Apex          float64
	Jumps         int
	Landings      int
	AirborneTime  float64
	BlockedTicks  int
	AdvanceTime   Stats
	Scheduler     *sim.SchedulerStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Stride Simulation Report

## Configuration
- **Simulated Time:** {{printf "%.2f" .Duration}} s{{if .Realtime}} (wall clock){{else}} (frames of {{printf "%.4f" .FrameDelta}} s){{end}}
- **Tick Step:** {{printf "%.4f" .Config.Sim.Step}} s, max {{.Config.Sim.MaxTicksPerAdvance}} ticks per advance
- **Acceleration:** {{.Config.Motion.Acceleration}} m/s²
- **Drag:** {{.Config.Motion.Drag}} ({{.Config.Motion.DragMode}})
- **Max XZ Speed:** {{printf "%.2f" .Config.Motion.MaxXZSpeed}} m/s
- **Jump Height:** {{.Config.Motion.JumpHeight}} m
- **Aim Pivot:** {{if .Config.Aim.Enabled}}enabled{{else}}disabled{{end}}

## Motion Results
- **Ticks:** {{.Scheduler.Ticks}} ({{.Frames}} frames, {{printf "%.3f" .Scheduler.DroppedTime}} s dropped)
- **Final Position:** ({{printf "%.2f" .FinalPosition.X}}, {{printf "%.2f" .FinalPosition.Y}}, {{printf "%.2f" .FinalPosition.Z}})
- **Final Phase:** {{.FinalPhase}}
- **Max XZ Speed:** {{printf "%.3f" .MaxXZSpeed}} m/s
- **Apex Height:** {{printf "%.3f" .Apex}} m
- **Jumps / Landings:** {{.Jumps}} / {{.Landings}}
- **Airborne Time:** {{printf "%.2f" .AirborneTime}} s
- **Ticks Against Walls:** {{.BlockedTicks}}

## Tick Timing
{{range .Scheduler.Systems}}- **{{.Name}}:** {{.ExecutionCount}} runs, avg {{.AvgDuration}}, min {{.MinDuration}}, max {{.MaxDuration}}
{{end}}
{{if .AdvanceTime.Samples}}
## Advance Time (Frame)
  - **Avg:** {{.AdvanceTime.Avg}}
  - **Min:** {{.AdvanceTime.Min}}
  - **Max:** {{.AdvanceTime.Max}}
{{end}}`

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
