package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/plus3/stride/aim"
	"github.com/plus3/stride/camera"
	"github.com/plus3/stride/config"
	"github.com/plus3/stride/controller"
	"github.com/plus3/stride/geom"
	"github.com/plus3/stride/logger"
	"github.com/plus3/stride/motion"
	"github.com/plus3/stride/sim"
	"github.com/plus3/stride/terrain"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	duration := flag.Float64("duration", 10, "Simulated seconds to run.")
	fps := flag.Float64("fps", 60, "Frame rate used to feed the fixed-step scheduler.")
	realtime := flag.Bool("realtime", false, "Run against the wall clock instead of as fast as possible.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger.Init(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	log := logger.L()

	report, err := run(cfg, *duration, 1 / *fps, *realtime)
	if err != nil {
		log.Error("simulation failed", "error", err)
		os.Exit(1)
	}

	fmt.Println("\n\n--- Simulation Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Error("failed to generate report", "error", err)
		os.Exit(1)
	}
	fmt.Println("--- End of Report ---")
}

// tracker accumulates motion statistics after every controller tick.
type tracker struct {
	report *Report
	ctrl   *controller.Controller
	body   *terrain.Body
	prev   motion.Phase
	wasUp  bool
}

func (t *tracker) Execute(frame *sim.UpdateFrame) {
	r := t.report
	v := t.ctrl.Velocity()
	r.MaxXZSpeed = math.Max(r.MaxXZSpeed, v.Horizontal().Len())
	r.Apex = math.Max(r.Apex, t.body.HeightAboveSurface())

	up := v.Y > 0
	if up && !t.wasUp && t.ctrl.Phase() == motion.Grounded {
		r.Jumps++
	}
	t.wasUp = up

	if !t.body.IsGrounded() {
		r.AirborneTime += frame.DeltaTime
	}
	if t.prev == motion.Airborne && t.ctrl.Phase() == motion.Grounded && frame.Tick > 0 {
		r.Landings++
	}
	t.prev = t.ctrl.Phase()

	intended := v.Horizontal().Scale(frame.DeltaTime)
	if intended.Len() > 1e-6 && t.body.LastMove().Horizontal().Len() < intended.Len()/2 {
		r.BlockedTicks++
	}
}

func run(cfg *config.File, duration, frameDelta float64, realtime bool) (*Report, error) {
	log := logger.L()

	motionCfg, err := cfg.Motion.Config()
	if err != nil {
		return nil, err
	}

	field := buildCourse()
	body := terrain.NewBody(field, terrain.WithPosition(geom.Vec3{X: 0.5, Z: 0.5}))
	rig := camera.NewOrbit(
		camera.WithRadius(cfg.Camera.Radius),
		camera.WithAzimuth(geom.Deg2Rad(cfg.Camera.Azimuth)),
		camera.WithElevation(geom.Deg2Rad(cfg.Camera.Elevation)),
		camera.WithTarget(body.Position()),
	)
	input := defaultScript()

	options := []controller.Option{
		controller.WithEnvironment(cfg.Motion.Environment()),
		controller.WithInput(input),
		controller.WithLogger(log.With("component", "controller")),
	}
	if cfg.Aim.Enabled {
		var aimOptions []aim.Option
		if cfg.Aim.CameraRelative {
			aimOptions = append(aimOptions, aim.WithCameraRelative())
		}
		options = append(options, controller.WithAim(aimOptions...))
	}

	ctrl, err := controller.New(motionCfg, body, rig, options...)
	if err != nil {
		return nil, err
	}

	scheduler := sim.NewScheduler(cfg.Sim.Step, sim.WithMaxTicksPerAdvance(cfg.Sim.MaxTicksPerAdvance))
	report := &Report{
		Duration:   duration,
		FrameDelta: frameDelta,
		Realtime:   realtime,
		Config:     cfg,
		AdvanceTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	scheduler.Register(sim.SystemFunc(func(frame *sim.UpdateFrame) {
		input.advance(float64(frame.Tick) * frame.DeltaTime)
		ctrl.Sample()
	}))
	scheduler.Register(ctrl)
	scheduler.Register(&tracker{report: report, ctrl: ctrl, body: body})
	scheduler.Register(sim.SystemFunc(func(*sim.UpdateFrame) {
		rig.Follow(body.Position())
	}))

	log.Info("starting simulation",
		"duration", duration,
		"step", cfg.Sim.Step,
		"realtime", realtime,
		"aim", cfg.Aim.Enabled)

	if realtime {
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(duration*float64(time.Second)))
		defer cancel()
		scheduler.Run(ctx, time.Duration(frameDelta*float64(time.Second)))
	} else {
		for elapsed := 0.0; elapsed < duration; elapsed += frameDelta {
			start := time.Now()
			if scheduler.Advance(frameDelta) > 0 {
				report.AdvanceTime.Samples = append(report.AdvanceTime.Samples, time.Since(start))
			}
			report.Frames++
		}
	}

	report.FinalPosition = body.Position()
	report.FinalPhase = ctrl.Phase().String()
	report.Scheduler = scheduler.GetStats()
	report.AdvanceTime.Finalize()

	log.Info("simulation finished",
		"ticks", report.Scheduler.Ticks,
		"position", fmt.Sprintf("%.2f,%.2f,%.2f", report.FinalPosition.X, report.FinalPosition.Y, report.FinalPosition.Z),
		"landings", report.Landings)
	return report, nil
}
