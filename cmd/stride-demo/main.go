package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/stride/aim"
	"github.com/plus3/stride/camera"
	"github.com/plus3/stride/config"
	"github.com/plus3/stride/controller"
	"github.com/plus3/stride/debugui"
	debugui_ebiten "github.com/plus3/stride/debugui/ebiten"
	"github.com/plus3/stride/geom"
	"github.com/plus3/stride/logger"
	"github.com/plus3/stride/motion"
	"github.com/plus3/stride/sim"
	"github.com/plus3/stride/terrain"
)

const (
	screenWidth  = 1280
	screenHeight = 720
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file.")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger.Init(logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	log := logger.L()

	game, err := newGame(cfg)
	if err != nil {
		log.Error("failed to build game", "error", err)
		os.Exit(1)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	log.Info("starting demo", "step", cfg.Sim.Step, "aim", cfg.Aim.Enabled)
	if err := ebiten.RunGame(game); err != nil {
		log.Error("game exited", "error", err)
		os.Exit(1)
	}
	log.Info("demo closed", "ticks", game.scheduler.Ticks())
}

// buildArena raises a staircase, a low wall and a walled pen around the origin.
func buildArena() *terrain.Field {
	field := terrain.NewField(1, 0)
	for i := range int32(6) {
		field.Fill(terrain.Cell{X: 4 + i, Z: -2}, terrain.Cell{X: 4 + i, Z: 2}, 0.25*float64(i+1))
	}
	field.Fill(terrain.Cell{X: 10, Z: -2}, terrain.Cell{X: 13, Z: 2}, 1.5)
	field.Fill(terrain.Cell{X: -6, Z: 5}, terrain.Cell{X: 2, Z: 5}, 0.6)
	field.Fill(terrain.Cell{X: -15, Z: -15}, terrain.Cell{X: 15, Z: -15}, 3)
	field.Fill(terrain.Cell{X: -15, Z: 15}, terrain.Cell{X: 15, Z: 15}, 3)
	field.Fill(terrain.Cell{X: -15, Z: -14}, terrain.Cell{X: -15, Z: 14}, 3)
	field.Fill(terrain.Cell{X: 15, Z: -14}, terrain.Cell{X: 15, Z: 14}, 3)
	return field
}

func newGame(cfg *config.File) (*Game, error) {
	log := logger.L()

	motionCfg, err := cfg.Motion.Config()
	if err != nil {
		return nil, err
	}

	backend := debugui_ebiten.NewImguiBackend("stride", screenWidth, screenHeight)

	field := buildArena()
	body := terrain.NewBody(field, terrain.WithPosition(geom.Vec3{X: 0.5, Y: 2, Z: 0.5}))
	rig := camera.NewOrbit(
		camera.WithRadius(cfg.Camera.Radius),
		camera.WithAzimuth(geom.Deg2Rad(cfg.Camera.Azimuth)),
		camera.WithElevation(geom.Deg2Rad(cfg.Camera.Elevation)),
		camera.WithOrbitSpeed(geom.Deg2Rad(cfg.Camera.OrbitSpeed)),
		camera.WithTarget(body.Position()),
	)
	uiState := &debugui.InputState{}

	options := []controller.Option{
		controller.WithEnvironment(cfg.Motion.Environment()),
		controller.WithInput(&keyboardInput{ui: uiState}),
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

	g := &Game{
		cfg:         cfg,
		field:       field,
		body:        body,
		rig:         rig,
		ctrl:        ctrl,
		backend:     backend,
		scheduler:   sim.NewScheduler(cfg.Sim.Step, sim.WithMaxTicksPerAdvance(cfg.Sim.MaxTicksPerAdvance)),
		uiScheduler: sim.NewScheduler(1.0 / 60.0),
		uiState:     uiState,
		timer:       debugui.NewFrameTimer(),
		prevPos:     body.Position(),
	}

	telemetry := debugui.NewTelemetryPanel(ctrl, 200)
	tuning := debugui.NewTuningPanel(ctrl)
	stats := debugui.NewSchedulerPanel(g.scheduler, 120)

	g.scheduler.Register(sim.SystemFunc(func(*sim.UpdateFrame) {
		g.prevPos = body.Position()
		body.SetFacing(motion.CameraHeading(rig.Forward()))
	}))
	g.scheduler.Register(ctrl)
	g.scheduler.Register(sim.SystemFunc(func(frame *sim.UpdateFrame) {
		rig.Follow(body.Position())
		frame.Commands.Defer(telemetry.Sample)
	}))

	ui := &debugui.ImguiSystem{State: uiState}
	ui.Add(telemetry.Render)
	ui.Add(tuning.Render)
	ui.Add(func() { stats.Render(g.frameDelta) })
	g.uiScheduler.Register(ui)

	return g, nil
}
