// Package config loads the tuning and runtime settings of a stride host from a
// YAML file with STRIDE_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/plus3/stride/geom"
	"github.com/plus3/stride/logger"
	"github.com/plus3/stride/motion"
)

// ErrInvalid wraps every validation failure reported by File.Validate.
var ErrInvalid = errors.New("config: invalid")

type File struct {
	Motion  MotionConfig  `yaml:"motion"`
	Aim     AimConfig     `yaml:"aim"`
	Sim     SimConfig     `yaml:"sim"`
	Camera  CameraConfig  `yaml:"camera"`
	Logging LoggingConfig `yaml:"logging"`
}

type MotionConfig struct {
	Acceleration float64 `yaml:"acceleration" env:"STRIDE_MOTION_ACCELERATION"`
	Drag         float64 `yaml:"drag" env:"STRIDE_MOTION_DRAG"`
	MaxXZSpeed   float64 `yaml:"max_xz_speed" env:"STRIDE_MOTION_MAX_XZ_SPEED"`
	JumpHeight   float64 `yaml:"jump_height" env:"STRIDE_MOTION_JUMP_HEIGHT"`
	DragMode     string  `yaml:"drag_mode" env:"STRIDE_MOTION_DRAG_MODE"`
	// Gravity is the magnitude of the downward acceleration in m/s².
	Gravity float64 `yaml:"gravity" env:"STRIDE_MOTION_GRAVITY"`
}

type AimConfig struct {
	Enabled        bool `yaml:"enabled" env:"STRIDE_AIM_ENABLED"`
	CameraRelative bool `yaml:"camera_relative" env:"STRIDE_AIM_CAMERA_RELATIVE"`
}

type SimConfig struct {
	// Step is the fixed tick length in seconds.
	Step               float64 `yaml:"step" env:"STRIDE_SIM_STEP"`
	MaxTicksPerAdvance int     `yaml:"max_ticks_per_advance" env:"STRIDE_SIM_MAX_TICKS_PER_ADVANCE"`
}

// CameraConfig angles are in degrees.
type CameraConfig struct {
	Radius     float64 `yaml:"radius" env:"STRIDE_CAMERA_RADIUS"`
	Azimuth    float64 `yaml:"azimuth" env:"STRIDE_CAMERA_AZIMUTH"`
	Elevation  float64 `yaml:"elevation" env:"STRIDE_CAMERA_ELEVATION"`
	OrbitSpeed float64 `yaml:"orbit_speed" env:"STRIDE_CAMERA_ORBIT_SPEED"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" env:"STRIDE_LOG_LEVEL"`
	Format string `yaml:"format" env:"STRIDE_LOG_FORMAT"`
}

// Default returns the settings used when no file is given.
func Default() *File {
	m := motion.DefaultConfig()
	return &File{
		Motion: MotionConfig{
			Acceleration: m.Acceleration,
			Drag:         m.Drag,
			MaxXZSpeed:   m.MaxXZSpeed,
			JumpHeight:   m.JumpHeight,
			DragMode:     m.DragMode.String(),
			Gravity:      motion.StandardGravity,
		},
		Sim: SimConfig{
			Step:               0.02,
			MaxTicksPerAdvance: 8,
		},
		Camera: CameraConfig{
			Radius:     6,
			Azimuth:    180,
			Elevation:  30,
			OrbitSpeed: 90,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path over the defaults, applies environment overrides and validates
// the result. An empty path skips the file.
func Load(path string) (*File, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overwrites fields whose STRIDE_* variable is set.
func ApplyEnv(cfg *File) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate reports every invalid field at once.
func (f *File) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...)))
	}

	if _, err := f.Motion.Config(); err != nil {
		errs = append(errs, err)
	}
	if math.IsNaN(f.Motion.Gravity) || math.IsInf(f.Motion.Gravity, 0) || f.Motion.Gravity < 0 {
		fail("motion.gravity must be a finite non-negative number, got %v", f.Motion.Gravity)
	}
	if !(f.Sim.Step > 0) || math.IsInf(f.Sim.Step, 0) {
		fail("sim.step must be positive, got %v", f.Sim.Step)
	}
	if f.Sim.MaxTicksPerAdvance < 0 {
		fail("sim.max_ticks_per_advance must not be negative, got %d", f.Sim.MaxTicksPerAdvance)
	}
	if !(f.Camera.Radius >= 0) {
		fail("camera.radius must not be negative, got %v", f.Camera.Radius)
	}
	if _, err := logger.ParseLevel(f.Logging.Level); err != nil {
		fail("logging.level %q is not one of debug, info, warn, warning, error", f.Logging.Level)
	}
	switch f.Logging.Format {
	case "", "console", "text", "json":
	default:
		fail("logging.format %q is not one of console, text, json", f.Logging.Format)
	}
	return errors.Join(errs...)
}

// Config converts the section into an integrator tuning.
func (m MotionConfig) Config() (motion.Config, error) {
	mode, modeErr := motion.ParseDragMode(m.DragMode)
	if modeErr != nil {
		modeErr = fmt.Errorf("%w: motion.drag_mode: %v", ErrInvalid, modeErr)
	}
	cfg := motion.Config{
		Acceleration: m.Acceleration,
		Drag:         m.Drag,
		MaxXZSpeed:   m.MaxXZSpeed,
		JumpHeight:   m.JumpHeight,
		DragMode:     mode,
	}
	if err := errors.Join(modeErr, cfg.Validate()); err != nil {
		return motion.Config{}, err
	}
	return cfg, nil
}

// Environment returns gravity pointing down with the configured magnitude.
func (m MotionConfig) Environment() motion.Environment {
	return motion.Environment{Gravity: geom.Vec3{Y: -m.Gravity}}
}
