// Package controller drives one character: it samples input each frame, runs the
// motion integrator each fixed tick, orients the optional aim pivot and hands the
// resulting displacement to a mover.
package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/plus3/stride/aim"
	"github.com/plus3/stride/geom"
	"github.com/plus3/stride/motion"
	"github.com/plus3/stride/sim"
)

// ErrMissingCollaborator is returned by New when a required collaborator is nil.
var ErrMissingCollaborator = errors.New("controller: missing collaborator")

type Option func(*Controller)

// WithEnvironment overrides the default earth gravity.
func WithEnvironment(env motion.Environment) Option {
	return func(c *Controller) {
		c.env = env
	}
}

// WithAim enables the aim pivot.
func WithAim(options ...aim.Option) Option {
	return func(c *Controller) {
		c.pivot = aim.NewPivot(options...)
	}
}

func WithInput(input InputSource) Option {
	return func(c *Controller) {
		if !isNil(input) {
			c.input = input
		}
	}
}

func WithAnimationSink(sink AnimationSink) Option {
	return func(c *Controller) {
		if !isNil(sink) {
			c.sink = sink
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		c.logger = logger
	}
}

// Controller owns the motion state of one character. It is not safe for
// concurrent use; Sample and FixedUpdate are expected on the same goroutine.
type Controller struct {
	integrator *motion.Integrator
	env        motion.Environment
	state      motion.State

	mover  Mover
	camera CameraRig
	input  InputSource
	sink   AnimationSink
	pivot  *aim.Pivot
	logger *slog.Logger

	aimInput geom.Vec2
	params   motion.AnimationParams
	ticked   bool
}

var _ sim.System = (*Controller)(nil)

// isNil reports whether v is nil or an interface holding a nil pointer, map,
// slice, channel or func.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// New builds a controller for mover viewed through cam. cfg is validated.
func New(cfg motion.Config, mover Mover, cam CameraRig, options ...Option) (*Controller, error) {
	if isNil(mover) {
		return nil, fmt.Errorf("%w: mover", ErrMissingCollaborator)
	}
	if isNil(cam) {
		return nil, fmt.Errorf("%w: camera", ErrMissingCollaborator)
	}

	c := &Controller{
		env:    motion.DefaultEnvironment(),
		mover:  mover,
		camera: cam,
		logger: slog.Default(),
	}
	for _, option := range options {
		option(c)
	}

	integrator, err := motion.NewIntegrator(cfg, c.env)
	if err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}
	c.integrator = integrator
	return c, nil
}

// Sample polls the input source. Call it once per visual frame, before the
// scheduler advances. Without an input source it does nothing.
func (c *Controller) Sample() {
	if c.input == nil {
		return
	}

	h, v := c.input.Axes()
	c.SetInput(h, v)

	if c.input.JumpPressed() {
		c.state.RequestJump()
	}
	if c.input.AimTogglePressed() && c.pivot != nil {
		aiming := c.pivot.Toggle()
		c.logger.Debug("aim toggled", "aiming", aiming)
	}
}

// SetInput sets the movement request directly. The movement direction is
// normalized; the aim direction keeps the raw axes.
func (c *Controller) SetInput(horizontal, vertical float64) {
	raw := geom.Vec2{X: horizontal, Y: vertical}
	c.state.SetInput(raw)
	c.aimInput = raw
}

// RequestJump arms a single jump, consumed on the next grounded tick.
func (c *Controller) RequestJump() {
	c.state.RequestJump()
}

// FixedUpdate advances the character by one tick of dt seconds.
func (c *Controller) FixedUpdate(dt float64) error {
	prev := c.state.Phase()
	forward := c.camera.Forward()

	displacement, err := c.integrator.Step(dt, c.mover, forward, &c.state)
	if err != nil {
		return fmt.Errorf("controller: integrate: %w", err)
	}
	if c.ticked && prev != c.state.Phase() {
		c.logger.Debug("phase changed", "from", prev, "to", c.state.Phase(), "velocity_y", c.state.Velocity.Y)
	}
	c.ticked = true

	facing := c.facing()
	c.params = motion.AnimationParamsFor(c.state.Velocity, facing, c.integrator.Config())
	c.params.Aiming = c.Aiming()
	if c.sink != nil {
		c.sink.SetParams(c.params)
	}

	if c.pivot != nil {
		c.pivot.Orient(c.aimInput, forward, facing)
	}

	c.mover.Move(displacement)
	return nil
}

// Execute runs one tick as a scheduler system. Errors are logged, not returned.
func (c *Controller) Execute(frame *sim.UpdateFrame) {
	if err := c.FixedUpdate(frame.DeltaTime); err != nil {
		c.logger.Error("fixed update failed", "tick", frame.Tick, "error", err)
	}
}

// Reconfigure swaps the tuning. Call it between ticks; the motion state carries over.
func (c *Controller) Reconfigure(cfg motion.Config) error {
	integrator, err := motion.NewIntegrator(cfg, c.env)
	if err != nil {
		return fmt.Errorf("controller: reconfigure: %w", err)
	}
	c.integrator = integrator
	c.logger.Info("motion config updated",
		"acceleration", cfg.Acceleration,
		"drag", cfg.Drag,
		"max_xz_speed", cfg.MaxXZSpeed,
		"jump_height", cfg.JumpHeight,
		"drag_mode", cfg.DragMode)
	return nil
}

func (c *Controller) facing() geom.Quat {
	if o, ok := c.mover.(Oriented); ok {
		return o.Rotation()
	}
	return geom.Identity
}

func (c *Controller) Config() motion.Config {
	return c.integrator.Config()
}

func (c *Controller) Velocity() geom.Vec3 {
	return c.state.Velocity
}

func (c *Controller) Phase() motion.Phase {
	return c.state.Phase()
}

func (c *Controller) JumpPending() bool {
	return c.state.JumpPending()
}

// Input returns the normalized movement request.
func (c *Controller) Input() geom.Vec2 {
	return c.state.Input
}

// Params returns the animation parameters computed by the last tick.
func (c *Controller) Params() motion.AnimationParams {
	return c.params
}

// Aiming reports the aim toggle. It is always false without an aim pivot.
func (c *Controller) Aiming() bool {
	return c.pivot != nil && c.pivot.Aiming()
}

// AimRotation returns the aim pivot's local rotation, or Identity without a pivot.
func (c *Controller) AimRotation() geom.Quat {
	if c.pivot == nil {
		return geom.Identity
	}
	return c.pivot.Rotation()
}

// AimWorldRotation returns the aim pivot's rotation in world space.
func (c *Controller) AimWorldRotation() geom.Quat {
	if c.pivot == nil {
		return c.facing()
	}
	return c.pivot.WorldRotation(c.facing())
}
