package motion

import (
	"fmt"
	"math"

	"github.com/plus3/stride/geom"
)

// Integrator advances a State by one fixed tick. It holds only immutable tuning and
// may be shared by code that steps the same character.
type Integrator struct {
	cfg     Config
	env     Environment
	jumpVel float64
}

// NewIntegrator validates cfg and precomputes the jump take-off speed.
func NewIntegrator(cfg Config, env Environment) (*Integrator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !env.Gravity.IsFinite() {
		return nil, fmt.Errorf("%w: gravity must be finite, got %v", ErrInvalidConfig, env.Gravity)
	}

	return &Integrator{
		cfg:     cfg,
		env:     env,
		jumpVel: JumpSpeed(env.Gravity.Len(), cfg.JumpHeight),
	}, nil
}

// JumpSpeed returns the take-off speed that reaches height under constant gravity.
func JumpSpeed(gravity, height float64) float64 {
	return math.Sqrt(2 * gravity * height)
}

func (in *Integrator) Config() Config {
	return in.cfg
}

func (in *Integrator) Environment() Environment {
	return in.env
}

// Step integrates st over dt seconds and returns the displacement the mover should
// apply. The ground query is read once, before any adjustment. cameraForward only
// contributes its horizontal heading.
//
// A dt that is not positive and finite, a nil ground query or a nil state are
// caller errors; st is left untouched in those cases.
func (in *Integrator) Step(dt float64, ground GroundQuery, cameraForward geom.Vec3, st *State) (geom.Vec3, error) {
	if !(dt > 0) || math.IsInf(dt, 1) {
		return geom.Zero, fmt.Errorf("%w: got %v", ErrInvalidTimestep, dt)
	}
	if ground == nil {
		return geom.Zero, ErrNoGroundQuery
	}
	if st == nil {
		return geom.Zero, ErrNilState
	}

	st.phase = PhaseOf(ground.IsGrounded())
	grounded := st.phase == Grounded

	if grounded {
		in.snapToGround(st)
	} else {
		in.applyGravity(st, dt)
	}
	if grounded {
		in.accelerate(st, dt, cameraForward)
		in.applyDrag(st, dt)
		in.jump(st)
	}
	in.limitXZ(st)

	return st.Velocity.Scale(dt), nil
}

// snapToGround removes the velocity component along gravity so speed gathered
// while falling does not carry into ground movement.
func (in *Integrator) snapToGround(st *State) {
	st.Velocity = st.Velocity.Sub(st.Velocity.Project(in.env.Gravity))
}

func (in *Integrator) applyGravity(st *State, dt float64) {
	st.Velocity = st.Velocity.Add(in.env.Gravity.Scale(dt))
}

// accelerate pushes along the input direction rotated by the camera's yaw.
func (in *Integrator) accelerate(st *State, dt float64, cameraForward geom.Vec3) {
	heading := CameraHeading(cameraForward)
	move := heading.Rotate(st.Input.XZ())
	st.Velocity = st.Velocity.Add(move.Scale(in.cfg.Acceleration * dt))
}

func (in *Integrator) applyDrag(st *State, dt float64) {
	st.Velocity = st.Velocity.Scale(in.dragFactor(dt))
}

func (in *Integrator) dragFactor(dt float64) float64 {
	if in.cfg.DragMode == DragExponential {
		return math.Exp(-in.cfg.Drag * dt)
	}
	return 1 - in.cfg.Drag*dt
}

func (in *Integrator) jump(st *State) {
	if st.consumeJump() {
		st.Velocity.Y += in.jumpVel
	}
}

// limitXZ caps horizontal speed and leaves vertical speed alone.
func (in *Integrator) limitXZ(st *State) {
	xz := st.Velocity.Horizontal().ClampLen(in.cfg.MaxXZSpeed)
	st.Velocity = xz.Add(st.Velocity.Vertical())
}

// CameraHeading returns the yaw-only rotation that faces along forward flattened
// onto the ground plane. A camera looking straight up or down has no heading and
// yields the identity rotation.
func CameraHeading(forward geom.Vec3) geom.Quat {
	return geom.LookRotation(forward.Horizontal(), geom.Up)
}
