// Package motion implements the fixed-step velocity integrator for a kinematic
// player character: ground snap, gravity, camera-relative acceleration, ground drag,
// jump impulse and horizontal speed clamping, applied in that order every tick.
package motion

import (
	"errors"
	"fmt"
	"math"

	"github.com/plus3/stride/geom"
)

// StandardGravity is the magnitude of the default downward acceleration in m/s².
const StandardGravity = 9.81

// DefaultMaxXZSpeed is 30 km/h expressed in m/s.
const DefaultMaxXZSpeed = 30.0 * 1000 / (60 * 60)

// DragMode selects how ground drag decays velocity.
type DragMode int

const (
	// DragLinear scales velocity by (1 - drag*dt). It is a first-order approximation
	// of exponential decay and overshoots when drag*dt approaches 1.
	DragLinear DragMode = iota
	// DragExponential scales velocity by exp(-drag*dt), independent of tick rate.
	DragExponential
)

func (m DragMode) String() string {
	switch m {
	case DragLinear:
		return "linear"
	case DragExponential:
		return "exponential"
	default:
		return fmt.Sprintf("DragMode(%d)", int(m))
	}
}

// ParseDragMode maps a config string to a DragMode. The empty string selects DragLinear.
func ParseDragMode(s string) (DragMode, error) {
	switch s {
	case "", "linear":
		return DragLinear, nil
	case "exponential", "exp":
		return DragExponential, nil
	default:
		return DragLinear, fmt.Errorf("unknown drag mode %q", s)
	}
}

// Config holds the per-character tuning. It is fixed for the lifetime of an Integrator.
type Config struct {
	// Acceleration applied along the camera-relative input direction while grounded, m/s².
	Acceleration float64
	// Drag is the per-second decay coefficient applied while grounded.
	Drag float64
	// MaxXZSpeed caps horizontal speed, m/s.
	MaxXZSpeed float64
	// JumpHeight is the apex height a jump from rest reaches, m.
	JumpHeight float64
	DragMode   DragMode
}

// DefaultConfig returns a tuning that feels reasonable at a 50 Hz tick.
func DefaultConfig() Config {
	return Config{
		Acceleration: 40,
		Drag:         5,
		MaxXZSpeed:   DefaultMaxXZSpeed,
		JumpHeight:   1.2,
		DragMode:     DragLinear,
	}
}

// Validate reports every field that is negative or not finite.
func (c Config) Validate() error {
	var errs []error
	check := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be a finite non-negative number, got %v", ErrInvalidConfig, name, v))
		}
	}
	check("acceleration", c.Acceleration)
	check("drag", c.Drag)
	check("max_xz_speed", c.MaxXZSpeed)
	check("jump_height", c.JumpHeight)
	if c.DragMode != DragLinear && c.DragMode != DragExponential {
		errs = append(errs, fmt.Errorf("%w: unknown drag mode %v", ErrInvalidConfig, c.DragMode))
	}
	return errors.Join(errs...)
}

// Environment carries the physics constants supplied by the host world.
type Environment struct {
	Gravity geom.Vec3
}

// DefaultEnvironment returns standard earth gravity pointing down.
func DefaultEnvironment() Environment {
	return Environment{Gravity: geom.Vec3{Y: -StandardGravity}}
}
