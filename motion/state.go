package motion

import "github.com/plus3/stride/geom"

// Phase is the contact state reported by the ground query for the current tick.
type Phase uint8

const (
	Airborne Phase = iota
	Grounded
)

func (p Phase) String() string {
	if p == Grounded {
		return "grounded"
	}
	return "airborne"
}

// PhaseOf converts a ground query result into a Phase.
func PhaseOf(grounded bool) Phase {
	if grounded {
		return Grounded
	}
	return Airborne
}

// GroundQuery reports whether the character currently touches walkable ground.
type GroundQuery interface {
	IsGrounded() bool
}

// Ground is a constant GroundQuery, handy for drivers that already know the answer.
type Ground bool

func (g Ground) IsGrounded() bool {
	return bool(g)
}

// State is the mutable motion state of one character.
//
// Velocity and Input may be written by the owner between ticks. The jump latch is
// set only through RequestJump and cleared only by the integrator when it applies
// the impulse, so a single request produces at most one jump no matter how many
// ticks pass before the character is grounded.
type State struct {
	// Velocity in m/s, world space. Y is the vertical component.
	Velocity geom.Vec3
	// Input is the normalized movement request on the ground plane.
	Input geom.Vec2

	jumpPending bool
	phase       Phase
}

// SetInput stores a movement request, normalizing it. Inputs shorter than the
// normalization epsilon become zero.
func (s *State) SetInput(v geom.Vec2) {
	s.Input = v.Normalize()
}

// RequestJump arms the jump latch.
func (s *State) RequestJump() {
	s.jumpPending = true
}

// JumpPending reports whether a jump request is waiting to be consumed.
func (s *State) JumpPending() bool {
	return s.jumpPending
}

// consumeJump clears the latch and reports whether it was set.
func (s *State) consumeJump() bool {
	pending := s.jumpPending
	s.jumpPending = false
	return pending
}

// Phase returns the contact phase observed by the most recent Step.
func (s *State) Phase() Phase {
	return s.phase
}
