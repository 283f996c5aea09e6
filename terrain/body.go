package terrain

import (
	"math"

	"github.com/plus3/stride/geom"
)

const (
	DefaultRadius     = 0.3
	DefaultStepHeight = 0.3
	DefaultSkin       = 0.01
)

type BodyOption func(*Body)

// WithRadius sets the half-width of the body's square footprint.
func WithRadius(r float64) BodyOption {
	return func(b *Body) {
		b.radius = r
	}
}

// WithStepHeight sets the tallest ledge the body climbs without jumping.
func WithStepHeight(h float64) BodyOption {
	return func(b *Body) {
		b.stepHeight = h
	}
}

// WithSkin sets the distance above the surface that still counts as contact.
func WithSkin(s float64) BodyOption {
	return func(b *Body) {
		b.skin = s
	}
}

// WithPosition sets the initial feet position.
func WithPosition(p geom.Vec3) BodyOption {
	return func(b *Body) {
		b.position = p
	}
}

// WithFacingFollowsMotion turns the body toward its horizontal displacement after
// every Move. Without it the facing only changes through SetFacing.
func WithFacingFollowsMotion() BodyOption {
	return func(b *Body) {
		b.faceMotion = true
	}
}

// Body is a kinematic character volume on a Field. It implements the mover
// contract (IsGrounded, Move) and reports its facing through Rotation.
type Body struct {
	field      *Field
	position   geom.Vec3
	radius     float64
	stepHeight float64
	skin       float64

	grounded   bool
	faceMotion bool
	facing     geom.Quat
	lastMove   geom.Vec3
}

// NewBody places a body on field. A body that starts below the surface is lifted onto it.
func NewBody(field *Field, options ...BodyOption) *Body {
	b := &Body{
		field:      field,
		radius:     DefaultRadius,
		stepHeight: DefaultStepHeight,
		skin:       DefaultSkin,
		facing:     geom.Identity,
	}
	for _, option := range options {
		option(b)
	}
	b.settle(0)
	return b
}

// IsGrounded reports whether the last Move ended in contact with the surface.
func (b *Body) IsGrounded() bool {
	return b.grounded
}

// Move applies displacement d. Horizontal motion is resolved one axis at a time so
// the body slides along walls; a column taller than the step height blocks the
// axis that would enter it. Vertical motion then settles onto the surface.
func (b *Body) Move(d geom.Vec3) {
	start := b.position

	if d.X != 0 {
		b.tryHorizontal(geom.Vec3{X: b.position.X + d.X, Y: b.position.Y, Z: b.position.Z})
	}
	if d.Z != 0 {
		b.tryHorizontal(geom.Vec3{X: b.position.X, Y: b.position.Y, Z: b.position.Z + d.Z})
	}

	b.position.Y += d.Y
	b.settle(d.Y)

	b.lastMove = b.position.Sub(start)
	if flat := b.lastMove.Horizontal(); b.faceMotion && flat.LenSq() > 1e-12 {
		b.facing = geom.LookRotation(flat, geom.Up)
	}
}

func (b *Body) tryHorizontal(target geom.Vec3) {
	surface := b.field.HeightUnder(target.X, target.Z, b.radius)
	if surface > b.position.Y+b.stepHeight {
		return
	}
	b.position.X, b.position.Z = target.X, target.Z
}

// settle resolves the feet against the surface after a vertical move of dy.
func (b *Body) settle(dy float64) {
	surface := b.field.HeightUnder(b.position.X, b.position.Z, b.radius)
	switch {
	case b.position.Y <= surface:
		b.position.Y = surface
		b.grounded = true
	case dy <= 0 && b.position.Y-surface <= b.skin:
		b.position.Y = surface
		b.grounded = true
	default:
		b.grounded = false
	}
}

func (b *Body) Position() geom.Vec3 {
	return b.position
}

// Teleport moves the body without collision and re-evaluates contact.
func (b *Body) Teleport(p geom.Vec3) {
	b.position = p
	b.settle(0)
}

// Rotation returns the facing of the body.
func (b *Body) Rotation() geom.Quat {
	return b.facing
}

// SetFacing replaces the facing. With WithFacingFollowsMotion the next horizontal
// Move overrides it.
func (b *Body) SetFacing(q geom.Quat) {
	b.facing = q
}

// LastMove returns the displacement actually applied by the last Move.
func (b *Body) LastMove() geom.Vec3 {
	return b.lastMove
}

// HeightAboveSurface returns the distance from the feet to the surface below.
func (b *Body) HeightAboveSurface() float64 {
	return math.Max(0, b.position.Y-b.field.HeightUnder(b.position.X, b.position.Z, b.radius))
}

func (b *Body) Radius() float64 {
	return b.radius
}
