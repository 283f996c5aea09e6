// Package aim turns a 2D aim input into the local rotation of an aim pivot whose
// yaw is held within a fixed arc around the parent's forward direction.
package aim

import "github.com/plus3/stride/geom"

// Yaw bounds of the pivot relative to its parent, in degrees.
const (
	YawMin = -90.0
	YawMax = 90.0
)

type Option func(*Pivot)

// WithCameraRelative rotates the aim input by the camera's heading before building
// the look rotation, the same way movement input is treated. Without it the input
// is used as a world-space direction.
func WithCameraRelative() Option {
	return func(p *Pivot) {
		p.cameraRelative = true
	}
}

// WithRotation sets the pivot's initial local rotation.
func WithRotation(q geom.Quat) Option {
	return func(p *Pivot) {
		p.rotation = q
	}
}

// Pivot owns the local rotation of an aim pivot and the aim toggle.
type Pivot struct {
	rotation       geom.Quat
	aiming         bool
	cameraRelative bool
}

func NewPivot(options ...Option) *Pivot {
	p := &Pivot{rotation: geom.Identity}
	for _, option := range options {
		option(p)
	}
	return p
}

// Orient points the pivot along input and returns its new local rotation. parent is
// the world rotation of the pivot's parent. The look rotation is converted to the
// parent's frame, its yaw is clamped with geom.ClampAngle to [YawMin, YawMax] and
// pitch and roll are kept as they are. A zero input leaves the rotation unchanged.
func (p *Pivot) Orient(input geom.Vec2, cameraForward geom.Vec3, parent geom.Quat) geom.Quat {
	if input.Len() == 0 {
		return p.rotation
	}

	dir := input.XZ()
	if p.cameraRelative {
		heading := geom.LookRotation(cameraForward.Horizontal(), geom.Up)
		dir = heading.Rotate(dir)
	}

	world := geom.LookRotation(dir, geom.Up)
	local := parent.Inverse().Mul(world).Euler()
	local.Y = geom.ClampAngle(local.Y, YawMin, YawMax)

	p.rotation = geom.FromEuler(local)
	return p.rotation
}

// Rotation returns the pivot's local rotation.
func (p *Pivot) Rotation() geom.Quat {
	return p.rotation
}

// WorldRotation returns the pivot's rotation in world space under parent.
func (p *Pivot) WorldRotation(parent geom.Quat) geom.Quat {
	return parent.Mul(p.rotation)
}

// Toggle flips the aiming flag and returns the new value.
func (p *Pivot) Toggle() bool {
	p.aiming = !p.aiming
	return p.aiming
}

func (p *Pivot) Aiming() bool {
	return p.aiming
}

func (p *Pivot) SetAiming(aiming bool) {
	p.aiming = aiming
}

func (p *Pivot) CameraRelative() bool {
	return p.cameraRelative
}
