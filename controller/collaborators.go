package controller

import (
	"github.com/plus3/stride/geom"
	"github.com/plus3/stride/motion"
)

// Mover is the collision-aware body the controller drives. IsGrounded is read once
// per tick before integration; Move receives that tick's displacement.
type Mover interface {
	IsGrounded() bool
	Move(displacement geom.Vec3)
}

// Oriented is implemented by movers that know which way the character faces.
type Oriented interface {
	Rotation() geom.Quat
}

// CameraRig supplies the view direction that movement input is relative to.
type CameraRig interface {
	Forward() geom.Vec3
}

// InputSource is polled once per visual frame. JumpPressed and AimTogglePressed
// report edges: true only on the frame the button went down.
type InputSource interface {
	Axes() (horizontal, vertical float64)
	JumpPressed() bool
	AimTogglePressed() bool
}

// AnimationSink receives locomotion parameters every tick.
type AnimationSink interface {
	SetParams(params motion.AnimationParams)
}
