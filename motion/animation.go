package motion

import "github.com/plus3/stride/geom"

// AnimationParams are the values a locomotion blend tree consumes each tick.
type AnimationParams struct {
	// Forward is the local forward/backward speed ratio.
	Forward float64
	// Strafe is the local right/left speed ratio.
	Strafe float64
	Aiming bool
}

// AnimationParamsFor expresses the horizontal part of velocity in the frame of
// facing and scales it by Drag/MaxXZSpeed. With a zero MaxXZSpeed both ratios are 0.
func AnimationParamsFor(velocity geom.Vec3, facing geom.Quat, cfg Config) AnimationParams {
	if cfg.MaxXZSpeed == 0 {
		return AnimationParams{}
	}
	local := facing.Inverse().Rotate(velocity.Horizontal())
	scale := cfg.Drag / cfg.MaxXZSpeed
	return AnimationParams{
		Forward: local.Z * scale,
		Strafe:  local.X * scale,
	}
}
