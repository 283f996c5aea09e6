package aim_test

import (
	"math"
	"testing"

	"github.com/plus3/stride/aim"
	"github.com/plus3/stride/geom"
	"github.com/stretchr/testify/assert"
)

func angleDiff(a, b float64) float64 {
	return math.Abs(math.Mod(a-b+540, 360) - 180)
}

func yawOf(q geom.Quat) float64 {
	return q.Euler().Y
}

func TestOrientYaw(t *testing.T) {
	tests := []struct {
		name  string
		input geom.Vec2
		yaw   float64
	}{
		{"forward", geom.Vec2{Y: 1}, 0},
		{"right edge", geom.Vec2{X: 1}, 90},
		{"forward left", geom.Vec2{X: -1, Y: 1}, 315},
		{"forward right", geom.Vec2{X: 1, Y: 1}, 45},
		{"behind snaps to bound", geom.Vec2{Y: -1}, 90},
		{"behind right snaps to bound", geom.Vec2{X: 1, Y: -1}, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := aim.NewPivot()
			got := p.Orient(tt.input, geom.Forward, geom.Identity)

			assert.Less(t, angleDiff(yawOf(got), tt.yaw), 1e-6, "yaw %v", yawOf(got))
			assert.Equal(t, got, p.Rotation())
		})
	}
}

func TestOrientZeroInputKeepsRotation(t *testing.T) {
	start := geom.Yaw(30)
	p := aim.NewPivot(aim.WithRotation(start))

	assert.Equal(t, start, p.Orient(geom.Vec2{}, geom.Right, geom.Identity))
	assert.Equal(t, start, p.Rotation())
}

func TestOrientParentFrame(t *testing.T) {
	t.Run("local yaw is relative to parent", func(t *testing.T) {
		p := aim.NewPivot()
		parent := geom.Yaw(45)
		local := p.Orient(geom.Vec2{Y: 1}, geom.Forward, parent)

		assert.Less(t, angleDiff(yawOf(local), 315), 1e-6)
		assert.True(t, p.WorldRotation(parent).ApproxEqual(geom.Identity, 1e-9))
	})

	t.Run("clamped behind the parent", func(t *testing.T) {
		p := aim.NewPivot()
		local := p.Orient(geom.Vec2{Y: 1}, geom.Forward, geom.Yaw(180))
		assert.Less(t, angleDiff(yawOf(local), 90), 1e-6)
	})

	t.Run("pitch is untouched", func(t *testing.T) {
		p := aim.NewPivot()
		local := p.Orient(geom.Vec2{Y: 1}, geom.Forward, geom.FromEuler(geom.Vec3{X: 20}))

		e := local.Euler()
		assert.Less(t, angleDiff(e.X, 340), 1e-6)
		assert.Less(t, angleDiff(e.Y, 0), 1e-6)
	})
}

func TestOrientCameraRelative(t *testing.T) {
	camera := geom.Vec3{X: 1, Y: -0.5, Z: 1}

	raw := aim.NewPivot()
	assert.Less(t, angleDiff(yawOf(raw.Orient(geom.Vec2{Y: 1}, camera, geom.Identity)), 0), 1e-6)

	relative := aim.NewPivot(aim.WithCameraRelative())
	assert.True(t, relative.CameraRelative())
	assert.Less(t, angleDiff(yawOf(relative.Orient(geom.Vec2{Y: 1}, camera, geom.Identity)), 45), 1e-6)
}

func TestToggle(t *testing.T) {
	p := aim.NewPivot()
	assert.False(t, p.Aiming())
	assert.True(t, p.Toggle())
	assert.False(t, p.Toggle())

	p.SetAiming(true)
	assert.True(t, p.Aiming())
}
