package terrain_test

import (
	"testing"

	"github.com/plus3/stride/geom"
	"github.com/plus3/stride/terrain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldColumns(t *testing.T) {
	f := terrain.NewField(1, 0)

	f.SetColumn(terrain.Cell{X: 2, Z: -3}, 1.5)
	f.SetColumn(terrain.Cell{X: -1, Z: 0}, 0.5)

	assert.Equal(t, 1.5, f.Height(terrain.Cell{X: 2, Z: -3}))
	assert.Equal(t, 0.0, f.Height(terrain.Cell{X: 9, Z: 9}))
	assert.Equal(t, terrain.Cell{X: -1, Z: 0}, f.CellAt(-0.5, 0.5))
	assert.Equal(t, 2, f.Len())

	seen := map[terrain.Cell]float64{}
	for c, h := range f.Columns() {
		seen[c] = h
	}
	assert.Equal(t, map[terrain.Cell]float64{
		{X: 2, Z: -3}: 1.5,
		{X: -1, Z: 0}: 0.5,
	}, seen)

	f.SetColumn(terrain.Cell{X: 2, Z: -3}, 0)
	assert.Equal(t, 1, f.Len())
}

func TestFieldFillAndHeightUnder(t *testing.T) {
	f := terrain.NewField(0.5, -1)
	f.Fill(terrain.Cell{X: 0, Z: 0}, terrain.Cell{X: 1, Z: 1}, 2)

	assert.Equal(t, 4, f.Len())
	assert.Equal(t, 2.0, f.HeightUnder(0.6, 0.6, 0.1))
	assert.Equal(t, -1.0, f.HeightUnder(-2, -2, 0.1))
	assert.Equal(t, 2.0, f.HeightUnder(-0.2, 0.3, 0.3), "footprint overlaps the raised block")
}

func TestBodyFallsAndLands(t *testing.T) {
	f := terrain.NewField(1, 0)
	b := terrain.NewBody(f, terrain.WithPosition(geom.Vec3{X: 0.5, Y: 2, Z: 0.5}))
	require.False(t, b.IsGrounded())

	b.Move(geom.Vec3{Y: -1.5})
	assert.False(t, b.IsGrounded())
	assert.InDelta(t, 0.5, b.Position().Y, 1e-12)

	b.Move(geom.Vec3{Y: -1})
	assert.True(t, b.IsGrounded())
	assert.Equal(t, 0.0, b.Position().Y)
	assert.InDelta(t, -0.5, b.LastMove().Y, 1e-12)

	b.Move(geom.Zero)
	assert.True(t, b.IsGrounded(), "resting contact persists")
}

func TestBodyStartsBuriedIsLifted(t *testing.T) {
	f := terrain.NewField(1, 0)
	f.SetColumn(terrain.Cell{}, 1)
	b := terrain.NewBody(f, terrain.WithPosition(geom.Vec3{X: 0.5, Z: 0.5}))

	assert.True(t, b.IsGrounded())
	assert.Equal(t, 1.0, b.Position().Y)
}

func TestBodyWallsAndSteps(t *testing.T) {
	f := terrain.NewField(1, 0)
	f.SetColumn(terrain.Cell{X: 2, Z: 0}, 2)
	f.SetColumn(terrain.Cell{X: 0, Z: 2}, 0.2)

	t.Run("tall column blocks only its axis", func(t *testing.T) {
		b := terrain.NewBody(f, terrain.WithPosition(geom.Vec3{X: 1.5, Z: 0.5}))
		b.Move(geom.Vec3{X: 1, Z: -0.1})

		assert.InDelta(t, 1.5, b.Position().X, 1e-12)
		assert.InDelta(t, 0.4, b.Position().Z, 1e-12)
		assert.True(t, b.IsGrounded())
	})

	t.Run("short column is stepped onto", func(t *testing.T) {
		b := terrain.NewBody(f, terrain.WithPosition(geom.Vec3{X: 0.5, Z: 1.5}))
		b.Move(geom.Vec3{Z: 1})

		assert.InDelta(t, 2.5, b.Position().Z, 1e-12)
		assert.InDelta(t, 0.2, b.Position().Y, 1e-12)
		assert.True(t, b.IsGrounded())
	})

	t.Run("walking off a ledge leaves the ground", func(t *testing.T) {
		b := terrain.NewBody(f, terrain.WithPosition(geom.Vec3{X: 2.5, Y: 2, Z: 0.5}))
		require.True(t, b.IsGrounded())

		b.Move(geom.Vec3{X: 1})
		assert.False(t, b.IsGrounded())
		assert.InDelta(t, 2.0, b.HeightAboveSurface(), 1e-12)
	})
}

func TestBodyJumpLeavesGround(t *testing.T) {
	f := terrain.NewField(1, 0)
	b := terrain.NewBody(f, terrain.WithSkin(0.01))
	require.True(t, b.IsGrounded())

	b.Move(geom.Vec3{Y: 0.005})
	assert.False(t, b.IsGrounded(), "upward motion never counts as contact")

	b.Move(geom.Vec3{Y: -0.001})
	assert.True(t, b.IsGrounded())
	assert.Equal(t, 0.0, b.Position().Y)
}

func TestBodyFacing(t *testing.T) {
	f := terrain.NewField(1, 0)

	t.Run("fixed by default", func(t *testing.T) {
		b := terrain.NewBody(f)
		assert.Equal(t, geom.Identity, b.Rotation())

		b.Move(geom.Vec3{X: 0.1})
		assert.Equal(t, geom.Identity, b.Rotation())

		b.SetFacing(geom.Yaw(180))
		b.Move(geom.Vec3{X: 0.1})
		assert.True(t, b.Rotation().Forward().ApproxEqual(geom.Vec3{Z: -1}, 1e-9))
	})

	t.Run("follows motion when enabled", func(t *testing.T) {
		b := terrain.NewBody(f, terrain.WithFacingFollowsMotion())
		assert.Equal(t, geom.Identity, b.Rotation())

		b.Move(geom.Vec3{X: 0.1})
		assert.True(t, b.Rotation().Forward().ApproxEqual(geom.Right, 1e-9))

		b.Move(geom.Vec3{Y: -0.1})
		assert.True(t, b.Rotation().Forward().ApproxEqual(geom.Right, 1e-9), "vertical motion keeps facing")
	})
}
