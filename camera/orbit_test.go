package camera_test

import (
	"math"
	"testing"

	"github.com/plus3/stride/camera"
	"github.com/plus3/stride/geom"
	"github.com/stretchr/testify/assert"
)

func TestOrbitDefaultsLookDownPositiveZ(t *testing.T) {
	o := camera.NewOrbit(camera.WithElevation(0))

	assert.True(t, o.Forward().ApproxEqual(geom.Forward, 1e-9), "got %v", o.Forward())
	assert.True(t, o.Eye().ApproxEqual(geom.Vec3{Z: -camera.DefaultRadius}, 1e-9), "got %v", o.Eye())
}

func TestOrbitForwardPointsAtTarget(t *testing.T) {
	target := geom.Vec3{X: 1, Y: 2, Z: 3}
	cases := []struct {
		azimuth, elevation float64
	}{
		{0, 0},
		{math.Pi / 2, 0.3},
		{2, -0.5},
		{-1, 1.2},
	}

	for _, tc := range cases {
		o := camera.NewOrbit(
			camera.WithTarget(target),
			camera.WithRadius(4),
			camera.WithAzimuth(tc.azimuth),
			camera.WithElevation(tc.elevation),
		)

		toTarget := target.Sub(o.Eye())
		assert.InDelta(t, 4, toTarget.Len(), 1e-9)
		assert.True(t, o.Forward().ApproxEqual(toTarget.Normalize(), 1e-9))
		assert.InDelta(t, 1, o.Forward().Len(), 1e-9)
		assert.True(t, o.Rotation().Forward().ApproxEqual(o.Forward(), 1e-9))
	}
}

func TestOrbitElevationClamp(t *testing.T) {
	o := camera.NewOrbit(camera.WithElevationLimits(-0.2, 0.8), camera.WithElevation(2))
	assert.Equal(t, 0.8, o.Elevation())

	o.SetElevation(-1)
	assert.Equal(t, -0.2, o.Elevation())

	o.Orbit(0, 10, 1)
	assert.Equal(t, 0.8, o.Elevation())
}

func TestOrbitTurnAndZoom(t *testing.T) {
	o := camera.NewOrbit(camera.WithAzimuth(0), camera.WithOrbitSpeed(1))

	o.Orbit(1, 0, 0.5)
	assert.InDelta(t, 0.5, o.Azimuth(), 1e-12)

	o.Zoom(-100)
	assert.Equal(t, 0.0, o.Radius())
	assert.InDelta(t, 1, o.Forward().Len(), 1e-9, "forward stays defined at zero radius")

	o.Follow(geom.Vec3{X: 5})
	assert.Equal(t, geom.Vec3{X: 5}, o.Target())
	assert.Equal(t, geom.Vec3{X: 5}, o.Eye())
}

func TestOrbitEyeOnSphere(t *testing.T) {
	for _, tc := range []struct{ azimuth, elevation float64 }{
		{0, 0.4},
		{math.Pi / 2, 0},
		{-2.5, -0.7},
	} {
		o := camera.NewOrbit(camera.WithRadius(3), camera.WithAzimuth(tc.azimuth), camera.WithElevation(tc.elevation))

		cosE, sinE := math.Cos(tc.elevation), math.Sin(tc.elevation)
		want := geom.Vec3{
			X: 3 * cosE * math.Sin(tc.azimuth),
			Y: 3 * sinE,
			Z: 3 * cosE * math.Cos(tc.azimuth),
		}
		assert.True(t, o.Eye().ApproxEqual(want, 1e-9), "azimuth %v elevation %v: got %v", tc.azimuth, tc.elevation, o.Eye())
	}
}
