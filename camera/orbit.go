// Package camera provides an orbit rig that circles a target and reports the
// forward direction the controller uses as its movement frame.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/stride/geom"
)

const (
	DefaultRadius       = 6.0
	DefaultElevation    = math.Pi / 6
	DefaultOrbitSpeed   = math.Pi / 2
	DefaultMinElevation = -math.Pi/2 + 0.1
	DefaultMaxElevation = math.Pi/2 - 0.1
)

// Option configures an Orbit.
type Option func(*Orbit)

// WithRadius sets the distance from the target.
func WithRadius(r float64) Option {
	return func(o *Orbit) {
		o.radius = r
	}
}

// WithAzimuth sets the horizontal angle around +Y in radians. Zero places the eye on +Z.
func WithAzimuth(a float64) Option {
	return func(o *Orbit) {
		o.azimuth = a
	}
}

// WithElevation sets the angle above the horizontal plane in radians.
func WithElevation(e float64) Option {
	return func(o *Orbit) {
		o.elevation = e
	}
}

// WithElevationLimits bounds the elevation.
func WithElevationLimits(min, max float64) Option {
	return func(o *Orbit) {
		o.minElevation = min
		o.maxElevation = max
	}
}

// WithOrbitSpeed sets the angular speed used by Orbit in radians per second.
func WithOrbitSpeed(s float64) Option {
	return func(o *Orbit) {
		o.orbitSpeed = s
	}
}

// WithTarget sets the initial pivot point.
func WithTarget(t geom.Vec3) Option {
	return func(o *Orbit) {
		o.target = t
	}
}

// Orbit is a camera circling a target at a fixed radius.
type Orbit struct {
	target    geom.Vec3
	radius    float64
	azimuth   float64
	elevation float64

	minElevation float64
	maxElevation float64
	orbitSpeed   float64
}

func NewOrbit(options ...Option) *Orbit {
	o := &Orbit{
		radius:       DefaultRadius,
		azimuth:      math.Pi,
		elevation:    DefaultElevation,
		minElevation: DefaultMinElevation,
		maxElevation: DefaultMaxElevation,
		orbitSpeed:   DefaultOrbitSpeed,
	}
	for _, option := range options {
		option(o)
	}
	o.elevation = o.clampElevation(o.elevation)
	return o
}

// Eye returns the camera position.
func (o *Orbit) Eye() geom.Vec3 {
	return o.target.Add(o.offset(o.radius))
}

// Forward returns the unit direction from the eye to the target. A zero radius
// looks along the direction the eye would otherwise have been placed against.
func (o *Orbit) Forward() geom.Vec3 {
	return o.offset(1).Scale(-1)
}

// offset places a point at distance r from the target. mgl64 spherical
// coordinates are z-up with inclination from +z, so the result is swizzled into
// y-up with the azimuth measured from +z toward +x.
func (o *Orbit) offset(r float64) geom.Vec3 {
	s := mgl64.SphericalToCartesian(r, math.Pi/2-o.elevation, o.azimuth)
	return geom.Vec3{X: s[1], Y: s[2], Z: s[0]}
}

// Rotation returns the camera orientation looking at the target.
func (o *Orbit) Rotation() geom.Quat {
	return geom.LookRotation(o.Forward(), geom.Up)
}

// Orbit turns the rig by the given horizontal and vertical input for dt seconds.
func (o *Orbit) Orbit(horizontal, vertical, dt float64) {
	o.azimuth = math.Mod(o.azimuth+horizontal*o.orbitSpeed*dt, 2*math.Pi)
	o.elevation = o.clampElevation(o.elevation + vertical*o.orbitSpeed*dt)
}

// Zoom changes the radius by delta, never below zero.
func (o *Orbit) Zoom(delta float64) {
	o.radius = math.Max(0, o.radius+delta)
}

// Follow moves the pivot to target.
func (o *Orbit) Follow(target geom.Vec3) {
	o.target = target
}

func (o *Orbit) Target() geom.Vec3 {
	return o.target
}

func (o *Orbit) Radius() float64 {
	return o.radius
}

func (o *Orbit) Azimuth() float64 {
	return o.azimuth
}

func (o *Orbit) SetAzimuth(a float64) {
	o.azimuth = a
}

func (o *Orbit) Elevation() float64 {
	return o.elevation
}

// SetElevation sets the elevation, clamped to the configured limits.
func (o *Orbit) SetElevation(e float64) {
	o.elevation = o.clampElevation(e)
}

func (o *Orbit) clampElevation(e float64) float64 {
	return mgl64.Clamp(e, o.minElevation, o.maxElevation)
}
