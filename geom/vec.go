// Package geom provides the vector, quaternion and angle types the locomotion
// pipeline works in. World space is y-up; the ground plane is xz. The arithmetic
// is delegated to mgl64; this package adds the named-field value types and the
// few operations mgl64 lacks.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// normalizeEpsilon is the length below which a vector is treated as zero when normalized.
const normalizeEpsilon = 1e-5

// Vec2 is a planar vector. When used as a movement or aim input, X maps to world x
// and Y maps to world z.
type Vec2 struct {
	X, Y float64
}

// Mgl returns v as an mgl64 vector.
func (v Vec2) Mgl() mgl64.Vec2 {
	return mgl64.Vec2{v.X, v.Y}
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return v.Mgl().Len()
}

// Normalize returns v scaled to unit length, or the zero vector if v is too short.
func (v Vec2) Normalize() Vec2 {
	m := v.Mgl()
	if m.Len() < normalizeEpsilon {
		return Vec2{}
	}
	n := m.Normalize()
	return Vec2{n[0], n[1]}
}

// XZ lifts v onto the ground plane.
func (v Vec2) XZ() Vec3 {
	return Vec3{X: v.X, Z: v.Y}
}

// Vec3 is a world-space vector.
type Vec3 struct {
	X, Y, Z float64
}

var (
	Zero    = Vec3{}
	Up      = Vec3{0, 1, 0}
	Right   = Vec3{1, 0, 0}
	Forward = Vec3{0, 0, 1}
)

// FromMgl converts an mgl64 vector.
func FromMgl(m mgl64.Vec3) Vec3 {
	return Vec3{m[0], m[1], m[2]}
}

// Mgl returns v as an mgl64 vector.
func (v Vec3) Mgl() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return FromMgl(v.Mgl().Add(o.Mgl()))
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return FromMgl(v.Mgl().Sub(o.Mgl()))
}

func (v Vec3) Scale(s float64) Vec3 {
	return FromMgl(v.Mgl().Mul(s))
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.Mgl().Dot(o.Mgl())
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return FromMgl(v.Mgl().Cross(o.Mgl()))
}

func (v Vec3) LenSq() float64 {
	return v.Mgl().LenSqr()
}

func (v Vec3) Len() float64 {
	return v.Mgl().Len()
}

// Normalize returns v scaled to unit length, or the zero vector if v is too short.
func (v Vec3) Normalize() Vec3 {
	m := v.Mgl()
	if m.Len() < normalizeEpsilon {
		return Vec3{}
	}
	return FromMgl(m.Normalize())
}

// Project returns the component of v parallel to onto. Projecting onto a zero
// vector yields the zero vector.
func (v Vec3) Project(onto Vec3) Vec3 {
	o := onto.Mgl()
	d := o.LenSqr()
	if d < math.SmallestNonzeroFloat64 {
		return Vec3{}
	}
	return FromMgl(o.Mul(v.Mgl().Dot(o) / d))
}

// ClampLen caps the magnitude of v at max while preserving its direction.
// Shorter vectors are returned unchanged.
func (v Vec3) ClampLen(max float64) Vec3 {
	m := v.Mgl()
	sq := m.LenSqr()
	if sq <= max*max {
		return v
	}
	return FromMgl(m.Mul(max / math.Sqrt(sq)))
}

// Horizontal returns v with its vertical component removed.
func (v Vec3) Horizontal() Vec3 {
	return Vec3{X: v.X, Z: v.Z}
}

// Vertical returns only the vertical component of v.
func (v Vec3) Vertical() Vec3 {
	return Vec3{Y: v.Y}
}

// ApproxEqual reports whether every component of v is within eps of o.
func (v Vec3) ApproxEqual(o Vec3, eps float64) bool {
	return v.Mgl().ApproxFuncEqual(o.Mgl(), func(a, b float64) bool {
		return math.Abs(a-b) <= eps
	})
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
