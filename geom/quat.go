package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// gimbalThreshold is the |sin(pitch)| above which Euler decomposition treats the
// rotation as gimbal-locked and folds roll into yaw.
const gimbalThreshold = 0.9999999

// Quat is a rotation quaternion. Values produced by this package are unit length.
type Quat mgl64.Quat

// Identity is the rotation that leaves vectors unchanged.
var Identity = Quat(mgl64.QuatIdent())

// AxisAngle returns the rotation of angle radians around axis.
func AxisAngle(axis Vec3, angle float64) Quat {
	return Quat(mgl64.QuatRotate(angle, axis.Normalize().Mgl()))
}

// FromEuler builds a rotation from Euler angles in degrees. Rotations are applied
// roll (z) first, then pitch (x), then yaw (y).
func FromEuler(deg Vec3) Quat {
	return Quat(mgl64.AnglesToQuat(Deg2Rad(deg.Y), Deg2Rad(deg.X), Deg2Rad(deg.Z), mgl64.YXZ))
}

// Yaw returns the rotation of deg degrees around the world up axis.
func Yaw(deg float64) Quat {
	return AxisAngle(Up, Deg2Rad(deg))
}

// Mgl returns q as an mgl64 quaternion.
func (q Quat) Mgl() mgl64.Quat {
	return mgl64.Quat(q)
}

// Mul composes q and o; the result applies o first, then q.
func (q Quat) Mul(o Quat) Quat {
	return Quat(q.Mgl().Mul(o.Mgl()))
}

func (q Quat) Inverse() Quat {
	return Quat(q.Mgl().Inverse())
}

// Normalize rescales q to unit length. A degenerate quaternion becomes Identity.
func (q Quat) Normalize() Quat {
	if q.Mgl().Len() < normalizeEpsilon {
		return Identity
	}
	return Quat(q.Mgl().Normalize())
}

// Rotate applies q to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	return FromMgl(q.Mgl().Rotate(v.Mgl()))
}

// Forward returns the direction q maps the local forward (+z) axis to.
func (q Quat) Forward() Vec3 {
	return q.Rotate(Forward)
}

// ApproxEqual reports whether q and o describe the same rotation within eps,
// treating q and -q as equal.
func (q Quat) ApproxEqual(o Quat, eps float64) bool {
	return 1-math.Abs(q.Mgl().Dot(o.Mgl())) <= eps
}

// LookRotation returns the rotation whose forward axis points along forward and
// whose up axis is as close to up as possible. A zero forward yields Identity.
//
// mgl64.QuatLookAtV assumes a -z forward, so the +z basis is built here.
func LookRotation(forward, up Vec3) Quat {
	f := forward.Normalize()
	if f == Zero {
		return Identity
	}

	r := up.Cross(f).Normalize()
	if r == Zero {
		// forward is parallel to up; pick any perpendicular right axis
		r = Right.Cross(f).Cross(f).Normalize()
	}
	u := f.Cross(r)

	basis := mgl64.Mat3FromCols(r.Mgl(), u.Mgl(), f.Mgl())
	return Quat(mgl64.Mat4ToQuat(basis.Mat4())).Normalize()
}

// Euler decomposes q into pitch (X), yaw (Y) and roll (Z) in degrees, each in [0,360).
// It is the inverse of FromEuler up to angle wrapping.
func (q Quat) Euler() Vec3 {
	x, y, z, w := q.V[0], q.V[1], q.V[2], q.W
	sinPitch := 2 * (x*w - y*z)

	var pitch, yaw, roll float64
	if math.Abs(sinPitch) >= gimbalThreshold {
		pitch = math.Copysign(math.Pi/2, sinPitch)
		yaw = math.Atan2(-2*(x*z-y*w), 1-2*(y*y+z*z))
	} else {
		pitch = math.Asin(sinPitch)
		yaw = math.Atan2(2*(x*z+y*w), 1-2*(x*x+y*y))
		roll = math.Atan2(2*(x*y+z*w), 1-2*(x*x+z*z))
	}

	return Vec3{
		X: Repeat(Rad2Deg(pitch), 360),
		Y: Repeat(Rad2Deg(yaw), 360),
		Z: Repeat(Rad2Deg(roll), 360),
	}
}
