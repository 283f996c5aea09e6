package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

func Deg2Rad(deg float64) float64 {
	return mgl64.DegToRad(deg)
}

func Rad2Deg(rad float64) float64 {
	return mgl64.RadToDeg(rad)
}

// Repeat wraps t into the range [0, length).
func Repeat(t, length float64) float64 {
	r := t - math.Floor(t/length)*length
	if r < 0 {
		return 0
	}
	if r >= length {
		return 0
	}
	return r
}

// ClampAngle restricts angle (degrees) to the arc that runs from min to max,
// where the arc may wrap across 0/360. All three values are first wrapped into
// [0,360). Two passes follow: the first snaps angles that are not past min (within
// a half turn) to min, the second snaps angles that are not short of max to max.
// Each pass compares in the half-turn folded domain and flips the sense of the
// comparison once for every operand that lies beyond 180.
//
// Both comparisons are strict, so an angle sitting exactly on min fails the second
// pass. For the symmetric range [-90, 90] this means every out-of-range angle ends
// at max (ClampAngle(150, -90, 90) == 90, ClampAngle(180, -90, 90) == 90), while
// in-range angles such as 350 come back unchanged.
func ClampAngle(angle, min, max float64) float64 {
	angle = Repeat(angle, 360)
	min = Repeat(min, 360)
	max = Repeat(max, 360)

	inverse := false
	tmin, tangle := min, angle
	if min > 180 {
		inverse = !inverse
		tmin -= 180
	}
	if angle > 180 {
		inverse = !inverse
		tangle -= 180
	}
	pastMin := tangle > tmin
	if inverse {
		pastMin = tangle < tmin
	}
	if !pastMin {
		angle = min
	}

	inverse = false
	tmax, tangle := max, angle
	if angle > 180 {
		inverse = !inverse
		tangle -= 180
	}
	if max > 180 {
		inverse = !inverse
		tmax -= 180
	}
	shortOfMax := tangle < tmax
	if inverse {
		shortOfMax = tangle > tmax
	}
	if !shortOfMax {
		angle = max
	}

	return angle
}
