package mathutil

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Clamp bounds t to [low, high]. If low > high, t < low yields low and
// anything else yields high.
func Clamp[T constraints.Ordered](t, low, high T) T {
	if t < low {
		return low
	}
	if t > high {
		return high
	}
	return t
}

func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// InRange reports whether low <= t <= high.
func InRange[T constraints.Ordered](t, low, high T) bool {
	return t >= low && t <= high
}

// FloatEq reports whether |b-a| < DefaultEpsilon.
func FloatEq(a, b float32) bool {
	return FloatEqEps(a, b, DefaultEpsilon)
}

// FloatEqEps reports whether |b-a| < eps.
func FloatEqEps(a, b, eps float32) bool {
	return math32.Abs(b-a) < eps
}

// Lerpf interpolates between start and end. t is clamped to [0, 1];
// see LerpClamped.
func Lerpf(start, end, t float32) float32 {
	return LerpClamped(start, end, t)
}

// LerpClamped clamps t to [0, 1] silently and returns start*(1-t) + end*t.
// It never panics; compare Vec3.Lerp.
func LerpClamped(start, end, t float32) float32 {
	t = Clamp(t, 0, 1)
	return start*(1-t) + end*t
}

// LerpUnchecked returns start*(1-t) + end*t for any t, extrapolating
// outside [0, 1].
func LerpUnchecked(start, end, t float32) float32 {
	return start*(1-t) + end*t
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float32) float32 {
	return d * Pi / 180
}

// Rad2Deg converts radians to degrees.
func Rad2Deg(r float32) float32 {
	return r * 180 / Pi
}

// mustUnit panics unless t is in [0, 1]. NaN fails the check as well.
func mustUnit(op string, t float32) {
	if !(t >= 0 && t <= 1) {
		panic("mathutil: " + op + ": interpolation parameter " + formatFloat(t) + " outside [0, 1]")
	}
}
