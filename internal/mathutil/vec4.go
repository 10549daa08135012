package mathutil

import "github.com/chewxy/math32"

// Vec4 is a homogeneous coordinate. W is whatever the last transform left
// there; nothing renormalizes it.
type Vec4 struct {
	X, Y, Z, W float32
}

func V4(x, y, z, w float32) Vec4 {
	return Vec4{x, y, z, w}
}

func (v Vec4) Add(b Vec4) Vec4 {
	return Vec4{v.X + b.X, v.Y + b.Y, v.Z + b.Z, v.W + b.W}
}

func (v Vec4) Sub(b Vec4) Vec4 {
	return Vec4{v.X - b.X, v.Y - b.Y, v.Z - b.Z, v.W - b.W}
}

func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

func (v Vec4) Div(s float32) Vec4 {
	return Vec4{v.X / s, v.Y / s, v.Z / s, v.W / s}
}

func (v Vec4) Dot(b Vec4) float32 {
	return v.X*b.X + v.Y*b.Y + v.Z*b.Z + v.W*b.W
}

// Cross is the 3D cross product of the xyz parts; W is 0.
func (v Vec4) Cross(b Vec4) Vec4 {
	return v.XYZ().Cross(b.XYZ()).Vec4(0)
}

func (v Vec4) Len() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W)
}

func (v Vec4) Normalize() Vec4 {
	return v.Div(v.Len())
}

// Lerp panics if t is outside [0, 1].
func (v Vec4) Lerp(b Vec4, t float32) Vec4 {
	mustUnit("Vec4.Lerp", t)
	return v.Scale(1 - t).Add(b.Scale(t))
}

func (v Vec4) LerpClamped(b Vec4, t float32) Vec4 {
	t = Clamp(t, 0, 1)
	return v.Scale(1 - t).Add(b.Scale(t))
}

// MulMat4 returns M × v.
func (v Vec4) MulMat4(m Mat4) Vec4 {
	return Vec4{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3]*v.W,
		m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7]*v.W,
		m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11]*v.W,
		m[12]*v.X + m[13]*v.Y + m[14]*v.Z + m[15]*v.W,
	}
}

func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// PerspectiveDivide returns xyz / w. w == 0 yields Inf/NaN.
func (v Vec4) PerspectiveDivide() Vec3 {
	inv := 1 / v.W
	return Vec3{v.X * inv, v.Y * inv, v.Z * inv}
}

func (v Vec4) String() string {
	return formatVec(v.X, v.Y, v.Z, v.W)
}

func (v Vec4) ApproxEqual(b Vec4, eps float32) bool {
	return FloatEqEps(v.X, b.X, eps) && FloatEqEps(v.Y, b.Y, eps) &&
		FloatEqEps(v.Z, b.Z, eps) && FloatEqEps(v.W, b.W, eps)
}
