package mathutil

import "github.com/chewxy/math32"

// Vec3 is a 3-component vector (value type, stack-allocated).
type Vec3 struct {
	X, Y, Z float32
}

func V3(x, y, z float32) Vec3 {
	return Vec3{x, y, z}
}

func (v Vec3) Add(b Vec3) Vec3 {
	return Vec3{v.X + b.X, v.Y + b.Y, v.Z + b.Z}
}

// AddInPlace accumulates b into v.
func (v *Vec3) AddInPlace(b Vec3) {
	v.X += b.X
	v.Y += b.Y
	v.Z += b.Z
}

func (v Vec3) Sub(b Vec3) Vec3 {
	return Vec3{v.X - b.X, v.Y - b.Y, v.Z - b.Z}
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Div divides every component by s. s == 0 yields Inf/NaN components.
func (v Vec3) Div(s float32) Vec3 {
	return Vec3{v.X / s, v.Y / s, v.Z / s}
}

func (v Vec3) Negate() Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func (v Vec3) Dot(b Vec3) float32 {
	return v.X*b.X + v.Y*b.Y + v.Z*b.Z
}

// Cross returns the right-handed cross product v × b.
func (v Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		v.Y*b.Z - v.Z*b.Y,
		v.Z*b.X - v.X*b.Z,
		v.X*b.Y - v.Y*b.X,
	}
}

func (v Vec3) Len() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns v / |v|. The zero vector produces NaN components.
func (v Vec3) Normalize() Vec3 {
	return v.Div(v.Len())
}

// Lerp interpolates from v to b. It panics if t is outside [0, 1];
// use LerpClamped where t may drift out of range.
func (v Vec3) Lerp(b Vec3, t float32) Vec3 {
	mustUnit("Vec3.Lerp", t)
	return v.Scale(1 - t).Add(b.Scale(t))
}

// LerpClamped interpolates from v to b with t clamped to [0, 1].
func (v Vec3) LerpClamped(b Vec3, t float32) Vec3 {
	t = Clamp(t, 0, 1)
	return v.Scale(1 - t).Add(b.Scale(t))
}

// MulMat3 returns M × v with v taken as a column vector.
func (v Vec3) MulMat3(m Mat3) Vec3 {
	return Vec3{
		m[0]*v.X + m[1]*v.Y + m[2]*v.Z,
		m[3]*v.X + m[4]*v.Y + m[5]*v.Z,
		m[6]*v.X + m[7]*v.Y + m[8]*v.Z,
	}
}

// MulMat4 transforms v as a point (w=1) and drops the resulting w.
//
// No perspective divide happens here: a projection matrix applied this way
// yields an un-normalized clip-space point. Use MulMat4W and
// Vec4.PerspectiveDivide for that.
func (v Vec3) MulMat4(m Mat4) Vec3 {
	return v.MulMat4W(m).XYZ()
}

// MulMat4W transforms v as a point (w=1) and keeps the resulting w.
func (v Vec3) MulMat4W(m Mat4) Vec4 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z, W: 1}.MulMat4(m)
}

// MulMat4Dir transforms v as a direction (w=0); translation is ignored.
func (v Vec3) MulMat4Dir(m Mat4) Vec3 {
	return Vec4{X: v.X, Y: v.Y, Z: v.Z}.MulMat4(m).XYZ()
}

// ProjectViewport maps a camera-space point (+Z forward) to pixel
// coordinates with the origin top-left and Y pointing down.
//
// z == 0 is replaced by ProjectEpsilon before dividing. x/z and y/z are
// assumed to lie in [-1, 1]; nothing is clipped. The returned Z is the
// original camera-space depth.
func (v Vec3) ProjectViewport(width, height int) Vec3 {
	z := v.Z
	if z == 0 {
		z = ProjectEpsilon
	}
	cx := v.X / z
	cy := v.Y / z
	return Vec3{
		(cx + 1) / 2 * float32(width),
		(-cy + 1) / 2 * float32(height),
		v.Z,
	}
}

// PerspectiveDivide divides x and y by z in place, leaving clip
// coordinates. It is a no-op when z is exactly zero.
func (v *Vec3) PerspectiveDivide() {
	if v.Z == 0 {
		return
	}
	v.X /= v.Z
	v.Y /= v.Z
}

// Vec4 extends v with the given w.
func (v Vec3) Vec4(w float32) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

// String formats v as "x y z".
func (v Vec3) String() string {
	return formatVec(v.X, v.Y, v.Z)
}

// ApproxEqual compares component-wise within eps.
func (v Vec3) ApproxEqual(b Vec3, eps float32) bool {
	return FloatEqEps(v.X, b.X, eps) && FloatEqEps(v.Y, b.Y, eps) && FloatEqEps(v.Z, b.Z, eps)
}

func Dot(a, b Vec3) float32 { return a.Dot(b) }

func Cross(a, b Vec3) Vec3 { return a.Cross(b) }

func Normalize(v Vec3) Vec3 { return v.Normalize() }

// Lerp is the strict interpolation; see Vec3.Lerp.
func Lerp(start, end Vec3, t float32) Vec3 { return start.Lerp(end, t) }
