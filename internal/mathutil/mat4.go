package mathutil

import "github.com/chewxy/math32"

// Mat4 is a 4×4 homogeneous transform stored row-major. Transforms apply as
// M × point, so translation lives in the rightmost column (m[3], m[7], m[11]).
type Mat4 [16]float32

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Mat4Zero() Mat4 {
	return Mat4{}
}

// Mat4Mul returns a × b.
func Mat4Mul(a, b Mat4) Mat4 {
	var m Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			m[r*4+c] = a[r*4+0]*b[0*4+c] + a[r*4+1]*b[1*4+c] +
				a[r*4+2]*b[2*4+c] + a[r*4+3]*b[3*4+c]
		}
	}
	return m
}

func (Mat4) Size() int { return 4 }

// Multiply sets m = m × o. Rows of m are still being read while the
// product is produced, so the result goes through a temporary.
func (m *Mat4) Multiply(o Mat4) {
	*m = Mat4Mul(*m, o)
}

func (m *Mat4) MultiplyScalar(s float32) {
	for i := range m {
		m[i] *= s
	}
}

func (m *Mat4) Zero() {
	*m = Mat4{}
}

func (m Mat4) At(row, col int) float32 {
	return m[col+row*4]
}

func (m *Mat4) Set(row, col int, v float32) {
	m[col+row*4] = v
}

// MulPoint transforms a 3D point (w=1) by the 4×4 matrix.
func (m Mat4) MulPoint(v Vec3) Vec3 {
	return v.MulMat4(m)
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Mat4Translation is the identity with v in the rightmost column.
func Mat4Translation(v Vec3) Mat4 {
	return Mat4{
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	}
}

func Mat4Scale(v Vec3) Mat4 {
	return Mat4{
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	}
}

// Mat4RotationX returns a right-handed rotation about X. Angle in radians.
func Mat4RotationX(theta float32) Mat4 {
	return Mat4FromMat3Translation(RotX(theta), Vec3{})
}

func Mat4RotationY(theta float32) Mat4 {
	return Mat4FromMat3Translation(RotY(theta), Vec3{})
}

func Mat4RotationZ(theta float32) Mat4 {
	return Mat4FromMat3Translation(RotZ(theta), Vec3{})
}

// Mat4Model composes Translation(pos) × (RotX(angles.X) × RotY(angles.Y) × RotZ(angles.Z)).
// The rotation order is fixed; reordering changes the resulting orientation.
func Mat4Model(pos, angles Vec3) Mat4 {
	rot := Mat4RotationX(angles.X)
	rot.Multiply(Mat4RotationY(angles.Y))
	rot.Multiply(Mat4RotationZ(angles.Z))
	return Mat4Mul(Mat4Translation(pos), rot)
}

// Mat4RigidInverse inverts a rotation+translation matrix by transposing the
// rotation block and rotating the negated translation.
//
// Precondition: the upper-left 3×3 block is orthogonal. Scale or shear
// anywhere in m gives a wrong answer; this is not checked.
func Mat4RigidInverse(m Mat4) Mat4 {
	rt := m.Upper3().Transpose()
	t := rt.MulVec3(m.TranslationPart()).Negate()
	return Mat4FromMat3Translation(rt, t)
}

// RigidInverse is Mat4RigidInverse(m).
func (m Mat4) RigidInverse() Mat4 {
	return Mat4RigidInverse(m)
}

// Mat4Perspective builds an OpenGL-style projection looking down -Z, laid
// out row-major. fovY in radians. Points must go through MulMat4W and
// Vec4.PerspectiveDivide; MulMat4 alone drops w.
func Mat4Perspective(fovY, aspect, near, far float32) Mat4 {
	if aspect == 0 {
		aspect = 1
	}
	f := 1 / math32.Tan(fovY/2)
	nf := 1 / (near - far)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (far + near) * nf, 2 * far * near * nf,
		0, 0, -1, 0,
	}
}

// Mat4FromMat3Translation builds a 4×4 affine matrix from a 3×3 rotation and translation.
func Mat4FromMat3Translation(r Mat3, t Vec3) Mat4 {
	return Mat4{
		r[0], r[1], r[2], t.X,
		r[3], r[4], r[5], t.Y,
		r[6], r[7], r[8], t.Z,
		0, 0, 0, 1,
	}
}

// Upper3 returns the upper-left 3×3 block.
func (m Mat4) Upper3() Mat3 {
	return Mat3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

func (m Mat4) TranslationPart() Vec3 {
	return Vec3{m[3], m[7], m[11]}
}

// IsIdentity checks if the matrix is approximately identity.
func (m Mat4) IsIdentity() bool {
	return m.ApproxEqual(Mat4Identity(), 1e-6)
}

func (m Mat4) ApproxEqual(b Mat4, eps float32) bool {
	for i := range m {
		if !FloatEqEps(m[i], b[i], eps) {
			return false
		}
	}
	return true
}

func (m Mat4) String() string {
	return formatRows(m[:], 4)
}
