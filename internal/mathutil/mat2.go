package mathutil

import "github.com/chewxy/math32"

// Mat2 is a 2×2 matrix stored row-major: [r0c0, r0c1, r1c0, r1c1].
type Mat2 [4]float32

func Mat2Identity() Mat2 {
	return Mat2{1, 0, 0, 1}
}

func Mat2Zero() Mat2 {
	return Mat2{}
}

// Mat2Rotation returns a counter-clockwise 2D rotation. Angle in radians.
func Mat2Rotation(a float32) Mat2 {
	s, c := math32.Sincos(a)
	return Mat2{
		c, -s,
		s, c,
	}
}

// Mat2Mul returns a × b.
func Mat2Mul(a, b Mat2) Mat2 {
	var m Mat2
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			m[r*2+c] = a[r*2+0]*b[0*2+c] + a[r*2+1]*b[1*2+c]
		}
	}
	return m
}

func (Mat2) Size() int { return 2 }

// Multiply sets m = m × o. The product is built in a temporary first,
// so m.Multiply(*m) is safe.
func (m *Mat2) Multiply(o Mat2) {
	*m = Mat2Mul(*m, o)
}

func (m *Mat2) MultiplyScalar(s float32) {
	for i := range m {
		m[i] *= s
	}
}

func (m *Mat2) Zero() {
	*m = Mat2{}
}

func (m Mat2) At(row, col int) float32 {
	return m[col+row*2]
}

func (m *Mat2) Set(row, col int, v float32) {
	m[col+row*2] = v
}

func (m Mat2) Det() float32 {
	return m[0]*m[3] - m[1]*m[2]
}

func (m Mat2) Transpose() Mat2 {
	return Mat2{m[0], m[2], m[1], m[3]}
}

func (m Mat2) ApproxEqual(b Mat2, eps float32) bool {
	for i := range m {
		if !FloatEqEps(m[i], b[i], eps) {
			return false
		}
	}
	return true
}

func (m Mat2) String() string {
	return formatRows(m[:], 2)
}
