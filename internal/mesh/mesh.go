package mesh

import (
	"github.com/chewxy/math32"

	"gmath/internal/mathutil"
)

// Mesh is a flat indexed triangle list.
type Mesh struct {
	Name  string
	Verts []mathutil.Vec3
	Tris  [][3]int
}

// Bounds returns the axis-aligned bounding box. An empty mesh returns zero vectors.
func (m *Mesh) Bounds() (lo, hi mathutil.Vec3) {
	if len(m.Verts) == 0 {
		return
	}
	lo = mathutil.Vec3{X: math32.Inf(1), Y: math32.Inf(1), Z: math32.Inf(1)}
	hi = mathutil.Vec3{X: math32.Inf(-1), Y: math32.Inf(-1), Z: math32.Inf(-1)}
	for _, v := range m.Verts {
		lo = mathutil.Vec3{X: mathutil.Min(lo.X, v.X), Y: mathutil.Min(lo.Y, v.Y), Z: mathutil.Min(lo.Z, v.Z)}
		hi = mathutil.Vec3{X: mathutil.Max(hi.X, v.X), Y: mathutil.Max(hi.Y, v.Y), Z: mathutil.Max(hi.Z, v.Z)}
	}
	return lo, hi
}

// Center is the middle of the bounding box.
func (m *Mesh) Center() mathutil.Vec3 {
	lo, hi := m.Bounds()
	return lo.Add(hi).Scale(0.5)
}

// Radius is the largest distance from Center to any vertex.
func (m *Mesh) Radius() float32 {
	c := m.Center()
	var r float32
	for _, v := range m.Verts {
		r = mathutil.Max(r, v.Sub(c).Len())
	}
	return r
}

// Recenter translates the vertices so the bounding box is centered on the
// origin and scales them so Radius becomes size. A degenerate mesh is only
// translated.
func (m *Mesh) Recenter(size float32) {
	c := m.Center()
	r := m.Radius()
	s := float32(1)
	if r > 1e-6 {
		s = size / r
	}
	xf := mathutil.Mat4Mul(mathutil.Mat4Scale(mathutil.Vec3{X: s, Y: s, Z: s}), mathutil.Mat4Translation(c.Negate()))
	for i, v := range m.Verts {
		m.Verts[i] = v.MulMat4(xf)
	}
}

// Cube returns an axis-aligned cube of the given edge length centered on the origin.
// Faces wind counter-clockwise seen from outside.
func Cube(size float32) *Mesh {
	h := size / 2
	verts := []mathutil.Vec3{
		{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h},
		{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h},
	}
	quads := [][4]int{
		{0, 3, 2, 1}, // -Z
		{4, 5, 6, 7}, // +Z
		{0, 1, 5, 4}, // -Y
		{3, 7, 6, 2}, // +Y
		{0, 4, 7, 3}, // -X
		{1, 2, 6, 5}, // +X
	}
	m := &Mesh{Name: "cube", Verts: verts}
	for _, q := range quads {
		m.Tris = append(m.Tris, [3]int{q[0], q[1], q[2]}, [3]int{q[0], q[2], q[3]})
	}
	return m
}

// Tetrahedron returns a regular tetrahedron inscribed in the unit sphere.
func Tetrahedron() *Mesh {
	s := 1 / math32.Sqrt(3)
	return &Mesh{
		Name: "tetrahedron",
		Verts: []mathutil.Vec3{
			{X: s, Y: s, Z: s},
			{X: s, Y: -s, Z: -s},
			{X: -s, Y: s, Z: -s},
			{X: -s, Y: -s, Z: s},
		},
		Tris: [][3]int{{0, 1, 2}, {0, 3, 1}, {0, 2, 3}, {1, 3, 2}},
	}
}

// Builtin returns a named built-in mesh, or nil.
func Builtin(name string) *Mesh {
	switch name {
	case "cube":
		return Cube(1)
	case "tetrahedron", "tetra":
		return Tetrahedron()
	}
	return nil
}
