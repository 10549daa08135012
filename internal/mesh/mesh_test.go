package mesh

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gmath/internal/mathutil"
)

const quadOBJ = `# a unit quad
o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
f 1/1 2/1 3/1 4/1
`

func TestParseOBJFanTriangulates(t *testing.T) {
	m, err := ParseOBJ(strings.NewReader(quadOBJ))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if m.Name != "quad" {
		t.Fatalf("name=%q", m.Name)
	}
	if len(m.Verts) != 4 || len(m.Tris) != 2 {
		t.Fatalf("verts=%d tris=%d", len(m.Verts), len(m.Tris))
	}
	if m.Tris[0] != [3]int{0, 1, 2} || m.Tris[1] != [3]int{0, 2, 3} {
		t.Fatalf("tris=%v", m.Tris)
	}
}

func TestParseOBJLegacyName(t *testing.T) {
	src := "o caf\xe9\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	m, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if m.Name != "café" {
		t.Fatalf("name=%q", m.Name)
	}
}

func TestParseOBJNegativeIndices(t *testing.T) {
	src := "v 0 0 0\nv 1 0 0\nv 0 1 0\nf -3 -2 -1\n"
	m, err := ParseOBJ(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseOBJ: %v", err)
	}
	if m.Tris[0] != [3]int{0, 1, 2} {
		t.Fatalf("tris=%v", m.Tris)
	}
}

func TestParseOBJErrors(t *testing.T) {
	cases := map[string]string{
		"zero index":   "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n",
		"out of range": "v 0 0 0\nf 1 2 3\n",
		"short vertex": "v 0 0\n",
		"bad float":    "v 0 x 0\n",
		"no faces":     "v 0 0 0\n",
		"short face":   "v 0 0 0\nv 1 0 0\nf 1 2\n",
	}
	for name, src := range cases {
		if _, err := ParseOBJ(strings.NewReader(src)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadOBJNamesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tri.obj")
	if err := os.WriteFile(path, []byte("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	m, err := LoadOBJ(path)
	if err != nil {
		t.Fatalf("LoadOBJ: %v", err)
	}
	if m.Name != "tri" {
		t.Fatalf("name=%q", m.Name)
	}
	if _, err := LoadOBJ(filepath.Join(dir, "missing.obj")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestCubeBounds(t *testing.T) {
	c := Cube(2)
	if len(c.Verts) != 8 || len(c.Tris) != 12 {
		t.Fatalf("cube verts=%d tris=%d", len(c.Verts), len(c.Tris))
	}
	lo, hi := c.Bounds()
	if lo != (mathutil.Vec3{X: -1, Y: -1, Z: -1}) || hi != (mathutil.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Fatalf("bounds=%v %v", lo, hi)
	}
	if c.Center() != (mathutil.Vec3{}) {
		t.Fatalf("center=%v", c.Center())
	}
}

func TestCubeNormalsPointOutward(t *testing.T) {
	c := Cube(1)
	for i, tri := range c.Tris {
		a, b, d := c.Verts[tri[0]], c.Verts[tri[1]], c.Verts[tri[2]]
		n := mathutil.Cross(b.Sub(a), d.Sub(a))
		centroid := a.Add(b).Add(d).Scale(1.0 / 3)
		if mathutil.Dot(n, centroid) <= 0 {
			t.Fatalf("tri %d faces inward: n=%v", i, n)
		}
	}
}

func TestRecenter(t *testing.T) {
	m := &Mesh{
		Verts: []mathutil.Vec3{{X: 10, Y: 10, Z: 10}, {X: 14, Y: 10, Z: 10}},
		Tris:  [][3]int{{0, 1, 1}},
	}
	m.Recenter(1)
	if c := m.Center(); !c.ApproxEqual(mathutil.Vec3{}, 1e-5) {
		t.Fatalf("center after recenter=%v", c)
	}
	if r := m.Radius(); !mathutil.FloatEqEps(r, 1, 1e-5) {
		t.Fatalf("radius after recenter=%v", r)
	}
}

func TestBuiltin(t *testing.T) {
	if Builtin("cube") == nil || Builtin("tetra") == nil {
		t.Fatalf("missing builtin")
	}
	if Builtin("teapot") != nil {
		t.Fatalf("unexpected builtin")
	}
	if r := Tetrahedron().Radius(); !mathutil.FloatEqEps(r, 1, 1e-5) {
		t.Fatalf("tetrahedron radius=%v", r)
	}
}
