package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/chewxy/math32"

	"gmath/internal/mathutil"
	"gmath/internal/mesh"
	"gmath/internal/viewmatrix"
)

func main() {
	pos := flag.String("pos", "0,0,0", "Object position x,y,z")
	angles := flag.String("angles", "0,0,0", "Object rotation x,y,z in degrees")
	camera := flag.String("camera", "0,0,-3", "Camera position x,y,z")
	size := flag.Int("size", 256, "Viewport size in pixels")
	fov := flag.Float64("fov", 60, "Vertical field of view in degrees (perspective mode)")
	n := flag.Int("n", 8, "Number of vertices to project")
	flag.Parse()

	name := "cube"
	if flag.NArg() > 0 {
		name = flag.Arg(0)
	}
	m := mesh.Builtin(name)
	if m == nil {
		var err error
		m, err = mesh.LoadOBJ(name)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}

	p, err1 := parseVec3(*pos)
	a, err2 := parseVec3(*angles)
	c, err3 := parseVec3(*camera)
	for _, err := range []error{err1, err2, err3} {
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	}
	a = a.Scale(mathutil.Pi / 180)

	lo, hi := m.Bounds()
	fmt.Printf("Mesh %q: verts=%d, tris=%d\n", m.Name, len(m.Verts), len(m.Tris))
	fmt.Printf("  BBox: X[%.3f, %.3f] Y[%.3f, %.3f] Z[%.3f, %.3f]\n", lo.X, hi.X, lo.Y, hi.Y, lo.Z, hi.Z)
	fmt.Printf("  Center: %v  Radius: %.3f\n", m.Center(), m.Radius())
	printFaceAreas(m)

	model := viewmatrix.ModelMatrix(p, a)
	inv := model.RigidInverse()
	fmt.Printf("\nModel:\n%v", model)
	fmt.Printf("Rigid inverse:\n%v", inv)
	prod := mathutil.Mat4Mul(inv, model)
	fmt.Printf("Inverse * Model (identity=%v):\n%v", prod.IsIdentity(), prod)

	view := viewmatrix.ViewMatrix(c, mathutil.Vec3{})
	mv := viewmatrix.ModelView(model, view)
	fmt.Printf("View:\n%v", view)

	count := mathutil.Clamp(*n, 0, len(m.Verts))
	verts := m.Verts[:count]
	for _, mode := range []viewmatrix.Mode{viewmatrix.ModeViewport, viewmatrix.ModePerspective, viewmatrix.ModeRaw} {
		proj := viewmatrix.Projection{
			Mode:   mode,
			Width:  *size,
			Height: *size,
			FOV:    mathutil.Deg2Rad(float32(*fov)),
			Near:   0.1,
			Far:    1000,
		}
		px, py, pz := viewmatrix.ProjectVertices(verts, mv, proj)
		fmt.Printf("\nProjected (%s):\n", mode)
		for i, v := range verts {
			fmt.Printf("  [%d] %v -> %v\n", i, v, mathutil.V3(px[i], py[i], pz[i]))
		}
	}
}

// printFaceAreas groups triangles by their dominant normal axis.
func printFaceAreas(m *mesh.Mesh) {
	areaByDir := map[string]float32{}
	for _, tri := range m.Tris {
		v0, v1, v2 := m.Verts[tri[0]], m.Verts[tri[1]], m.Verts[tri[2]]
		cr := mathutil.Cross(v1.Sub(v0), v2.Sub(v0))
		area := 0.5 * cr.Len()
		ax, ay, az := math32.Abs(cr.X), math32.Abs(cr.Y), math32.Abs(cr.Z)
		var dir string
		switch {
		case ax >= ay && ax >= az:
			dir = sign(cr.X) + "X"
		case ay >= az:
			dir = sign(cr.Y) + "Y"
		default:
			dir = sign(cr.Z) + "Z"
		}
		areaByDir[dir] += area
	}
	dirs := make([]string, 0, len(areaByDir))
	for d := range areaByDir {
		dirs = append(dirs, d)
	}
	sort.Strings(dirs)
	for _, d := range dirs {
		fmt.Printf("  Faces %s: area=%.3f\n", d, areaByDir[d])
	}
}

func sign(v float32) string {
	if v < 0 {
		return "-"
	}
	return "+"
}

func parseVec3(s string) (mathutil.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return mathutil.Vec3{}, fmt.Errorf("want x,y,z, got %q", s)
	}
	var c [3]float32
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return mathutil.Vec3{}, fmt.Errorf("bad component %q: %w", p, err)
		}
		c[i] = float32(f)
	}
	return mathutil.V3(c[0], c[1], c[2]), nil
}
