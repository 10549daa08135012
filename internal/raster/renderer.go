package raster

import (
	"image"
	"image/color"

	"gmath/internal/mathutil"
	"gmath/internal/mesh"
	"gmath/internal/viewmatrix"
)

// DefaultColor is used when Options.Color is left zero.
var DefaultColor = color.NRGBA{160, 160, 170, 255}

// Options controls a single RenderMesh call.
type Options struct {
	Width       int
	Height      int
	Supersample int
	// Projection's Width and Height are replaced by the supersampled size.
	Projection viewmatrix.Projection
	Model      mathutil.Mat4
	View       mathutil.Mat4
	Color      color.NRGBA
	Light      *LightConfig
}

// RenderMesh draws m into a transparent NRGBA image of
// Width*Supersample by Height*Supersample pixels.
func RenderMesh(m *mesh.Mesh, opts Options) *image.NRGBA {
	ss := mathutil.Max(opts.Supersample, 1)
	w, h := opts.Width*ss, opts.Height*ss

	fb := NewFrameBuffer(w, h)
	if m == nil || len(m.Verts) == 0 {
		return fb.Image()
	}

	lc := opts.Light
	if lc == nil {
		def := DefaultLightConfig()
		lc = &def
	}
	base := opts.Color
	if base == (color.NRGBA{}) {
		base = DefaultColor
	}

	mv := viewmatrix.ModelView(opts.Model, opts.View)
	proj := opts.Projection
	proj.Width, proj.Height = w, h
	px, py, pz := viewmatrix.ProjectVertices(m.Verts, mv, proj)

	// Face normals need camera-space positions, not projected ones.
	cam := make([]mathutil.Vec3, len(m.Verts))
	for i, v := range m.Verts {
		cam[i] = v.MulMat4(mv)
	}

	for _, tri := range m.Tris {
		if !validTri(tri, len(cam)) {
			continue
		}
		a, b, c := cam[tri[0]], cam[tri[1]], cam[tri[2]]
		n := mathutil.Cross(b.Sub(a), c.Sub(a))
		if n.Len() < 1e-12 {
			continue
		}
		shade := lc.ComputeShade(n.Normalize())
		RasterizeTriangle(fb, px, py, pz, tri, base, shade, lc)
	}

	return fb.Image()
}

func validTri(tri [3]int, n int) bool {
	for _, i := range tri {
		if i < 0 || i >= n {
			return false
		}
	}
	return true
}
