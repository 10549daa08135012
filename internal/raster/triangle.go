package raster

import (
	"image/color"

	"github.com/chewxy/math32"

	"gmath/internal/mathutil"
)

// RasterizeTriangle fills one flat-shaded triangle with a z-buffer test.
//
// px, py are pixel coordinates and pz camera depth, indexed by vi.
// Triangles touching the eye plane or carrying non-finite coordinates are
// dropped; there is no near-plane clipping.
func RasterizeTriangle(
	fb *FrameBuffer,
	px, py, pz []float32,
	vi [3]int,
	base color.NRGBA,
	shade float32,
	lc *LightConfig,
) {
	nv := len(px)
	for _, i := range vi {
		if i < 0 || i >= nv {
			return
		}
		if pz[i] <= 0 || !finite(px[i]) || !finite(py[i]) || !finite(pz[i]) {
			return
		}
	}

	x0, y0, z0 := px[vi[0]], py[vi[0]], pz[vi[0]]
	x1, y1, z1 := px[vi[1]], py[vi[1]], pz[vi[1]]
	x2, y2, z2 := px[vi[2]], py[vi[2]], pz[vi[2]]

	// Bounding box
	minX := int(mathutil.Min(mathutil.Min(x0, x1), x2))
	maxX := int(mathutil.Max(mathutil.Max(x0, x1), x2)) + 1
	minY := int(mathutil.Min(mathutil.Min(y0, y1), y2))
	maxY := int(mathutil.Max(mathutil.Max(y0, y1), y2)) + 1

	minX = mathutil.Clamp(minX, 0, fb.Width-1)
	maxX = mathutil.Clamp(maxX, 0, fb.Width-1)
	minY = mathutil.Clamp(minY, 0, fb.Height-1)
	maxY = mathutil.Clamp(maxY, 0, fb.Height-1)
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	cr, cg, cb := lc.ShadeColor(base.R, base.G, base.B, shade)

	for sy := minY; sy <= maxY; sy++ {
		// Sample at pixel centers.
		dsy := float32(sy) + 0.5 - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float32(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z >= fb.ZBuf[zIdx] {
				continue
			}
			fb.ZBuf[zIdx] = z

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = cr
			fb.Color[pxIdx+1] = cg
			fb.Color[pxIdx+2] = cb
			fb.Color[pxIdx+3] = base.A
		}
	}
}

func finite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}
