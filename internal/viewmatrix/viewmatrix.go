package viewmatrix

import (
	"fmt"

	"github.com/chewxy/math32"

	"gmath/internal/mathutil"
)

// Mode selects how camera-space vertices become screen coordinates.
type Mode int

const (
	// ModeViewport divides by camera depth and maps [-1, 1] to pixels.
	ModeViewport Mode = iota
	// ModePerspective runs a GL perspective matrix, the w divide and an NDC to pixel mapping.
	ModePerspective
	// ModeRaw divides x and y by z in place and leaves clip coordinates.
	ModeRaw
)

func (m Mode) String() string {
	switch m {
	case ModeViewport:
		return "viewport"
	case ModePerspective:
		return "perspective"
	case ModeRaw:
		return "raw"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode accepts "viewport", "perspective" or "raw". An empty string is viewport.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "viewport":
		return ModeViewport, nil
	case "perspective":
		return ModePerspective, nil
	case "raw":
		return ModeRaw, nil
	}
	return 0, fmt.Errorf("viewmatrix: unknown projection mode %q", s)
}

// Projection describes the target surface.
type Projection struct {
	Mode   Mode
	Width  int
	Height int
	FOV    float32 // vertical, radians; perspective mode only
	Near   float32
	Far    float32
}

// ModelMatrix places an object: translation × (Rx × Ry × Rz).
func ModelMatrix(pos, angles mathutil.Vec3) mathutil.Mat4 {
	return mathutil.Mat4Model(pos, angles)
}

// ViewMatrix is the inverse of the camera's own model matrix.
func ViewMatrix(eye, angles mathutil.Vec3) mathutil.Mat4 {
	return mathutil.Mat4RigidInverse(mathutil.Mat4Model(eye, angles))
}

// ModelView returns view × model, taking object space straight to camera space.
func ModelView(model, view mathutil.Mat4) mathutil.Mat4 {
	return mathutil.Mat4Mul(view, model)
}

// ProjectionMatrix is the GL perspective matrix composed with a Z flip,
// so it accepts camera space looking down +Z.
func (p Projection) ProjectionMatrix() mathutil.Mat4 {
	aspect := float32(1)
	if p.Height > 0 {
		aspect = float32(p.Width) / float32(p.Height)
	}
	return mathutil.Mat4Mul(mathutil.Mat4Perspective(p.FOV, aspect, p.Near, p.Far), mathutil.FlipZ)
}

// ProjectVertices transforms vertices by mv into camera space and projects them.
// Returns px, py, pz slices (screen X, screen Y, camera depth).
// In raw mode px and py hold clip coordinates instead of pixels.
func ProjectVertices(verts []mathutil.Vec3, mv mathutil.Mat4, p Projection) ([]float32, []float32, []float32) {
	n := len(verts)
	px := make([]float32, n)
	py := make([]float32, n)
	pz := make([]float32, n)

	var proj mathutil.Mat4
	if p.Mode == ModePerspective {
		proj = p.ProjectionMatrix()
	}
	w := float32(p.Width)
	h := float32(p.Height)

	for i, v := range verts {
		c := v.MulMat4(mv)
		switch p.Mode {
		case ModePerspective:
			clip := c.MulMat4W(proj)
			if clip.W <= 0 {
				// Behind the eye; depth marks it for the rasterizer to drop.
				px[i], py[i], pz[i] = math32.NaN(), math32.NaN(), c.Z
				continue
			}
			ndc := clip.PerspectiveDivide()
			px[i] = (ndc.X + 1) / 2 * w
			py[i] = (1 - ndc.Y) / 2 * h
			pz[i] = c.Z
		case ModeRaw:
			r := c
			r.PerspectiveDivide()
			px[i], py[i], pz[i] = r.X, r.Y, r.Z
		default:
			s := c.ProjectViewport(p.Width, p.Height)
			px[i], py[i], pz[i] = s.X, s.Y, s.Z
		}
	}
	return px, py, pz
}
