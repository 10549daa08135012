package mathutil

import "github.com/chewxy/math32"

// Pi in single precision.
const Pi = math32.Pi

const (
	// DefaultEpsilon is the tolerance FloatEq uses.
	DefaultEpsilon float32 = 1e-7

	// ProjectEpsilon replaces an exactly-zero depth in ProjectViewport.
	ProjectEpsilon float32 = 1e-5
)

// Precomputed axis frames shared by the renderer and tests.
var (
	AxisX = Vec3{1, 0, 0}
	AxisY = Vec3{0, 1, 0}
	AxisZ = Vec3{0, 0, 1}

	// FlipZ converts +Z-forward camera space (the ProjectViewport convention)
	// to the -Z-forward space expected by Mat4Perspective.
	FlipZ = Mat4Scale(Vec3{1, 1, -1})
)
