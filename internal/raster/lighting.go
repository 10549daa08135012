package raster

import (
	"github.com/chewxy/math32"

	"gmath/internal/mathutil"
)

// LightConfig holds precomputed lighting parameters. Directions are in
// camera space: +X right, +Y up, +Z away from the viewer.
type LightConfig struct {
	LightDir  mathutil.Vec3
	RimDir    mathutil.Vec3
	ViewDir   mathutil.Vec3
	HalfMain  mathutil.Vec3 // precomputed half-vector for Blinn-Phong
	Ambient   float32
	Hemi      float32
	Direct    float32
	Rim       float32
	SpecInt   float32
	SpecPow   float32
	Exposure  float32
	SRGBGamma float32
	InvGamma  float32
}

// DefaultLightConfig returns a key light above-right of the camera and a
// rim light behind the object on the left.
func DefaultLightConfig() LightConfig {
	lightDir := mathutil.Vec3{X: 180, Y: 260, Z: -140}.Normalize()
	rimDir := mathutil.Vec3{X: -160, Y: 130, Z: 210}.Normalize()
	viewDir := mathutil.Vec3{X: 0, Y: 0, Z: 1}

	halfMain := lightDir.Sub(viewDir).Normalize()

	return LightConfig{
		LightDir:  lightDir,
		RimDir:    rimDir,
		ViewDir:   viewDir,
		HalfMain:  halfMain,
		Ambient:   0.35,
		Hemi:      0.40,
		Direct:    1.20,
		Rim:       0.45,
		SpecInt:   0.35,
		SpecPow:   12.0,
		Exposure:  1.0,
		SRGBGamma: 2.2,
		InvGamma:  1.0 / 2.2,
	}
}

// ComputeShade returns the combined lighting scalar for a unit face normal.
func (lc *LightConfig) ComputeShade(normal mathutil.Vec3) float32 {
	// Lambertian (abs for double-sided)
	ndlMain := math32.Abs(normal.Dot(lc.LightDir))
	ndlRim := math32.Abs(normal.Dot(lc.RimDir))

	// Hemisphere fill
	hemi := (1.0-math32.Abs(normal.Y))*0.5 + 0.5
	hemiLight := hemi * lc.Hemi

	// Blinn-Phong specular
	ndh := math32.Abs(normal.Dot(lc.HalfMain))
	spec := math32.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + hemiLight + ndlMain*lc.Direct + ndlRim*lc.Rim + spec
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float32

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math32.Pow(float32(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float32) float32 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}

// ShadeColor lights an sRGB base color with a shade factor, tone maps it
// and encodes it back to sRGB.
func (lc *LightConfig) ShadeColor(r, g, b uint8, shade float32) (uint8, uint8, uint8) {
	k := shade * lc.Exposure
	out := [3]float32{srgbToLinear[r] * k, srgbToLinear[g] * k, srgbToLinear[b] * k}
	for i, v := range out {
		out[i] = math32.Pow(ACESTonemap(v), lc.InvGamma) * 255
	}
	return clamp255(out[0]), clamp255(out[1]), clamp255(out[2])
}

func clamp255(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
