package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Composite draws fg over a backdrop stretched to fg's bounds.
// A nil backdrop returns fg itself.
func Composite(fg *image.NRGBA, backdrop image.Image) *image.NRGBA {
	if backdrop == nil {
		return fg
	}
	b := fg.Bounds()
	out := image.NewNRGBA(b)
	draw.ApproxBiLinear.Scale(out, b, backdrop, backdrop.Bounds(), draw.Src, nil)
	draw.Draw(out, b, fg, b.Min, draw.Over)
	return out
}
