package raster

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float32 // camera depth per pixel, len = W*H, initialized to +inf
}

// NewFrameBuffer allocates a transparent color buffer and +inf z-buffer.
// Smaller depth is closer to the camera.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	zbuf := make([]float32, n)
	for i := range zbuf {
		zbuf[i] = math32.Inf(1)
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		ZBuf:   zbuf,
	}
}

// At returns the color stored at (x, y).
func (fb *FrameBuffer) At(x, y int) color.NRGBA {
	i := (y*fb.Width + x) * 4
	return color.NRGBA{fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3]}
}

// Image copies the color buffer into a new NRGBA image.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}
