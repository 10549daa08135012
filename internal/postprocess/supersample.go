package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample resolves a supersampled render to w by h pixels.
//
// When the render is an exact multiple of the frame size, each output pixel
// is the alpha-weighted mean of its block of samples, so a mesh edge covering
// half a block comes out half transparent at full brightness. Any other
// ratio is scaled with CatmullRom on premultiplied colour.
// The image is returned unchanged when it is not larger than w by h.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if w <= 0 || h <= 0 || (b.Dx() <= w && b.Dy() <= h) {
		return img
	}

	if b.Dx()%w == 0 && b.Dy()%h == 0 {
		return resolveBlocks(img, b.Dx()/w, b.Dy()/h)
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premultiply(img), b, draw.Src, nil)
	return unpremultiply(dst)
}

// resolveBlocks averages fx by fy sample blocks.
func resolveBlocks(img *image.NRGBA, fx, fy int) *image.NRGBA {
	b := img.Bounds()
	w, h := b.Dx()/fx, b.Dy()/fy
	n := uint32(fx * fy)
	out := image.NewNRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var r, g, bl, a uint32
			for sy := 0; sy < fy; sy++ {
				i := img.PixOffset(b.Min.X+x*fx, b.Min.Y+y*fy+sy)
				for sx := 0; sx < fx; sx++ {
					p := img.Pix[i : i+4 : i+4]
					pa := uint32(p[3])
					r += uint32(p[0]) * pa
					g += uint32(p[1]) * pa
					bl += uint32(p[2]) * pa
					a += pa
					i += 4
				}
			}
			if a == 0 {
				continue
			}
			o := out.PixOffset(x, y)
			out.Pix[o] = uint8((r + a/2) / a)
			out.Pix[o+1] = uint8((g + a/2) / a)
			out.Pix[o+2] = uint8((bl + a/2) / a)
			out.Pix[o+3] = uint8((a + n/2) / n)
		}
	}
	return out
}

func premultiply(img *image.NRGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := img.PixOffset(x, y)
			di := out.PixOffset(x, y)
			a := uint32(img.Pix[si+3])
			out.Pix[di] = uint8((uint32(img.Pix[si])*a + 127) / 255)
			out.Pix[di+1] = uint8((uint32(img.Pix[si+1])*a + 127) / 255)
			out.Pix[di+2] = uint8((uint32(img.Pix[si+2])*a + 127) / 255)
			out.Pix[di+3] = uint8(a)
		}
	}
	return out
}

func unpremultiply(img *image.RGBA) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := img.PixOffset(x, y)
			di := out.PixOffset(x, y)
			a := float64(img.Pix[si+3])
			if a > 1 {
				inv := 255.0 / a
				out.Pix[di] = clamp8(float64(img.Pix[si]) * inv)
				out.Pix[di+1] = clamp8(float64(img.Pix[si+1]) * inv)
				out.Pix[di+2] = clamp8(float64(img.Pix[si+2]) * inv)
			}
			out.Pix[di+3] = img.Pix[si+3]
		}
	}
	return out
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
