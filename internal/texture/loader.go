package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// LoadImage reads a PNG, JPEG, TGA or WebP file and returns an NRGBA image.
// The decoder is picked by file extension: TGA has no magic number, and the
// tga package registers itself for every input with image.Decode.
func LoadImage(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	var img image.Image
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		img, err = png.Decode(f)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(f)
	case ".tga":
		img, err = tga.Decode(f)
	case ".webp":
		img, err = nativewebp.Decode(f)
	default:
		return nil, fmt.Errorf("texture: unsupported image format %q: %s", ext, path)
	}
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	return toNRGBA(img), nil
}

// toNRGBA converts any image to NRGBA format anchored at the origin.
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// Opaque sources convert directly.
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				dst.SetNRGBA(x-b.Min.X, y-b.Min.Y, c)
			}
		}
	}
	return dst
}
