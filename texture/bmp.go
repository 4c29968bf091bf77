package texture

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/bmp"

	"github.com/cosmcif/raytracer/asset"
	"github.com/cosmcif/raytracer/log"
	"github.com/cosmcif/raytracer/material"
	"github.com/cosmcif/raytracer/render"
	"github.com/cosmcif/raytracer/types"
)

var logger = log.New("texture")

// Bitmap wraps a decoded 24-bit BMP image, sampled with UV wrap-around
// scaled by hscale/vscale, vertical flip applied so v=0 is the bottom row.
type Bitmap struct {
	img            image.Image
	hscale, vscale float32
}

// LoadBitmap resolves path (a local filesystem path or an http(s) URL) and
// decodes it as a BMP image. On any error it logs, returns a nil *Bitmap
// and an IOError; callers that treat "no texture bound" as acceptable can
// ignore the error, others can check it with errors.As.
func LoadBitmap(path string, hscale, vscale float32) (*Bitmap, error) {
	res, err := asset.NewResource(path, nil)
	if err != nil {
		logger.Errorf("could not open bitmap texture %q: %s", path, err)
		return nil, render.NewIOError("texture.LoadBitmap", fmt.Errorf("open %q: %w", path, err))
	}
	defer res.Close()

	img, err := bmp.Decode(res)
	if err != nil {
		logger.Errorf("could not decode bitmap texture %q: %s", path, err)
		return nil, render.NewIOError("texture.LoadBitmap", fmt.Errorf("decode %q: %w", path, err))
	}
	return &Bitmap{img: img, hscale: hscale, vscale: vscale}, nil
}

// ColorFunc returns a material.ColorFunc sampling this bitmap.
func (b *Bitmap) ColorFunc() material.ColorFunc {
	return func(uv types.Vec2) types.Vec3 {
		return b.sample(uv)
	}
}

func (b *Bitmap) sample(uv types.Vec2) types.Vec3 {
	bounds := b.img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	x := int(fract(float64(uv[0])*float64(b.hscale)) * float64(width))
	y := int(float64(height) - fract(float64(uv[1])*float64(b.vscale))*float64(height))
	x = clampInt(x, 0, width-1)
	y = clampInt(y, 0, height-1)

	r, g, bl, _ := b.img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
	return types.Vec3{float32(r) / 65535, float32(g) / 65535, float32(bl) / 65535}
}

func fract(v float64) float64 {
	return v - math.Floor(v)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
