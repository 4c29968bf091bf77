// Package texture supplies pure uv -> RGB (and uv -> scalar) functions:
// procedural patterns and an image-backed bitmap sampler, matching the
// material package's ColorFunc/ScalarFunc signatures.
package texture

import (
	"math"

	"github.com/cosmcif/raytracer/material"
	"github.com/cosmcif/raytracer/types"
)

// Checkerboard returns a ColorFunc alternating between a and b every 1/scale
// units of UV space.
func Checkerboard(a, b types.Vec3, scale float32) material.ColorFunc {
	return func(uv types.Vec2) types.Vec3 {
		u := int(math.Floor(float64(uv[0] * scale)))
		v := int(math.Floor(float64(uv[1] * scale)))
		if (u+v)%2 == 0 {
			return a
		}
		return b
	}
}

// ValueNoise returns a ColorFunc producing a smoothly interpolated
// pseudo-random grayscale pattern tinted by color, using bilinear
// interpolation over a lattice of hashed corner values.
func ValueNoise(color types.Vec3, scale float32) material.ColorFunc {
	return func(uv types.Vec2) types.Vec3 {
		n := noise2D(uv[0]*scale, uv[1]*scale)
		return color.Mul(n)
	}
}

func noise2D(x, y float32) float32 {
	x0 := math.Floor(float64(x))
	y0 := math.Floor(float64(y))
	fx := float32(float64(x) - x0)
	fy := float32(float64(y) - y0)

	ix, iy := int(x0), int(y0)
	v00 := hash2(ix, iy)
	v10 := hash2(ix+1, iy)
	v01 := hash2(ix, iy+1)
	v11 := hash2(ix+1, iy+1)

	sx := smoothstep(fx)
	sy := smoothstep(fy)

	top := lerp(v00, v10, sx)
	bottom := lerp(v01, v11, sx)
	return lerp(top, bottom, sy)
}

func smoothstep(t float32) float32 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// hash2 turns a lattice coordinate into a deterministic pseudo-random value
// in [0,1]; not cryptographic, just a cheap integer scramble.
func hash2(x, y int) float32 {
	h := uint32(x)*374761393 + uint32(y)*668265263
	h = (h ^ (h >> 13)) * 1274126177
	h ^= h >> 16
	return float32(h%1000) / 1000
}
