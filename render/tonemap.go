package render

import (
	"math"

	"github.com/cosmcif/raytracer/types"
)

// Tonemap constants; fixed, not tunable per render.
const (
	tonemapAlpha = 1.5
	tonemapBeta  = 1.8
	tonemapGamma = 2.2
)

// Tonemap applies c' = (alpha * c^beta)^(1/gamma) per channel and clamps
// the result to [0,1].
func Tonemap(c types.Vec3) types.Vec3 {
	tone := func(x float32) float32 {
		if x < 0 {
			x = 0
		}
		v := math.Pow(tonemapAlpha*math.Pow(float64(x), tonemapBeta), 1/tonemapGamma)
		if v > 1 {
			v = 1
		}
		if v < 0 {
			v = 0
		}
		return float32(v)
	}
	return types.Vec3{tone(c[0]), tone(c[1]), tone(c[2])}
}
