package render

import (
	"github.com/cosmcif/raytracer/geom"
	"github.com/cosmcif/raytracer/scene"
	"github.com/cosmcif/raytracer/shade"
	"github.com/cosmcif/raytracer/types"
)

// tile is a rectangular region of the image, in pixel coordinates,
// processed independently by exactly one worker.
type tile struct {
	x, y, w, h int
}

// makeTiles partitions a width x height image into fixed-size tiles; the
// last tile in each row/column may be smaller than tileSize.
func makeTiles(width, height, tileSize int) []tile {
	var tiles []tile
	for y := 0; y < height; y += tileSize {
		h := tileSize
		if y+h > height {
			h = height - y
		}
		for x := 0; x < width; x += tileSize {
			w := tileSize
			if x+w > width {
				w = width - x
			}
			tiles = append(tiles, tile{x: x, y: y, w: w, h: h})
		}
	}
	return tiles
}

// renderTile computes every pixel inside t and writes it into img. It
// returns the number of primary rays cast, for statistics; secondary rays
// cast by the shader are not counted.
func renderTile(sc *scene.Scene, cam *scene.Camera, img *Image, t tile, bounceDepth int) int64 {
	var raysCast int64
	for j := t.y; j < t.y+t.h; j++ {
		for i := t.x; i < t.x+t.w; i++ {
			var sum types.Vec3
			for _, jitter := range scene.JitterOffsets {
				ray := cam.Ray(i, j, jitter[0], jitter[1])
				raysCast++
				sum = sum.Add(tracePrimary(sc, ray, bounceDepth, &raysCast))
			}
			avg := sum.Mul(1.0 / float32(len(scene.JitterOffsets)))
			img.Set(i, j, Tonemap(avg))
		}
	}
	return raysCast
}

// tracePrimary traces a single primary ray to its closest hit and shades
// it, returning black for a miss. raysCast is not modified here: renderTile
// counts the primary ray, and the shadow, reflection and refraction rays
// cast by shade.Shade go uncounted in the per-tile total.
func tracePrimary(sc *scene.Scene, ray geom.Ray, bounceDepth int, raysCast *int64) types.Vec3 {
	hit := sc.Closest(ray)
	if !hit.Valid {
		return types.Vec3{}
	}
	return shade.Shade(sc, hit, ray.Direction.Negate(), bounceDepth)
}
