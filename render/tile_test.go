package render

import "testing"

func TestMakeTilesCoversEveryPixelExactlyOnce(t *testing.T) {
	width, height, tileSize := 37, 21, 8
	tiles := makeTiles(width, height, tileSize)

	covered := make([][]bool, height)
	for y := range covered {
		covered[y] = make([]bool, width)
	}

	for _, tl := range tiles {
		if tl.w <= 0 || tl.h <= 0 {
			t.Fatalf("tile has non-positive extent: %+v", tl)
		}
		if tl.x+tl.w > width || tl.y+tl.h > height {
			t.Fatalf("tile exceeds image bounds: %+v (image %dx%d)", tl, width, height)
		}
		for y := tl.y; y < tl.y+tl.h; y++ {
			for x := tl.x; x < tl.x+tl.w; x++ {
				if covered[y][x] {
					t.Fatalf("pixel (%d,%d) covered by more than one tile", x, y)
				}
				covered[y][x] = true
			}
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !covered[y][x] {
				t.Fatalf("pixel (%d,%d) not covered by any tile", x, y)
			}
		}
	}
}

func TestMakeTilesExactMultipleProducesUniformTiles(t *testing.T) {
	tiles := makeTiles(32, 16, 8)
	if len(tiles) != 8 {
		t.Fatalf("expected 4x2=8 tiles, got %d", len(tiles))
	}
	for _, tl := range tiles {
		if tl.w != 8 || tl.h != 8 {
			t.Fatalf("expected uniform 8x8 tiles for an exact multiple, got %+v", tl)
		}
	}
}
