package render

import (
	"runtime"
	"sync"
	"time"

	"github.com/cosmcif/raytracer/log"
	"github.com/cosmcif/raytracer/scene"
)

var logger = log.New("render")

// Render partitions the image into tiles, dispatches them across a pool of
// workers consuming a shared work queue with dynamic scheduling, and
// returns the finished image plus per-worker statistics. Tile completion
// order is non-deterministic; the final image is not, since every pixel's
// inputs are independent of execution order.
func Render(sc *scene.Scene, cam *scene.Camera, opts Options) (*Image, log.RenderStats) {
	img := NewImage(opts.Width, opts.Height)
	tiles := makeTiles(opts.Width, opts.Height, opts.TileSize)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(tiles) {
		workers = len(tiles)
	}
	if workers < 1 {
		workers = 1
	}

	logger.Noticef("rendering %dx%d image, %d tiles, %d workers", opts.Width, opts.Height, len(tiles), workers)

	work := make(chan tile)
	results := make(chan log.TileStat, workers)

	var wg sync.WaitGroup
	start := time.Now()
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			workerStart := time.Now()
			var tilesDone int
			var raysCast int64
			for t := range work {
				raysCast += renderTile(sc, cam, img, t, opts.BounceDepth)
				tilesDone++
			}
			results <- log.TileStat{
				Worker:     id,
				TilesDone:  tilesDone,
				RaysCast:   raysCast,
				RenderTime: time.Since(workerStart),
			}
		}(w)
	}

	for _, t := range tiles {
		work <- t
	}
	close(work)
	wg.Wait()
	close(results)

	stats := log.RenderStats{
		Width:     opts.Width,
		Height:    opts.Height,
		TileSize:  opts.TileSize,
		TotalTime: time.Since(start),
	}
	for r := range results {
		stats.Workers = append(stats.Workers, r)
	}

	return img, stats
}
