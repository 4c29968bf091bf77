// Package render drives the tile-parallel renderer: partitioning the image
// into tiles, dispatching them to a worker pool, jittered supersampling,
// and tonemapping the accumulated radiance into the output image.
package render

import (
	"fmt"
	"math"
)

// Options collects every render parameter as plain Go values; there is no
// external config file or flag parsing at this layer.
type Options struct {
	Width, Height int
	FOV           float32 // vertical, radians

	TileSize int
	Workers  int // 0 means runtime.NumCPU()

	BounceDepth int
	LeafMax     int // BVH leaf-size threshold; validated, but not read by Render (meshes are built by the scene builders)
}

// Validate reports a ConfigError for any field that would make Render
// panic or produce a degenerate image, so a caller (the CLI) can reject
// bad flags before dispatching a single tile.
func (o Options) Validate() error {
	switch {
	case o.Width <= 0 || o.Height <= 0:
		return NewConfigError("Options.Validate", fmt.Errorf("width and height must be positive, got %dx%d", o.Width, o.Height))
	case o.FOV <= 0 || o.FOV >= math.Pi:
		return NewConfigError("Options.Validate", fmt.Errorf("FOV must be in (0, pi) radians, got %v", o.FOV))
	case o.TileSize <= 0:
		return NewConfigError("Options.Validate", fmt.Errorf("tile size must be positive, got %d", o.TileSize))
	case o.Workers < 0:
		return NewConfigError("Options.Validate", fmt.Errorf("workers must be >= 0, got %d", o.Workers))
	case o.BounceDepth < 0:
		return NewConfigError("Options.Validate", fmt.Errorf("bounce depth must be >= 0, got %d", o.BounceDepth))
	case o.LeafMax < 0:
		return NewConfigError("Options.Validate", fmt.Errorf("BVH leaf max must be >= 0, got %d", o.LeafMax))
	}
	return nil
}

// DefaultOptions returns sane values for a quick render.
func DefaultOptions() Options {
	return Options{
		Width:       640,
		Height:      480,
		FOV:         1.0472, // 60 degrees
		TileSize:    16,
		Workers:     0,
		BounceDepth: 3,
		LeafMax:     0,
	}
}
