package render

import "github.com/cosmcif/raytracer/types"

// Image is a width x height grid of RGB triples in [0,1], pixel (0,0) at
// the top-left, row-major.
type Image struct {
	Width, Height int
	Pixels        []types.Vec3
}

// NewImage allocates a black image of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{Width: width, Height: height, Pixels: make([]types.Vec3, width*height)}
}

// At returns the color at (x,y).
func (img *Image) At(x, y int) types.Vec3 {
	return img.Pixels[y*img.Width+x]
}

// Set writes the color at (x,y).
func (img *Image) Set(x, y int, c types.Vec3) {
	img.Pixels[y*img.Width+x] = c
}
