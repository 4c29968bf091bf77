package scene

import (
	"math"

	"github.com/cosmcif/raytracer/geom"
	"github.com/cosmcif/raytracer/types"
)

// JitterOffsets is the fixed rotated-grid pattern used for 4-tap
// supersampling. Rendering with all four offsets replicated to the same
// value must reproduce single-sample rendering at that sub-pixel location.
var JitterOffsets = [4]types.Vec2{
	{-0.25, 0.75},
	{0.75, 1.0 / 3.0},
	{-0.75, -0.25},
	{0.25, -0.75},
}

// Camera is a pinhole projector: an image plane one unit in front of the
// eye, width W and height H pixels, a vertical field of view, an optional
// world-space orientation, and a world-space position.
type Camera struct {
	Width, Height int
	FOV           float32 // vertical, radians

	Position types.Vec3
	Rotation types.Mat4 // world-space orientation; Ident4() for an axis-aligned camera

	pixelSize float32
	x0, y0    float32
}

// NewCamera builds a pinhole camera looking down +Z in its own local frame
// before Rotation is applied, matching the projection formula: pixel size
// s = 2*tan(fov/2)/width, top-left image-plane coordinates X0 = -s*width/2,
// Y0 = s*height/2.
func NewCamera(width, height int, fov float32, position types.Vec3, rotation types.Mat4) *Camera {
	s := 2 * float32(math.Tan(float64(fov)/2)) / float32(width)
	return &Camera{
		Width:     width,
		Height:    height,
		FOV:       fov,
		Position:  position,
		Rotation:  rotation,
		pixelSize: s,
		x0:        -s * float32(width) / 2,
		y0:        s * float32(height) / 2,
	}
}

// RotationFromAxisAngle builds a world-space orientation matrix for
// NewCamera by rotating angle radians around axis. It is a thin,
// camera-flavored name for types.RotateAxis4, kept here so scene builders
// don't need to reach into types for what is conceptually a camera concern.
func RotationFromAxisAngle(axis types.Vec3, angle float32) types.Mat4 {
	return types.RotateAxis4(axis, angle)
}

// Resize changes the camera's pixel grid, recomputing pixel size and image
// plane origin for the new dimensions while keeping FOV, Position and
// Rotation fixed.
func (c *Camera) Resize(width, height int) {
	c.Width = width
	c.Height = height
	c.pixelSize = 2 * float32(math.Tan(float64(c.FOV)/2)) / float32(width)
	c.x0 = -c.pixelSize * float32(width) / 2
	c.y0 = c.pixelSize * float32(height) / 2
}

// Ray builds the primary ray through pixel (i,j), offset within the pixel
// by the sub-pixel jitter (jx,jy) in [-1,1]-ish rotated-grid units as given
// by JitterOffsets. Direction is computed in camera space, rotated to world
// space by Rotation, and originates at Position.
func (c *Camera) Ray(i, j int, jx, jy float32) geom.Ray {
	dx := c.x0 + (float32(i)+jx+0.5)*c.pixelSize
	dy := c.y0 - (float32(j)+jy+0.5)*c.pixelSize
	dir := types.Vec3{dx, dy, 1}.Normalize()
	world := c.Rotation.MulVector(dir)
	return geom.NewRay(c.Position, world)
}
