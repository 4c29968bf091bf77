package geom

import (
	"math"

	"github.com/cosmcif/raytracer/material"
	"github.com/cosmcif/raytracer/types"
)

// Cone is a unit cone x^2+z^2=y^2, 0<=y<=1, capped with a unit disc at y=1,
// defined in local space and positioned by an affine transform.
type Cone struct {
	Transform    types.Mat4
	InvTransform types.Mat4
	NormalMatrix types.Mat3

	Mat *material.Material
}

// NewCone builds a cone from a world transform.
func NewCone(transform types.Mat4, mat *material.Material) *Cone {
	return &Cone{
		Transform:    transform,
		InvTransform: transform.Inverse(),
		NormalMatrix: transform.NormalMatrix(),
		Mat:          mat,
	}
}

// Material implements Object.
func (c *Cone) Material() *material.Material { return c.Mat }

// Intersect implements Object.
func (c *Cone) Intersect(r Ray) Hit {
	local := r.Transform(c.InvTransform)

	var bestT float32 = -1
	var bestLocalNormal types.Vec3
	var bestUV types.Vec2

	// Side surface: x^2 + z^2 - y^2 = 0.
	o, d := local.Origin, local.Direction
	a := d[0]*d[0] + d[2]*d[2] - d[1]*d[1]
	b := 2 * (o[0]*d[0] + o[2]*d[2] - o[1]*d[1])
	cc := o[0]*o[0] + o[2]*o[2] - o[1]*o[1]

	if math.Abs(float64(a)) > 1e-9 {
		disc := b*b - 4*a*cc
		if disc >= 0 {
			sqrtDisc := float32(math.Sqrt(float64(disc)))
			for _, t := range [2]float32{(-b - sqrtDisc) / (2 * a), (-b + sqrtDisc) / (2 * a)} {
				if t < 0 {
					continue
				}
				p := local.At(t)
				if p[1] < 0 || p[1] > 1 {
					continue
				}
				if bestT < 0 || t < bestT {
					bestT = t
					bestLocalNormal = types.Vec3{p[0], -p[1], p[2]}.Normalize()
					bestUV = types.Vec2{0.5 + float32(math.Atan2(float64(p[2]), float64(p[0])))/(2*math.Pi), p[1]}
				}
			}
		}
	}

	// Cap: plane y=1, disc of radius 1.
	if d[1] != 0 {
		t := (1 - o[1]) / d[1]
		if t >= 0 {
			p := local.At(t)
			if p[0]*p[0]+p[2]*p[2] <= 1 {
				if bestT < 0 || t < bestT {
					bestT = t
					bestLocalNormal = types.Vec3{0, 1, 0}
					bestUV = types.Vec2{p[0]*0.5 + 0.5, p[2]*0.5 + 0.5}
				}
			}
		}
	}

	if bestT < 0 {
		return Miss
	}

	localPoint := local.At(bestT)
	worldPoint := c.Transform.MulPoint(localPoint)
	worldDistance := r.Origin.Distance(worldPoint)
	normal := c.NormalMatrix.MulVec3(bestLocalNormal).Normalize()

	return Hit{
		Valid:           true,
		Distance:        worldDistance,
		Point:           worldPoint,
		GeometricNormal: normal,
		ShadingNormal:   normal,
		UV:              bestUV,
		Object:          c,
	}
}
