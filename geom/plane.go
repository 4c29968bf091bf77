package geom

import (
	"github.com/cosmcif/raytracer/material"
	"github.com/cosmcif/raytracer/types"
)

// Plane is defined directly in world space by a point and a unit normal.
type Plane struct {
	Point  types.Vec3
	Normal types.Vec3

	Mat *material.Material
}

// NewPlane builds a plane through point with the given (not necessarily
// normalized) normal.
func NewPlane(point, normal types.Vec3, mat *material.Material) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize(), Mat: mat}
}

// Material implements Object.
func (p *Plane) Material() *material.Material { return p.Mat }

// Intersect implements Object.
func (p *Plane) Intersect(r Ray) Hit {
	denom := r.Direction.Dot(p.Normal)
	if denom == 0 {
		return Miss
	}

	t := p.Point.Sub(r.Origin).Dot(p.Normal) / denom
	if t < 0 {
		return Miss
	}

	point := r.At(t)
	uv := types.Vec2{0.1 * point[0], 0.1 * point[2]}

	hit := Hit{
		Valid:           true,
		Distance:        t,
		Point:           point,
		GeometricNormal: p.Normal,
		ShadingNormal:   p.Normal,
		UV:              uv,
		Object:          p,
	}

	if p.Mat != nil && p.Mat.NormalMap != nil {
		tangent := types.Vec3{0, 0, 1}
		bitangent := types.Vec3{1, 0, 0}
		sample := p.Mat.NormalMap(uv).Normalize()
		worldNormal := tangent.Mul(sample[0]).
			Add(bitangent.Mul(sample[1])).
			Add(p.Normal.Mul(sample[2])).
			Normalize()
		hit.Tangent = tangent
		hit.Bitangent = bitangent
		hit.ShadingNormal = worldNormal
	}

	return hit
}
