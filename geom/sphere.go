package geom

import (
	"math"

	"github.com/cosmcif/raytracer/material"
	"github.com/cosmcif/raytracer/types"
)

// Sphere is a unit sphere at the origin in local space, positioned, scaled
// and oriented by an affine transform.
type Sphere struct {
	Transform    types.Mat4
	InvTransform types.Mat4
	NormalMatrix types.Mat3

	Mat *material.Material
}

// NewSphere builds a sphere from a world transform.
func NewSphere(transform types.Mat4, mat *material.Material) *Sphere {
	return &Sphere{
		Transform:    transform,
		InvTransform: transform.Inverse(),
		NormalMatrix: transform.NormalMatrix(),
		Mat:          mat,
	}
}

// Material implements Object.
func (s *Sphere) Material() *material.Material { return s.Mat }

// Intersect implements Object. The ray is transformed to local space, where
// the sphere is the unit sphere at the origin; the smaller non-negative root
// of the quadratic is the valid hit.
func (s *Sphere) Intersect(r Ray) Hit {
	local := r.Transform(s.InvTransform)

	oc := local.Origin
	a := local.Direction.Dot(local.Direction)
	b := 2 * oc.Dot(local.Direction)
	c := oc.Dot(oc) - 1

	disc := b*b - 4*a*c
	if disc < 0 {
		return Miss
	}

	sqrtDisc := float32(math.Sqrt(float64(disc)))
	t0 := (-b - sqrtDisc) / (2 * a)
	t1 := (-b + sqrtDisc) / (2 * a)

	t := t0
	if t < 0 {
		t = t1
	}
	if t < 0 {
		return Miss
	}

	localPoint := local.At(t)
	worldPoint := s.Transform.MulPoint(localPoint)
	worldDistance := r.Origin.Distance(worldPoint)

	normal := s.NormalMatrix.MulVec3(localPoint).Normalize()

	uv := sphereUV(localPoint)

	hit := Hit{
		Valid:           true,
		Distance:        worldDistance,
		Point:           worldPoint,
		GeometricNormal: normal,
		ShadingNormal:   normal,
		UV:              uv,
		Object:          s,
	}

	if s.Mat != nil && s.Mat.NormalMap != nil {
		applySphereNormalMap(&hit, s.Mat, worldPoint)
	}

	return hit
}

// sphereUV computes the spherical UV parameterization of a point on the
// local unit sphere.
func sphereUV(local types.Vec3) types.Vec2 {
	n := local.Normalize()
	u := (float32(math.Asin(float64(n[1]))) + math.Pi/2) / math.Pi
	v := (float32(math.Atan2(float64(n[2]), float64(n[0]))) + math.Pi) / (2 * math.Pi)
	return types.Vec2{u, v}
}

// applySphereNormalMap builds a TBN basis from the world up vector, samples
// the material's normal map and replaces the hit's shading normal.
func applySphereNormalMap(hit *Hit, mat *material.Material, worldPoint types.Vec3) {
	worldUp := types.Vec3{0, 1, 0}
	tangent := worldUp.Cross(worldPoint).Normalize()
	if tangent.IsZero() {
		tangent = types.Vec3{1, 0, 0}
	}
	bitangent := hit.GeometricNormal.Cross(tangent)

	sample := mat.NormalMap(hit.UV).Normalize()
	worldNormal := tangent.Mul(sample[0]).
		Add(bitangent.Mul(sample[1])).
		Add(hit.GeometricNormal.Mul(sample[2])).
		Normalize()

	hit.Tangent = tangent
	hit.Bitangent = bitangent
	hit.ShadingNormal = worldNormal
}
