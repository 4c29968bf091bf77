// Package geom implements the ray/scene intersection primitives: rays, hit
// records, axis-aligned bounding boxes and the analytic primitives (sphere,
// plane, cone, triangle).
package geom

import "github.com/cosmcif/raytracer/types"

// Epsilon is the self-intersection offset used for shadow, reflection and
// refraction ray origins. It is a tuning constant, not a bug: too small causes acne, too
// large causes peter-panning.
const Epsilon float32 = 1e-3

// Ray is an origin point and a unit-length direction vector in world space.
type Ray struct {
	Origin    types.Vec3
	Direction types.Vec3
}

// NewRay builds a ray, normalizing the direction so every downstream
// distance computation is a true Euclidean parametric t.
func NewRay(origin, direction types.Vec3) Ray {
	return Ray{Origin: origin, Direction: direction.Normalize()}
}

// At returns the point origin + t*direction along the ray.
func (r Ray) At(t float32) types.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transform maps a ray through an affine matrix: the origin as a point, the
// direction as a vector, renormalized afterwards.
func (r Ray) Transform(m types.Mat4) Ray {
	return Ray{
		Origin:    m.MulPoint(r.Origin),
		Direction: m.MulVector(r.Direction).Normalize(),
	}
}

// Offset returns a copy of the ray whose origin has been nudged by
// Epsilon along dir, used to avoid self-intersection on shadow/reflection/
// refraction rays.
func Offset(point, dir types.Vec3) Ray {
	return Ray{Origin: point.Add(dir.Mul(Epsilon)), Direction: dir}
}
