package geom

import (
	"github.com/cosmcif/raytracer/material"
	"github.com/cosmcif/raytracer/types"
)

// Object is the capability set every intersectable scene entity implements:
// a ray-intersection operation and a material lookup.
type Object interface {
	Intersect(r Ray) Hit
	Material() *material.Material
}

// Hit is populated by intersection. When Valid is
// false every other field is undefined and must not be read.
type Hit struct {
	Valid    bool
	Distance float32

	Point            types.Vec3
	GeometricNormal  types.Vec3
	ShadingNormal    types.Vec3
	UV               types.Vec2
	Tangent          types.Vec3
	Bitangent        types.Vec3

	// Object is a weak back-reference used only to retrieve the hit
	// object's material; it never owns and never extends lifetime. Every
	// Intersect implementation sets it to itself before returning a valid
	// Hit — including mesh.Mesh, which sets it to the mesh rather than the
	// triangle within it that was actually hit, since only the mesh (not
	// the triangle) carries a material.
	Object Object
}

// Miss is the canonical no-hit result.
var Miss = Hit{Valid: false}
