package geom

import (
	"math"

	"github.com/cosmcif/raytracer/types"
)

// AABB is an axis-aligned bounding box, or in world space for a mesh's
// enclosing volume.
type AABB struct {
	Min types.Vec3
	Max types.Vec3
}

// EmptyAABB returns an AABB primed for expansion via Extend/Union: min set
// to +MaxFloat32, max set to -MaxFloat32, so the first Extend call always wins.
func EmptyAABB() AABB {
	return AABB{
		Min: types.Vec3{math.MaxFloat32, math.MaxFloat32, math.MaxFloat32},
		Max: types.Vec3{-math.MaxFloat32, -math.MaxFloat32, -math.MaxFloat32},
	}
}

// Extend grows the box to also enclose p.
func (b AABB) Extend(p types.Vec3) AABB {
	return AABB{Min: types.MinVec3(b.Min, p), Max: types.MaxVec3(b.Max, p)}
}

// Union returns the smallest AABB enclosing both b and other.
func (b AABB) Union(other AABB) AABB {
	return AABB{Min: types.MinVec3(b.Min, other.Min), Max: types.MaxVec3(b.Max, other.Max)}
}

// Contains reports whether other is fully enclosed by b, within a small
// tolerance to absorb floating-point drift from repeated transforms.
func (b AABB) Contains(other AABB) bool {
	const eps = 1e-4
	for i := 0; i < 3; i++ {
		if other.Min[i] < b.Min[i]-eps || other.Max[i] > b.Max[i]+eps {
			return false
		}
	}
	return true
}

// Center returns the box's midpoint.
func (b AABB) Center() types.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Intersect implements the slab method against a ray. The returned hit's Distance is t_enter; the returned normal is the
// entry axis's face normal, pointing against the ray direction along that
// axis.
func (b AABB) Intersect(r Ray) Hit {
	var tEnter, tExit float32 = -math.MaxFloat32, math.MaxFloat32
	enterAxis := -1

	for axis := 0; axis < 3; axis++ {
		dir := r.Direction[axis]
		origin := r.Origin[axis]

		if dir == 0 {
			if origin < b.Min[axis] || origin > b.Max[axis] {
				return Miss
			}
			continue
		}

		invDir := 1 / dir
		tNear := (b.Min[axis] - origin) * invDir
		tFar := (b.Max[axis] - origin) * invDir
		if tNear > tFar {
			tNear, tFar = tFar, tNear
		}

		if tNear > tEnter {
			tEnter = tNear
			enterAxis = axis
		}
		if tFar < tExit {
			tExit = tFar
		}
		if tEnter > tExit {
			return Miss
		}
	}

	if tExit < 0 {
		return Miss
	}
	if enterAxis < 0 {
		// Ray origin started inside the box on every tested axis.
		return Hit{Valid: true, Distance: 0, Point: r.Origin}
	}

	normal := types.Vec3{}
	if r.Direction[enterAxis] > 0 {
		normal[enterAxis] = -1
	} else {
		normal[enterAxis] = 1
	}

	return Hit{
		Valid:           true,
		Distance:        tEnter,
		Point:           r.At(tEnter),
		GeometricNormal: normal,
		ShadingNormal:   normal,
	}
}
