// Package mesh implements the aggregate mesh Object: a triangle list plus
// its enclosing BVH, behaving as a single scene object.
package mesh

import (
	"github.com/cosmcif/raytracer/bvh"
	"github.com/cosmcif/raytracer/geom"
	"github.com/cosmcif/raytracer/material"
)

// Mesh exclusively owns its triangle storage and its BVH. Vertices are
// already in world space by the time a Mesh is constructed (the OBJ loader
// bakes the per-mesh translation in at load time), so unlike
// Sphere/Plane/Cone a Mesh carries no separate affine transform.
type Mesh struct {
	Triangles []geom.Triangle
	Root      *bvh.Node
	Box       geom.AABB
	Stats     bvh.Stats

	Mat *material.Material
}

// New builds a Mesh and its BVH from a triangle set. leafMax <= 0 uses bvh.DefaultLeafMax.
func New(triangles []geom.Triangle, leafMax int, mat *material.Material) *Mesh {
	root, stats := bvh.Build(triangles, leafMax)
	box := geom.EmptyAABB()
	if root != nil {
		box = root.Box
	}
	return &Mesh{Triangles: triangles, Root: root, Box: box, Stats: stats, Mat: mat}
}

// Material implements geom.Object.
func (m *Mesh) Material() *material.Material { return m.Mat }

// Intersect implements geom.Object.
func (m *Mesh) Intersect(r geom.Ray) geom.Hit {
	if len(m.Triangles) == 0 || !m.Box.Intersect(r).Valid {
		return geom.Miss
	}

	candidates := m.Root.Traverse(r)

	var best geom.Hit
	found := false
	for _, tri := range candidates {
		hit := tri.Intersect(r)
		if hit.Valid && (!found || hit.Distance < best.Distance) {
			best = hit
			found = true
		}
	}
	if !found {
		return geom.Miss
	}

	// Overwrite the hit's object so material lookup returns the mesh's
	// (shared) material rather than a per-triangle reference.
	best.Object = m
	return best
}
