package geom

import "github.com/cosmcif/raytracer/types"

// Triangle holds three world-space vertices plus optional per-vertex
// normals and UVs. It is not itself a scene Object:
// a Mesh owns a triangle list and overwrites the hit's Object field with
// itself.
type Triangle struct {
	V [3]types.Vec3

	HasNormals bool
	Normals    [3]types.Vec3

	HasUVs bool
	UVs    [3]types.Vec2

	FaceNormal types.Vec3
}

// NewTriangle precomputes the face normal from the winding of v0,v1,v2.
func NewTriangle(v0, v1, v2 types.Vec3) Triangle {
	e0 := v1.Sub(v0)
	e1 := v2.Sub(v0)
	return Triangle{V: [3]types.Vec3{v0, v1, v2}, FaceNormal: e0.Cross(e1).Normalize()}
}

// BBox returns the triangle's local axis-aligned bounding box, used by the
// BVH builder to bound each node.
func (t Triangle) BBox() AABB {
	min := types.MinVec3(types.MinVec3(t.V[0], t.V[1]), t.V[2])
	max := types.MaxVec3(types.MaxVec3(t.V[0], t.V[1]), t.V[2])
	return AABB{Min: min, Max: max}
}

// Center returns the triangle's centroid. The BVH builder does not use it:
// its split point is the mean of all vertex coordinates along the axis.
func (t Triangle) Center() types.Vec3 {
	return t.V[0].Add(t.V[1]).Add(t.V[2]).Mul(1.0 / 3.0)
}

// HasVertexBelow reports whether any of the triangle's vertices has a
// coordinate along axis strictly below c.
func (t Triangle) HasVertexBelow(axis int, c float32) bool {
	return t.V[0][axis] < c || t.V[1][axis] < c || t.V[2][axis] < c
}

// Intersect tests the ray against the triangle's plane, then rejects points
// outside the triangle using signed edge-area tests; interpolated normals
// and UVs use the same signed-area barycentric weights.
func (t Triangle) Intersect(r Ray) Hit {
	denom := r.Direction.Dot(t.FaceNormal)
	if denom == 0 {
		return Miss
	}

	tt := t.V[0].Sub(r.Origin).Dot(t.FaceNormal) / denom
	if tt < 0 {
		return Miss
	}

	p := r.At(tt)

	n := t.FaceNormal
	e0 := t.V[1].Sub(t.V[0])
	e1 := t.V[2].Sub(t.V[1])
	e2 := t.V[0].Sub(t.V[2])

	area := e0.Cross(t.V[2].Sub(t.V[0])).Dot(n)
	if area == 0 {
		return Miss
	}

	w0 := e1.Cross(p.Sub(t.V[1])).Dot(n)
	w1 := e2.Cross(p.Sub(t.V[2])).Dot(n)
	w2 := e0.Cross(p.Sub(t.V[0])).Dot(n)

	// Reject unless every edge cross product carries the same sign as the
	// face normal's own signed area.
	if area > 0 {
		if w0 < 0 || w1 < 0 || w2 < 0 {
			return Miss
		}
	} else {
		if w0 > 0 || w1 > 0 || w2 > 0 {
			return Miss
		}
	}

	b0, b1, b2 := w0/area, w1/area, w2/area

	normal := n
	if t.HasNormals {
		normal = t.Normals[0].Mul(b0).Add(t.Normals[1].Mul(b1)).Add(t.Normals[2].Mul(b2)).Normalize()
	}

	var uv types.Vec2
	if t.HasUVs {
		uv = types.Vec2{
			t.UVs[0][0]*b0 + t.UVs[1][0]*b1 + t.UVs[2][0]*b2,
			t.UVs[0][1]*b0 + t.UVs[1][1]*b1 + t.UVs[2][1]*b2,
		}
	}

	return Hit{
		Valid:           true,
		Distance:        tt,
		Point:           p,
		GeometricNormal: n,
		ShadingNormal:   normal,
		UV:              uv,
	}
}
