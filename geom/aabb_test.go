package geom

import (
	"testing"

	"github.com/cosmcif/raytracer/types"
)

func TestAABBIntersectHit(t *testing.T) {
	box := AABB{Min: types.Vec3{-1, -1, -1}, Max: types.Vec3{1, 1, 1}}
	r := NewRay(types.Vec3{0, 0, -5}, types.Vec3{0, 0, 1})

	hit := box.Intersect(r)
	if !hit.Valid {
		t.Fatalf("expected hit")
	}
	if !almostEqual(hit.Distance, 4, 1e-3) {
		t.Fatalf("expected entry distance 4, got %f", hit.Distance)
	}
}

func TestAABBIntersectMiss(t *testing.T) {
	box := AABB{Min: types.Vec3{-1, -1, -1}, Max: types.Vec3{1, 1, 1}}
	r := NewRay(types.Vec3{10, 10, -5}, types.Vec3{0, 0, 1})
	if hit := box.Intersect(r); hit.Valid {
		t.Fatalf("expected miss, got %+v", hit)
	}
}

func TestAABBIntersectBehindRay(t *testing.T) {
	box := AABB{Min: types.Vec3{-1, -1, -1}, Max: types.Vec3{1, 1, 1}}
	r := NewRay(types.Vec3{0, 0, 5}, types.Vec3{0, 0, 1})
	if hit := box.Intersect(r); hit.Valid {
		t.Fatalf("expected miss for box behind ray, got %+v", hit)
	}
}

func TestAABBUnionContainsChildren(t *testing.T) {
	a := AABB{Min: types.Vec3{-1, -1, -1}, Max: types.Vec3{0, 0, 0}}
	b := AABB{Min: types.Vec3{0, 0, 0}, Max: types.Vec3{1, 1, 1}}
	union := a.Union(b)

	if !union.Contains(a) || !union.Contains(b) {
		t.Fatalf("expected union %+v to contain both children %+v %+v", union, a, b)
	}
}

func TestAABBRayOriginInsideBox(t *testing.T) {
	box := AABB{Min: types.Vec3{-1, -1, -1}, Max: types.Vec3{1, 1, 1}}
	r := NewRay(types.Vec3{0, 0, 0}, types.Vec3{0, 0, 1})
	if hit := box.Intersect(r); !hit.Valid {
		t.Fatalf("expected hit for ray starting inside box")
	}
}
