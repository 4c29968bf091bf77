package geom

import (
	"testing"

	"github.com/cosmcif/raytracer/material"
	"github.com/cosmcif/raytracer/types"
)

func TestPlaneIntersect(t *testing.T) {
	p := NewPlane(types.Vec3{0, 0, 0}, types.Vec3{0, 1, 0}, material.New())
	r := NewRay(types.Vec3{0, 5, 0}, types.Vec3{0, -1, 0})

	hit := p.Intersect(r)
	if !hit.Valid {
		t.Fatalf("expected hit")
	}
	if !almostEqual(hit.Distance, 5, 1e-3) {
		t.Fatalf("expected distance 5, got %f", hit.Distance)
	}
	checkHitInvariants(t, r, hit)
}

func TestPlaneParallelRayMisses(t *testing.T) {
	// A ray lying in the plane must report no-hit.
	p := NewPlane(types.Vec3{0, 0, 0}, types.Vec3{0, 1, 0}, material.New())
	r := NewRay(types.Vec3{0, 0, 0}, types.Vec3{1, 0, 0})

	if hit := p.Intersect(r); hit.Valid {
		t.Fatalf("expected no-hit for coplanar ray, got %+v", hit)
	}
}

func TestPlaneBehindRayMisses(t *testing.T) {
	p := NewPlane(types.Vec3{0, 0, 0}, types.Vec3{0, 1, 0}, material.New())
	r := NewRay(types.Vec3{0, -5, 0}, types.Vec3{0, -1, 0})
	if hit := p.Intersect(r); hit.Valid {
		t.Fatalf("expected no-hit for plane behind ray, got %+v", hit)
	}
}
