package geom

import (
	"testing"

	"github.com/cosmcif/raytracer/material"
	"github.com/cosmcif/raytracer/types"
)

func TestConeSideIntersect(t *testing.T) {
	c := NewCone(types.Translate4(types.Vec3{0, 0, 5}), material.New())
	// Fired towards the widest part of the cone (y=1 plane, radius 1) from
	// just outside its silhouette on the side.
	r := NewRay(types.Vec3{0.5, 1, 0}, types.Vec3{0, 0, 1})

	hit := c.Intersect(r)
	if !hit.Valid {
		t.Fatalf("expected hit on cone side")
	}
	checkHitInvariants(t, r, hit)
}

func TestConeCapIntersect(t *testing.T) {
	c := NewCone(types.Translate4(types.Vec3{0, 0, 5}), material.New())
	r := NewRay(types.Vec3{0, 5, 5}, types.Vec3{0, -1, 0})

	hit := c.Intersect(r)
	if !hit.Valid {
		t.Fatalf("expected hit on cone cap")
	}
	if !almostEqual(hit.GeometricNormal[1], 1, 1e-2) {
		t.Fatalf("expected cap normal to point up along y, got %v", hit.GeometricNormal)
	}
}

func TestConeMiss(t *testing.T) {
	c := NewCone(types.Translate4(types.Vec3{0, 0, 5}), material.New())
	r := NewRay(types.Vec3{100, 100, 0}, types.Vec3{0, 0, 1})
	if hit := c.Intersect(r); hit.Valid {
		t.Fatalf("expected miss, got %+v", hit)
	}
}
