package geom

import (
	"testing"

	"github.com/cosmcif/raytracer/material"
	"github.com/cosmcif/raytracer/types"
)

func TestSphereIntersectCentered(t *testing.T) {
	s := NewSphere(types.Translate4(types.Vec3{0, 0, 5}), material.New())
	r := NewRay(types.Vec3{0, 0, 0}, types.Vec3{0, 0, 1})

	hit := s.Intersect(r)
	if !hit.Valid {
		t.Fatalf("expected hit")
	}
	if !almostEqual(hit.Distance, 4, 1e-2) {
		t.Fatalf("expected distance 4, got %f", hit.Distance)
	}
	checkHitInvariants(t, r, hit)
}

func TestSphereMiss(t *testing.T) {
	s := NewSphere(types.Translate4(types.Vec3{0, 0, 5}), material.New())
	r := NewRay(types.Vec3{10, 10, 0}, types.Vec3{0, 0, 1})
	if hit := s.Intersect(r); hit.Valid {
		t.Fatalf("expected miss, got %+v", hit)
	}
}

func TestSphereTangentGrazingRay(t *testing.T) {
	// Ray grazing the sphere along its silhouette should register a hit at
	// approximately the tangent point.
	s := NewSphere(types.Translate4(types.Vec3{0, 0, 5}), material.New())
	r := NewRay(types.Vec3{1, 0, 0}, types.Vec3{0, 0, 1})
	hit := s.Intersect(r)
	if !hit.Valid {
		t.Fatalf("expected grazing tangent hit")
	}
	if !almostEqual(hit.Distance, 5, 5e-2) {
		t.Fatalf("expected distance ~5, got %f", hit.Distance)
	}
}

func TestSphereScaledTransform(t *testing.T) {
	transform := types.Translate4(types.Vec3{0, 0, 10}).Mul4(types.Scale4(types.Vec3{2, 2, 2}))
	s := NewSphere(transform, material.New())
	r := NewRay(types.Vec3{0, 0, 0}, types.Vec3{0, 0, 1})
	hit := s.Intersect(r)
	if !hit.Valid {
		t.Fatalf("expected hit")
	}
	if !almostEqual(hit.Distance, 8, 1e-1) {
		t.Fatalf("expected distance 8 for radius-2 sphere at z=10, got %f", hit.Distance)
	}
}

func checkHitInvariants(t *testing.T, r Ray, hit Hit) {
	t.Helper()
	if !hit.Valid {
		return
	}
	expected := r.At(hit.Distance)
	if hit.Point.Distance(expected) > 1e-2 {
		t.Fatalf("point %v not on ray at distance %f (expected %v)", hit.Point, hit.Distance, expected)
	}
	if !almostEqual(hit.GeometricNormal.Len(), 1, 1e-2) {
		t.Fatalf("expected unit geometric normal, got length %f", hit.GeometricNormal.Len())
	}
	if !almostEqual(hit.ShadingNormal.Len(), 1, 1e-2) {
		t.Fatalf("expected unit shading normal, got length %f", hit.ShadingNormal.Len())
	}
	if hit.Distance <= 0 {
		t.Fatalf("expected positive distance, got %f", hit.Distance)
	}
}

func almostEqual(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}
