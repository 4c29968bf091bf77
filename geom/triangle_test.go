package geom

import (
	"testing"

	"github.com/cosmcif/raytracer/types"
)

func TestTriangleIntersectCenter(t *testing.T) {
	tri := NewTriangle(
		types.Vec3{-1, -1, 5},
		types.Vec3{1, -1, 5},
		types.Vec3{0, 1, 5},
	)
	r := NewRay(types.Vec3{0, 0, 0}, types.Vec3{0, 0, 1})

	hit := tri.Intersect(r)
	if !hit.Valid {
		t.Fatalf("expected hit")
	}
	if !almostEqual(hit.Distance, 5, 1e-3) {
		t.Fatalf("expected distance 5, got %f", hit.Distance)
	}
}

func TestTriangleIntersectOutsideEdgeMisses(t *testing.T) {
	tri := NewTriangle(
		types.Vec3{-1, -1, 5},
		types.Vec3{1, -1, 5},
		types.Vec3{0, 1, 5},
	)
	r := NewRay(types.Vec3{5, 5, 0}, types.Vec3{0, 0, 1})
	if hit := tri.Intersect(r); hit.Valid {
		t.Fatalf("expected miss outside triangle, got %+v", hit)
	}
}

func TestTriangleBarycentricNormalInterpolation(t *testing.T) {
	tri := NewTriangle(
		types.Vec3{-1, -1, 5},
		types.Vec3{1, -1, 5},
		types.Vec3{0, 1, 5},
	)
	tri.HasNormals = true
	tri.Normals = [3]types.Vec3{{0, 0, -1}, {0, 0, -1}, {1, 0, -1}}

	// Ray through the centroid should interpolate to roughly the mean of
	// the (normalized) per-vertex normals.
	centroid := tri.Center()
	r := NewRay(types.Vec3{centroid[0], centroid[1], 0}, types.Vec3{0, 0, 1})
	hit := tri.Intersect(r)
	if !hit.Valid {
		t.Fatalf("expected hit through centroid")
	}
	if !almostEqual(hit.ShadingNormal.Len(), 1, 1e-2) {
		t.Fatalf("expected unit interpolated normal, got %v", hit.ShadingNormal)
	}
}

func TestTriangleBBoxAndCenter(t *testing.T) {
	tri := NewTriangle(
		types.Vec3{-1, -2, 0},
		types.Vec3{3, 0, 0},
		types.Vec3{0, 4, 5},
	)
	bbox := tri.BBox()
	if bbox.Min != (types.Vec3{-1, -2, 0}) || bbox.Max != (types.Vec3{3, 4, 5}) {
		t.Fatalf("unexpected bbox: %+v", bbox)
	}
	center := tri.Center()
	want := types.Vec3{(-1 + 3 + 0) / 3.0, (-2 + 0 + 4) / 3.0, (0 + 0 + 5) / 3.0}
	for i := 0; i < 3; i++ {
		if !almostEqual(center[i], want[i], 1e-6) {
			t.Fatalf("unexpected center: got %v want %v", center, want)
		}
	}
}
