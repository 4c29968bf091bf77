package bvh

import (
	"math/rand"
	"testing"

	"github.com/cosmcif/raytracer/geom"
	"github.com/cosmcif/raytracer/types"
)

func almostEqual(a, b, eps float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func gridOfTriangles(n int) []geom.Triangle {
	tris := make([]geom.Triangle, 0, n*2)
	src := rand.New(rand.NewSource(1))
	for i := 0; i < n; i++ {
		cx := float32(src.Intn(200)-100) * 0.1
		cy := float32(src.Intn(200)-100) * 0.1
		cz := float32(src.Intn(200)-100) * 0.1
		tris = append(tris, geom.NewTriangle(
			types.Vec3{cx - 0.05, cy - 0.05, cz},
			types.Vec3{cx + 0.05, cy - 0.05, cz},
			types.Vec3{cx, cy + 0.05, cz},
		))
	}
	return tris
}

func bruteForceClosest(tris []geom.Triangle, r geom.Ray) (geom.Hit, bool) {
	var best geom.Hit
	found := false
	for _, tri := range tris {
		hit := tri.Intersect(r)
		if hit.Valid && (!found || hit.Distance < best.Distance) {
			best = hit
			found = true
		}
	}
	return best, found
}

func TestBVHMatchesBruteForce(t *testing.T) {
	tris := gridOfTriangles(500)
	root, stats := Build(tris, 8)
	if stats.TriangleCount != len(tris) {
		t.Fatalf("expected triangle count %d, got %d", len(tris), stats.TriangleCount)
	}

	src := rand.New(rand.NewSource(2))
	for i := 0; i < 200; i++ {
		origin := types.Vec3{
			float32(src.Intn(400)-200) * 0.05,
			float32(src.Intn(400)-200) * 0.05,
			-20,
		}
		r := geom.NewRay(origin, types.Vec3{0, 0, 1})

		candidates := root.Traverse(r)
		bvhHit, bvhFound := bruteForceClosest(candidates, r)
		bruteHit, bruteFound := bruteForceClosest(tris, r)

		if bvhFound != bruteFound {
			t.Fatalf("mismatch on hit presence for ray %d: bvh=%v brute=%v", i, bvhFound, bruteFound)
		}
		if bvhFound && !almostEqual(bvhHit.Distance, bruteHit.Distance, 1e-3) {
			t.Fatalf("mismatch on closest distance for ray %d: bvh=%f brute=%f", i, bvhHit.Distance, bruteHit.Distance)
		}
	}
}

func TestBVHNodeBoxEnclosesChildren(t *testing.T) {
	tris := gridOfTriangles(300)
	root, _ := Build(tris, 8)

	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil || n.Leaf {
			return
		}
		if !n.Box.Contains(n.Left.Box) {
			t.Fatalf("parent box does not contain left child box")
		}
		if !n.Box.Contains(n.Right.Box) {
			t.Fatalf("parent box does not contain right child box")
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(root)
}

func TestBVHLeavesCoverAllTriangles(t *testing.T) {
	tris := gridOfTriangles(200)
	root, _ := Build(tris, 8)

	seen := make(map[geom.Triangle]bool)
	var walk func(n *Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		if n.Leaf {
			for _, tri := range n.Triangles {
				seen[tri] = true
			}
			return
		}
		walk(n.Left)
		walk(n.Right)
	}
	walk(root)

	for _, tri := range tris {
		if !seen[tri] {
			t.Fatalf("triangle %v missing from BVH leaves", tri)
		}
	}
}

func TestBVHSmallListIsSingleLeaf(t *testing.T) {
	tris := gridOfTriangles(3)
	root, stats := Build(tris, 100)
	if !root.Leaf {
		t.Fatalf("expected a single leaf for a list under leafMax")
	}
	if stats.Leafs != 1 || stats.Nodes != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
