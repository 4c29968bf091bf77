// Package bvh implements the recursive spatial subdivision of a mesh's
// triangle set into a bounding-volume hierarchy, and ray traversal over it.
package bvh

import (
	"github.com/cosmcif/raytracer/geom"
)

// DefaultLeafMax is the policy constant bounding how many triangles a leaf
// may carry before the builder splits further.
const DefaultLeafMax = 100

// Node is either a leaf carrying triangles directly, or an internal node
// owning two child subtrees. Every node owns an AABB enclosing all
// triangles reachable from it.
type Node struct {
	Box geom.AABB

	Leaf      bool
	Triangles []geom.Triangle

	Left  *Node
	Right *Node
}

// Stats records BVH construction statistics: node and leaf counts, the
// deepest recursion level reached, and the total triangle count.
type Stats struct {
	Nodes         int
	Leafs         int
	MaxDepth      int
	TriangleCount int
}

// Build constructs a BVH from a triangle set using the axis-cycling,
// median-of-vertices split policy. leafMax bounds leaf size; pass
// DefaultLeafMax when the caller has no preference.
func Build(triangles []geom.Triangle, leafMax int) (*Node, Stats) {
	if leafMax <= 0 {
		leafMax = DefaultLeafMax
	}
	stats := Stats{TriangleCount: len(triangles)}
	root := build(triangles, 0, leafMax, 0, &stats)
	return root, stats
}

func build(triangles []geom.Triangle, axis int, leafMax int, depth int, stats *Stats) *Node {
	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	box := boundingBox(triangles)

	if len(triangles) <= leafMax {
		stats.Nodes++
		stats.Leafs++
		return &Node{Box: box, Leaf: true, Triangles: triangles}
	}

	// c = mean of all vertex coordinates along axis a.
	var sum float32
	for _, tri := range triangles {
		for _, v := range tri.V {
			sum += v[axis]
		}
	}
	c := sum / float32(len(triangles)*3)

	var left, right []geom.Triangle
	for _, tri := range triangles {
		if tri.HasVertexBelow(axis, c) {
			left = append(left, tri)
		} else {
			right = append(right, tri)
		}
	}

	// Degenerate split (every triangle landed on one side, e.g. all
	// vertices coincide along this axis): stop subdividing and emit a leaf
	// rather than recursing forever.
	if len(left) == 0 || len(right) == 0 {
		stats.Nodes++
		stats.Leafs++
		return &Node{Box: box, Leaf: true, Triangles: triangles}
	}

	nextAxis := (axis + 1) % 3
	node := &Node{Box: box}
	node.Left = build(left, nextAxis, leafMax, depth+1, stats)
	node.Right = build(right, nextAxis, leafMax, depth+1, stats)
	stats.Nodes++
	return node
}

func boundingBox(triangles []geom.Triangle) geom.AABB {
	box := geom.EmptyAABB()
	for _, tri := range triangles {
		tbox := tri.BBox()
		box = box.Union(tbox)
	}
	return box
}

// Traverse walks the tree collecting the triangles from every leaf whose
// AABB the ray hits. It does not prune by
// distance; the caller (mesh.Mesh) intersects every candidate and keeps the
// closest hit.
func (n *Node) Traverse(r geom.Ray) []geom.Triangle {
	if n == nil {
		return nil
	}
	if !n.Box.Intersect(r).Valid {
		return nil
	}
	if n.Leaf {
		return n.Triangles
	}

	var out []geom.Triangle
	out = append(out, n.Left.Traverse(r)...)
	out = append(out, n.Right.Traverse(r)...)
	return out
}
