// Package scene assembles objects and lights into the read-only structure
// the renderer traces rays against.
package scene

import (
	"fmt"

	"github.com/cosmcif/raytracer/geom"
	"github.com/cosmcif/raytracer/types"
)

// Scene is an ordered collection of objects and lights plus a global
// ambient constant. The scene exclusively owns its objects and lights and
// is read-only once rendering begins.
type Scene struct {
	Objects []geom.Object
	Lights  []*Light

	Ambient types.Vec3
}

// New returns an empty scene with a default (black) ambient term.
func New() *Scene {
	return &Scene{}
}

// AddObject appends obj to the scene, rejecting a nil object or one with no
// material outright — a construction-time mistake should be loud even
// though the render loop itself is never fatal.
func (s *Scene) AddObject(obj geom.Object) error {
	if obj == nil {
		return fmt.Errorf("scene: cannot add a nil object")
	}
	if obj.Material() == nil {
		return fmt.Errorf("scene: object has no material assigned")
	}
	s.Objects = append(s.Objects, obj)
	return nil
}

// AddLight appends a light to the scene.
func (s *Scene) AddLight(l *Light) error {
	if l == nil {
		return fmt.Errorf("scene: cannot add a nil light")
	}
	s.Lights = append(s.Lights, l)
	return nil
}

// Closest iterates every object and returns the valid hit with the smallest
// distance, or a Hit with Valid=false if nothing was hit.
func (s *Scene) Closest(r geom.Ray) geom.Hit {
	var best geom.Hit
	found := false
	for _, obj := range s.Objects {
		hit := obj.Intersect(r)
		if hit.Valid && (!found || hit.Distance < best.Distance) {
			best = hit
			found = true
		}
	}
	if !found {
		return geom.Miss
	}
	return best
}

// Occluded reports whether any object intersects r at a distance <= maxDist,
// used by the shader's shadow test. It stops
// at the first qualifying hit rather than finding the closest one, since a
// shadow test only needs a yes/no answer.
func (s *Scene) Occluded(r geom.Ray, maxDist float32) bool {
	for _, obj := range s.Objects {
		hit := obj.Intersect(r)
		if hit.Valid && hit.Distance <= maxDist {
			return true
		}
	}
	return false
}
