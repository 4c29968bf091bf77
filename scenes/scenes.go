// Package scenes builds the example scenes shipped with this renderer.
// Since there is no scene description file format, every scene is a Go
// constructor registered here by name so the CLI can list and select one.
package scenes

import (
	"math"

	"github.com/cosmcif/raytracer/geom"
	"github.com/cosmcif/raytracer/material"
	"github.com/cosmcif/raytracer/mesh"
	"github.com/cosmcif/raytracer/scene"
	"github.com/cosmcif/raytracer/texture"
	"github.com/cosmcif/raytracer/types"
)

// Builder constructs a Scene and the Camera to render it with.
type Builder func() (*scene.Scene, *scene.Camera)

// registryOrder lists the names in registry in a stable listing order.
var registryOrder = []string{
	"red-sphere",
	"cube",
	"mirror-over-plane",
	"refractive-sphere",
	"mesh-sphere",
	"mirror-in-mirror",
	"tilted-camera",
}

var registry = map[string]Builder{
	"red-sphere":        RedSphere,
	"cube":              Cube,
	"mirror-over-plane": MirrorOverPlane,
	"refractive-sphere": RefractiveSphere,
	"mesh-sphere":       MeshSphere,
	"mirror-in-mirror":  MirrorInMirror,
	"tilted-camera":     TiltedCamera,
}

// Names returns the registered scene names in listing order.
func Names() []string {
	out := make([]string, len(registryOrder))
	copy(out, registryOrder)
	return out
}

// Get looks up a scene builder by name.
func Get(name string) (Builder, bool) {
	b, ok := registry[name]
	return b, ok
}

func defaultCamera(width, height int) *scene.Camera {
	return scene.NewCamera(width, height, 1.0472, types.Vec3{}, types.Ident4())
}

// RedSphere is scenario 1: a single red diffuse sphere at (0,0,5), radius
// 1, lit by one white light at (0,5,0) over a black background.
func RedSphere() (*scene.Scene, *scene.Camera) {
	mat := material.New()
	mat.Diffuse = types.Vec3{1, 0, 0}

	sphere := geom.NewSphere(types.Translate4(types.Vec3{0, 0, 5}), mat)

	sc := scene.New()
	sc.AddObject(sphere)
	sc.AddLight(scene.NewLight(types.Vec3{0, 5, 0}, types.Vec3{1, 1, 1}))

	return sc, defaultCamera(64, 64)
}

// Cube is scenario 2: an axis-aligned unit cube built from 12 triangles,
// centered at the origin, spanning [-0.5,0.5]^3.
func Cube() (*scene.Scene, *scene.Camera) {
	mat := material.New()
	mat.Diffuse = types.Vec3{0.7, 0.7, 0.7}

	triangles := cubeTriangles()
	m := mesh.New(triangles, 0, mat)

	sc := scene.New()
	sc.AddObject(m)
	// The default camera sits at the cube's center, so the light goes
	// inside the cube too; from outside, the closed cube would shadow it.
	sc.AddLight(scene.NewLight(types.Vec3{0, 0.4, -0.4}, types.Vec3{1, 1, 1}))

	return sc, defaultCamera(256, 256)
}

func cubeTriangles() []geom.Triangle {
	// 8 corners of a unit cube centered at the origin.
	c := func(x, y, z float32) types.Vec3 { return types.Vec3{x * 0.5, y * 0.5, z * 0.5} }
	v := [8]types.Vec3{
		c(-1, -1, -1), c(1, -1, -1), c(1, 1, -1), c(-1, 1, -1),
		c(-1, -1, 1), c(1, -1, 1), c(1, 1, 1), c(-1, 1, 1),
	}
	quad := func(a, b, cc, d int) []geom.Triangle {
		return []geom.Triangle{
			geom.NewTriangle(v[a], v[b], v[cc]),
			geom.NewTriangle(v[a], v[cc], v[d]),
		}
	}
	var tris []geom.Triangle
	tris = append(tris, quad(0, 1, 2, 3)...) // front (-Z)
	tris = append(tris, quad(5, 4, 7, 6)...) // back (+Z)
	tris = append(tris, quad(4, 0, 3, 7)...) // left (-X)
	tris = append(tris, quad(1, 5, 6, 2)...) // right (+X)
	tris = append(tris, quad(3, 2, 6, 7)...) // top (+Y)
	tris = append(tris, quad(4, 5, 1, 0)...) // bottom (-Y)
	return tris
}

// MirrorOverPlane is scenario 3: a mirror sphere hovering above a
// checkerboard-textured plane.
func MirrorOverPlane() (*scene.Scene, *scene.Camera) {
	planeMat := material.New()
	planeMat.Diffuse = types.Vec3{1, 1, 1}
	planeMat.Texture = texture.Checkerboard(types.Vec3{0.9, 0.9, 0.9}, types.Vec3{0.1, 0.1, 0.1}, 10)
	plane := geom.NewPlane(types.Vec3{0, -1, 0}, types.Vec3{0, 1, 0}, planeMat)

	mirrorMat := material.New()
	mirrorMat.Diffuse = types.Vec3{0.05, 0.05, 0.05}
	mirrorMat.Reflection = 0.9
	sphere := geom.NewSphere(types.Translate4(types.Vec3{0, 0.5, 4}), mirrorMat)

	sc := scene.New()
	sc.AddObject(plane)
	sc.AddObject(sphere)
	sc.AddLight(scene.NewLight(types.Vec3{2, 5, 0}, types.Vec3{1, 1, 1}))

	return sc, defaultCamera(256, 256)
}

// RefractiveSphere is scenario 4: a glass sphere (sigma=1.5) in front of a
// red wall; the wall seen past the sphere's silhouette is the
// straight-through control.
func RefractiveSphere() (*scene.Scene, *scene.Camera) {
	wallMat := material.New()
	wallMat.Diffuse = types.Vec3{1, 0, 0}
	wall := geom.NewPlane(types.Vec3{0, 0, 8}, types.Vec3{0, 0, -1}, wallMat)

	glassMat := material.New()
	glassMat.Diffuse = types.Vec3{0, 0, 0}
	glassMat.Refraction = 0.9
	glassMat.Sigma = 1.5
	sphere := geom.NewSphere(types.Translate4(types.Vec3{0, 0, 4}), glassMat)

	sc := scene.New()
	sc.AddObject(wall)
	sc.AddObject(sphere)
	sc.AddLight(scene.NewLight(types.Vec3{0, 5, 0}, types.Vec3{1, 1, 1}))

	return sc, defaultCamera(256, 256)
}

// MeshSphere is scenario 5: a sphere approximated by a UV-sphere mesh of
// roughly 10,000 triangles, to exercise the BVH at scale.
func MeshSphere() (*scene.Scene, *scene.Camera) {
	mat := material.New()
	mat.Diffuse = types.Vec3{0.6, 0.6, 0.9}

	triangles := uvSphereTriangles(types.Vec3{0, 0, 5}, 1, 100, 50)
	m := mesh.New(triangles, 0, mat)

	sc := scene.New()
	sc.AddObject(m)
	sc.AddLight(scene.NewLight(types.Vec3{0, 5, 0}, types.Vec3{1, 1, 1}))

	return sc, defaultCamera(256, 256)
}

// uvSphereTriangles builds a UV-sphere approximation with lonSegments *
// latSegments * 2 triangles (minus the degenerate pole quads, which
// collapse to single triangles).
func uvSphereTriangles(center types.Vec3, radius float32, lonSegments, latSegments int) []geom.Triangle {
	vertex := func(lon, lat int) types.Vec3 {
		theta := float64(lat) / float64(latSegments) * math.Pi
		phi := float64(lon) / float64(lonSegments) * 2 * math.Pi
		return sphericalPoint(center, radius, theta, phi)
	}

	var tris []geom.Triangle
	for lat := 0; lat < latSegments; lat++ {
		for lon := 0; lon < lonSegments; lon++ {
			v00 := vertex(lon, lat)
			v01 := vertex(lon, lat+1)
			v10 := vertex(lon+1, lat)
			v11 := vertex(lon+1, lat+1)

			if lat != 0 {
				tris = append(tris, geom.NewTriangle(v00, v01, v10))
			}
			if lat != latSegments-1 {
				tris = append(tris, geom.NewTriangle(v10, v01, v11))
			}
		}
	}
	return tris
}

func sphericalPoint(center types.Vec3, radius float32, theta, phi float64) types.Vec3 {
	sinT, cosT := math.Sin(theta), math.Cos(theta)
	sinP, cosP := math.Sin(phi), math.Cos(phi)
	x := radius * float32(sinT*cosP)
	y := radius * float32(cosT)
	z := radius * float32(sinT*sinP)
	return center.Add(types.Vec3{x, y, z})
}

// MirrorInMirror is scenario 6: two facing mirror planes with a diffuse
// sphere between them, used to exercise bounce-depth limits.
func MirrorInMirror() (*scene.Scene, *scene.Camera) {
	mirrorMat := material.New()
	mirrorMat.Diffuse = types.Vec3{0.02, 0.02, 0.02}
	mirrorMat.Reflection = 0.95

	left := geom.NewPlane(types.Vec3{-3, 0, 0}, types.Vec3{1, 0, 0}, mirrorMat)
	right := geom.NewPlane(types.Vec3{3, 0, 0}, types.Vec3{-1, 0, 0}, mirrorMat)

	ballMat := material.New()
	ballMat.Diffuse = types.Vec3{0.9, 0.6, 0.1}
	ball := geom.NewSphere(types.Translate4(types.Vec3{0, 0, 5}), ballMat)

	sc := scene.New()
	sc.AddObject(left)
	sc.AddObject(right)
	sc.AddObject(ball)
	sc.AddLight(scene.NewLight(types.Vec3{0, 5, 3}, types.Vec3{1, 1, 1}))

	return sc, defaultCamera(256, 256)
}

// TiltedCamera is scenario 7: the red-sphere setup viewed from a camera
// rotated 15 degrees around the Y axis, exercising Camera.Rotation and the
// quaternion-to-matrix path in RotationFromAxisAngle.
func TiltedCamera() (*scene.Scene, *scene.Camera) {
	mat := material.New()
	mat.Diffuse = types.Vec3{1, 0, 0}
	sphere := geom.NewSphere(types.Translate4(types.Vec3{0, 0, 5}), mat)

	sc := scene.New()
	sc.AddObject(sphere)
	sc.AddLight(scene.NewLight(types.Vec3{0, 5, 0}, types.Vec3{1, 1, 1}))

	rotation := scene.RotationFromAxisAngle(types.Vec3{0, 1, 0}, float32(15*math.Pi/180))
	cam := scene.NewCamera(256, 256, 1.0472, types.Vec3{}, rotation)

	return sc, cam
}
