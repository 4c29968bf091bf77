// Package material defines the declarative surface properties evaluated by
// the shader.
package material

import "github.com/cosmcif/raytracer/types"

// ColorFunc is a pure function from a surface UV coordinate to an RGB
// color, implemented either by a procedural texture or an image texture
// lookup.
type ColorFunc func(uv types.Vec2) types.Vec3

// NormalMapFunc returns a tangent-space normal in [-1,1]^3 for a UV
// coordinate.
type NormalMapFunc func(uv types.Vec2) types.Vec3

// ScalarFunc samples a single scalar channel (roughness, occlusion) from a
// UV coordinate.
type ScalarFunc func(uv types.Vec2) float32

// Material is a plain value object; nothing here is mutated once a scene is
// constructed.
type Material struct {
	Ambient  types.Vec3
	Diffuse  types.Vec3
	Specular types.Vec3

	Shininess float32

	Reflection float32
	Refraction float32
	Sigma      float32 // index of refraction, >= 1

	// Texture is an optional procedural or image color lookup; when nil,
	// Diffuse is used directly.
	Texture ColorFunc

	// NormalMap is an optional tangent-space normal perturbation.
	NormalMap NormalMapFunc

	// Anisotropic materials use the Ward distribution
	// instead of the isotropic Phong/Blinn specular term.
	Anisotropic bool
	AlphaX      float32
	AlphaY      float32

	// Optional image-texture bindings.
	RoughnessMap ScalarFunc
	OcclusionMap ScalarFunc
}

// New returns a Material with sane non-zero defaults: a physically
// plausible sigma (glass-like materials must set their own) and pure
// isotropic Phong shading.
func New() *Material {
	return &Material{
		Sigma: 1,
	}
}

// DiffuseAt returns the diffuse color to use at uv: the bound texture
// function if present, otherwise the flat Diffuse color.
func (m *Material) DiffuseAt(uv types.Vec2) types.Vec3 {
	if m.Texture != nil {
		return m.Texture(uv)
	}
	return m.Diffuse
}

// RoughnessAt returns the image-texture roughness at uv, or ok=false when no
// roughness map is bound.
func (m *Material) RoughnessAt(uv types.Vec2) (float32, bool) {
	if m.RoughnessMap == nil {
		return 0, false
	}
	return m.RoughnessMap(uv), true
}

// OcclusionAt returns the image-texture ambient occlusion at uv, or ok=false
// when no occlusion map is bound.
func (m *Material) OcclusionAt(uv types.Vec2) (float32, bool) {
	if m.OcclusionMap == nil {
		return 0, false
	}
	return m.OcclusionMap(uv), true
}
