package scene

import "github.com/cosmcif/raytracer/types"

// Light is a point light source: a position and an unclamped RGB color
// whose magnitude doubles as intensity. There is no attenuation model;
// falloff is left to the shader's own distance-based terms, if any.
type Light struct {
	Position types.Vec3
	Color    types.Vec3
}

// NewLight builds a Light at position with the given color/intensity.
func NewLight(position, color types.Vec3) *Light {
	return &Light{Position: position, Color: color}
}
