// Package shade implements the recursive local-illumination evaluator:
// direct lighting per light, shadow testing, and recursive reflection and
// refraction with an energy-conserving Fresnel split.
package shade

import (
	"math"

	"github.com/cosmcif/raytracer/geom"
	"github.com/cosmcif/raytracer/material"
	"github.com/cosmcif/raytracer/scene"
	"github.com/cosmcif/raytracer/types"
)

// Epsilon is the self-intersection offset for shadow, reflection and
// refraction ray origins, shared with the geom package's own constant.
const Epsilon = geom.Epsilon

// Shade evaluates the radiance reaching viewDir's origin from hit, given the
// remaining recursion budget. The result is unclamped; the caller (the tile
// renderer, after tonemapping) is responsible for the final clamp.
func Shade(sc *scene.Scene, hit geom.Hit, viewDir types.Vec3, bouncesLeft int) types.Vec3 {
	mat := hit.Object.Material()

	nGeom, nShade := hit.GeometricNormal, hit.ShadingNormal
	if nGeom.Dot(viewDir) < 0 {
		nGeom = nGeom.Negate()
	}
	if nShade.Dot(viewDir) < 0 {
		nShade = nShade.Negate()
	}

	color := directLighting(sc, hit.Point, nGeom, nShade, hit.UV, viewDir, hit.Tangent, hit.Bitangent, mat)

	if bouncesLeft > 0 {
		color = color.MulVec(bounceAttenuation(mat))
		color = color.Add(bounces(sc, hit.Point, nShade, viewDir, mat, bouncesLeft))
	}

	color = color.Add(ambientTerm(sc, hit.UV, mat))

	return color
}

// bounceAttenuation returns the (1-reflection)*(1-refraction) factor that
// the locally-lit color is scaled by before the recursive reflection and
// refraction contributions are added back in.
func bounceAttenuation(mat *material.Material) types.Vec3 {
	f := float32(1)
	if mat.Reflection > 0 {
		f *= 1 - mat.Reflection
	}
	if mat.Refraction > 0 {
		f *= 1 - mat.Refraction
	}
	return types.Vec3{f, f, f}
}

func directLighting(sc *scene.Scene, point, nGeom, nShade types.Vec3, uv types.Vec2, viewDir, tangent, bitangent types.Vec3, mat *material.Material) types.Vec3 {
	var total types.Vec3
	for _, light := range sc.Lights {
		toLight := light.Position.Sub(point)
		d := toLight.Len()
		if d == 0 {
			continue
		}
		l := toLight.Normalize()

		if nGeom.Dot(l) < 0 {
			continue // light is behind the surface
		}
		shadowRay := geom.Offset(point, l)
		if sc.Occluded(shadowRay, d) {
			continue
		}

		diffuseColor := mat.DiffuseAt(uv)
		diffuseFactor := float32(math.Max(0, float64(l.Dot(nShade))))
		h := l.Add(viewDir).Normalize()
		atten := 1 / float32(math.Max(0.1, float64(d))*math.Max(0.1, float64(d)))

		diffuse := light.Color.MulVec(diffuseColor).Mul(atten * diffuseFactor)
		specular := specularTerm(mat, uv, nShade, tangent, bitangent, h, l, viewDir, light.Color, atten)

		total = total.Add(diffuse).Add(specular)
	}
	return total
}

// specularTerm picks the isotropic Phong/roughness-map term or, for
// anisotropic materials, the Ward term. Ward needs a tangent basis; when
// the hit carries none (tangent is the zero vector), an arbitrary in-plane
// basis is built from the normal so the material still produces a
// (non-oriented) highlight rather than silently falling back to Phong.
func specularTerm(mat *material.Material, uv types.Vec2, n, tangent, bitangent, h, l, v types.Vec3, lightColor types.Vec3, atten float32) types.Vec3 {
	if mat.Anisotropic {
		t, b := tangent, bitangent
		if t.IsZero() {
			t, b = arbitraryTangentBasis(n)
		}
		return wardSpecular(mat, n, t, b, h, l, v, lightColor, atten)
	}

	shininess := mat.Shininess
	if roughness, ok := mat.RoughnessAt(uv); ok && roughness > 0 {
		r2 := roughness * roughness
		shininess = 0.5/(r2*r2) - 0.5
	}

	nh := float32(math.Max(0, float64(h.Dot(n))))
	factor := float32(math.Pow(float64(nh), float64(4*shininess)))
	return lightColor.MulVec(mat.Specular).Mul(atten * factor)
}

// wardSpecular evaluates the anisotropic Ward BRDF term.
func wardSpecular(mat *material.Material, n, t, b, h, l, v types.Vec3, lightColor types.Vec3, atten float32) types.Vec3 {
	nl := n.Dot(l)
	nv := n.Dot(v)
	if nl <= 0 || nv <= 0 {
		return types.Vec3{}
	}

	ht := h.Dot(t)
	hb := h.Dot(b)
	hn := h.Dot(n)

	ax, ay := mat.AlphaX, mat.AlphaY
	exponent := -2 * ((ht/ax)*(ht/ax) + (hb/ay)*(hb/ay)) / (1 + hn)
	denom := float32(math.Sqrt(float64(nl*nv))) * 4 * math.Pi * ax * ay
	if denom == 0 {
		return types.Vec3{}
	}
	factor := nl * float32(math.Exp(float64(exponent))) / denom
	return lightColor.MulVec(mat.Specular).Mul(atten * factor)
}

func arbitraryTangentBasis(n types.Vec3) (types.Vec3, types.Vec3) {
	up := types.Vec3{0, 1, 0}
	if math.Abs(float64(n[1])) > 0.99 {
		up = types.Vec3{1, 0, 0}
	}
	t := up.Cross(n).Normalize()
	b := n.Cross(t)
	return t, b
}

func bounces(sc *scene.Scene, point, nShade, viewDir types.Vec3, mat *material.Material, bouncesLeft int) types.Vec3 {
	var reflected, refracted types.Vec3
	haveRefracted := false
	var n1, n2 float32
	var refractDir types.Vec3

	if mat.Reflection > 0 {
		r := viewDir.Reflect(nShade)
		ray := geom.Offset(point, r)
		hit := sc.Closest(ray)
		if hit.Valid {
			reflected = Shade(sc, hit, ray.Direction.Negate(), bouncesLeft-1).Mul(mat.Reflection)
		}
	}

	if mat.Refraction > 0 {
		entering := nShade.Dot(viewDir.Negate()) < 0
		if entering {
			n1, n2 = 1, mat.Sigma
		} else {
			n1, n2 = mat.Sigma, 1
		}
		refractNormal := nShade
		if !entering {
			refractNormal = nShade.Negate()
		}
		t, ok := viewDir.Refract(refractNormal, n1/n2)
		if ok {
			refractDir = t
			ray := geom.Offset(point, t)
			hit := sc.Closest(ray)
			if hit.Valid {
				refracted = Shade(sc, hit, ray.Direction.Negate(), bouncesLeft-1).Mul(mat.Refraction)
				haveRefracted = true
			}
		}
	}

	if mat.Reflection > 0 && haveRefracted {
		theta1 := angleBetween(nShade, viewDir)
		theta2 := angleBetween(nShade.Negate(), refractDir)
		cos1 := float32(math.Cos(float64(theta1)))
		cos2 := float32(math.Cos(float64(theta2)))

		rs := (n1*cos1 - n2*cos2) / (n1*cos1 + n2*cos2)
		rp := (n1*cos2 - n2*cos1) / (n1*cos2 + n2*cos1)
		rCoef := 0.5 * (rs*rs + rp*rp)
		tCoef := 1 - rCoef

		reflected = reflected.Mul(rCoef)
		refracted = refracted.Mul(tCoef)
	}

	return reflected.Add(refracted)
}

func angleBetween(a, b types.Vec3) float32 {
	cos := a.Dot(b)
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return float32(math.Acos(float64(cos)))
}

// ambientTerm evaluates the ambient contribution: sc.Ambient scaled by the
// material's own ambient reflectance, or, when the material binds an
// occlusion map, sc.Ambient scaled by 0.1*occlusion(uv) instead. The two
// are mutually exclusive rather than combined, so an occlusion map is never
// silently multiplied against a material's (commonly zero) Ambient field.
func ambientTerm(sc *scene.Scene, uv types.Vec2, mat *material.Material) types.Vec3 {
	if occlusion, ok := mat.OcclusionAt(uv); ok {
		return sc.Ambient.Mul(0.1 * occlusion)
	}
	return sc.Ambient.MulVec(mat.Ambient)
}
