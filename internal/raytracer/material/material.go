// Package material implements spec.md §3/§4.7: the Material tuple and the
// Phong Lighting computation. Lighting takes a pre-resolved
// effectiveColor rather than an Object/Pattern reference — object.ColorAt
// does the two-stage pattern resolution and passes the result in — to keep
// this package from importing object (which imports material back for its
// own field), avoiding a material<->object import cycle.
//
// The Phong formula itself is spec.md §4.7, authoritative over the ad hoc
// ambient-floor variant other_examples' Grinder shading.ShadedColor uses;
// this package borrows Grinder's function *shape* (point, normal, eye,
// light, attenuation in, color out) rather than its exact arithmetic.
package material

import (
	"math"

	"github.com/nicolasmd87/gophertrace/internal/raytracer/color"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/pattern"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

type Material struct {
	Pattern         *pattern.PatternObject // nil means a plain Color is used instead
	Color           color.Color
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// Default returns the spec.md §3 defaults.
func Default() Material {
	return Material{
		Color:           color.White(),
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1,
	}
}

// LightSource is the minimal surface Lighting needs from a light — either
// a PointLight or an AreaLight satisfies it without this package importing
// the light package (light already imports material's Color only
// transitively through color, so this stays one-directional too).
type LightSource interface {
	Position() vecmath.Tuple
	Color() color.Color
}

// Lighting implements the Phong formula of spec.md §4.7. effectiveColor is
// pattern.color_at_object(object, point) * light.Color(), already mixed by
// the caller; intensity is the light's precomputed visibility alpha
// (1=fully lit, 0=full shadow, fractional for area lights, see §4.10).
func (m Material) Lighting(light LightSource, effectiveColor color.Color, point, eyev, normalv vecmath.Tuple, intensity float64) color.Color {
	ambient := effectiveColor.Scale(m.Ambient)

	lightv := light.Position().Sub(point).Normalize()
	lDotN := lightv.Dot(normalv)

	diffuse := color.Black()
	specular := color.Black()

	if lDotN >= 0 {
		diffuse = effectiveColor.Scale(m.Diffuse * lDotN)

		reflectv := lightv.Neg().Reflect(normalv)
		rDotE := reflectv.Dot(eyev)
		if rDotE > 0 {
			factor := math.Pow(rDotE, m.Shininess)
			specular = light.Color().Scale(m.Specular * factor)
		}
	}

	return ambient.Add(diffuse.Add(specular).Scale(intensity))
}
