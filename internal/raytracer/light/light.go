// Package light implements the PointLight and AreaLight of spec.md
// §3/§4.8/§4.10, grounded on _examples/original_source/src/lights/*.rs for
// the exact shadow-attenuation semantics: a light's IntensityAt returns a
// pure [0,1] visibility scalar (1.0/0.0 for PointLight, an averaged
// fraction of unobstructed samples for AreaLight); the Phong direction
// term (material.Lighting's L vector) always uses a single representative
// Position(), never an average of per-sample directions.
//
// IntensityAt depends on a local Occluder interface rather than a concrete
// *world.World, so this package never imports world (which would import
// light back for World.Lights) — avoiding a light<->world import cycle.
package light

import (
	"github.com/nicolasmd87/gophertrace/internal/raytracer/color"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

// Occluder answers whether the segment between two world points is blocked
// by shadow-casting geometry; world.World implements it.
type Occluder interface {
	IsShadowed(from, to vecmath.Tuple) bool
}

// Light is satisfied by both PointLight and AreaLight, realizing spec.md
// §9's "tagged variant via interface dispatch" substitution.
type Light interface {
	Position() vecmath.Tuple
	Color() color.Color
	IntensityAt(point vecmath.Tuple, occluder Occluder) float64
}
