// Package world implements spec.md §3/§4.8/§4.10: the World scene
// container and the recursive color_at shading pipeline (direct lighting,
// reflection, refraction, Schlick mixing, shadow testing). Grounded on
// _examples/original_source/src/world.rs for the color_at/shade_hit/
// is_shadowed control flow, adapted from a single-PointLight-reference
// lighting call to the light.Light interface so AreaLight shares the same
// path. World implements light.Occluder so lights never import world.
package world

import (
	"math"

	"github.com/nicolasmd87/gophertrace/internal/raytracer/color"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/intersection"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/light"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/object"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/ray"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

type World struct {
	Objects []*object.Object
	Lights  []light.Light
}

func New() *World { return &World{} }

func (w *World) AddObject(o *object.Object) { w.Objects = append(w.Objects, o) }
func (w *World) AddLight(l light.Light)     { w.Lights = append(w.Lights, l) }

func (w *World) intersect(r ray.Ray) intersection.Intersections {
	var all intersection.Intersections
	for _, o := range w.Objects {
		all = append(all, o.Intersect(r)...)
	}
	return all.Sort()
}

// IsShadowed implements light.Occluder: a shadow ray from `from` toward
// `to` is occluded when some shadow-casting object hits it closer than the
// distance between the two points.
func (w *World) IsShadowed(from, to vecmath.Tuple) bool {
	rayVector := to.Sub(from)
	distance := rayVector.Magnitude()
	r := ray.New(from, rayVector.Normalize())

	xs := w.intersect(r)
	hit, ok := xs.Hit(intersection.ShadowHit)
	return ok && hit.T < distance
}

// ColorAt implements spec.md §4.8 steps 1-3: intersect, find the first
// non-negative hit, and shade it. When nothing is hit it returns Black and
// false; callers substitute their own background color.
func (w *World) ColorAt(r ray.Ray, remaining int) (color.Color, bool) {
	xs := w.intersect(r)
	idx, ok := xs.HitIndex(intersection.StandardHit)
	if !ok {
		return color.Black(), false
	}
	info := intersection.PrepareComputations(xs, idx, r)
	return w.ShadeHit(info, remaining), true
}

// ShadeHit implements spec.md §4.8 steps 4-7: direct lighting summed over
// every light, plus recursive reflected/refracted contributions, combined
// via the Schlick mix when the material is both reflective and
// transparent.
func (w *World) ShadeHit(info intersection.Info, remaining int) color.Color {
	surfaceColor := info.Object.(colorAtCapable).ColorAt(info.OverPoint)
	mat := info.Object.Material()

	direct := color.Black()
	for _, l := range w.Lights {
		effectiveColor := surfaceColor.Mul(l.Color())
		intensity := l.IntensityAt(info.OverPoint, w)
		direct = direct.Add(mat.Lighting(l, effectiveColor, info.OverPoint, info.Eyev, info.Normalv, intensity))
	}

	reflected := w.ReflectedColor(info, remaining)
	refracted := w.RefractedColor(info, remaining)

	if mat.Reflective > 0 && mat.Transparency > 0 {
		reflectance := intersection.Schlick(info)
		return direct.Add(reflected.Scale(reflectance)).Add(refracted.Scale(1 - reflectance))
	}
	return direct.Add(reflected).Add(refracted)
}

// colorAtCapable is implemented by *object.Object; declared locally so
// this package depends on object's concrete type only through the method
// it actually calls.
type colorAtCapable interface {
	ColorAt(worldPoint vecmath.Tuple) color.Color
}

func (w *World) ReflectedColor(info intersection.Info, remaining int) color.Color {
	reflective := info.Object.Material().Reflective
	if remaining < 1 || reflective == 0 {
		return color.Black()
	}

	reflectRay := ray.New(info.OverPoint, info.Reflectv)
	c, ok := w.ColorAt(reflectRay, remaining-1)
	if !ok {
		return color.Black()
	}
	return c.Scale(reflective)
}

func (w *World) RefractedColor(info intersection.Info, remaining int) color.Color {
	transparency := info.Object.Material().Transparency
	if remaining < 1 || transparency == 0 {
		return color.Black()
	}

	ratio := info.N1 / info.N2
	cosI := info.Eyev.Dot(info.Normalv)
	sin2t := ratio * ratio * (1 - cosI*cosI)
	if sin2t > 1 {
		return color.Black() // total internal reflection
	}

	cosT := math.Sqrt(1 - sin2t)
	direction := info.Normalv.Mul(ratio*cosI - cosT).Sub(info.Eyev.Mul(ratio))
	refractRay := ray.New(info.UnderPoint, direction)

	c, ok := w.ColorAt(refractRay, remaining-1)
	if !ok {
		return color.Black()
	}
	return c.Scale(transparency)
}
