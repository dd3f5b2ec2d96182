// Package intersection implements spec.md §3/§4.8/§4.9: the Intersection
// list, hit selection under a pluggable predicate, and the IntersectionInfos
// shading context (over/under-point, eye/normal/reflect vectors, the inside
// flag, and the n1/n2 refractive-index container-stack scan).
//
// Object is referenced through the Hittable capability interface this
// package declares rather than importing object directly:
// object imports intersection (Object.Intersect returns []Intersection),
// so intersection must not import object back.
package intersection

import (
	"math"
	"sort"

	"github.com/nicolasmd87/gophertrace/internal/raytracer/material"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/ray"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

// Hittable is the minimal surface an Object exposes to this package: world
// normal at a point, and the material/shadow-flag shading needs.
type Hittable interface {
	NormalAt(worldPoint vecmath.Tuple, u, v float64) vecmath.Tuple
	Material() material.Material
	CastsShadow() bool
}

type Intersection struct {
	T      float64
	Object Hittable
	U, V   float64
}

type Intersections []Intersection

func (xs Intersections) Sort() Intersections {
	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
	return xs
}

// Predicate selects which intersection counts as "the" hit: the standard
// predicate (first non-negative t) or the shadow predicate (first
// non-negative t whose object casts a shadow).
type Predicate func(Intersection) bool

func StandardHit(i Intersection) bool { return i.T >= 0 }
func ShadowHit(i Intersection) bool   { return i.T >= 0 && i.Object.CastsShadow() }

// Hit returns the first intersection (in ascending-t order) satisfying
// pred, or false if none does. xs must already be sorted.
func (xs Intersections) Hit(pred Predicate) (Intersection, bool) {
	for _, x := range xs {
		if pred(x) {
			return x, true
		}
	}
	return Intersection{}, false
}

// HitIndex is Hit but returns the index into xs, used by PrepareComputations
// which needs to scan the full list relative to the selected hit.
func (xs Intersections) HitIndex(pred Predicate) (int, bool) {
	for i, x := range xs {
		if pred(x) {
			return i, true
		}
	}
	return -1, false
}

// Info is the precomputed shading context of spec.md §3 (IntersectionInfos).
type Info struct {
	T                        float64
	Object                   Hittable
	Point                    vecmath.Tuple
	OverPoint, UnderPoint    vecmath.Tuple
	Eyev, Normalv, Reflectv  vecmath.Tuple
	Inside                   bool
	N1, N2                   float64
}

// PrepareComputations builds Info for xs[hitIndex] against r, scanning the
// full sorted list for the n1/n2 refractive-index container stack (spec.md
// §4.9) — callers must never pass a pre-filtered "positives only" slice,
// or rays originating inside a transparent object will shade incorrectly.
func PrepareComputations(xs Intersections, hitIndex int, r ray.Ray) Info {
	hit := xs[hitIndex]

	point := r.At(hit.T)
	eyev := r.Direction.Neg()
	normalv := hit.Object.NormalAt(point, hit.U, hit.V)

	inside := false
	if normalv.Dot(eyev) < 0 {
		inside = true
		normalv = normalv.Neg()
	}

	reflectv := r.Direction.Reflect(normalv)
	overPoint := point.Add(normalv.Mul(vecmath.Epsilon))
	underPoint := point.Sub(normalv.Mul(vecmath.Epsilon))

	n1, n2 := refractiveIndices(xs, hitIndex)

	return Info{
		T:          hit.T,
		Object:     hit.Object,
		Point:      point,
		OverPoint:  overPoint,
		UnderPoint: underPoint,
		Eyev:       eyev,
		Normalv:    normalv,
		Reflectv:   reflectv,
		Inside:     inside,
		N1:         n1,
		N2:         n2,
	}
}

// refractiveIndices implements the container-stack scan of spec.md §4.9.
func refractiveIndices(xs Intersections, hitIndex int) (n1, n2 float64) {
	var containers []Hittable

	contains := func(o Hittable) int {
		for i, c := range containers {
			if c == o {
				return i
			}
		}
		return -1
	}

	for i, x := range xs {
		if i == hitIndex {
			if len(containers) == 0 {
				n1 = 1.0
			} else {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		if idx := contains(x.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if i == hitIndex {
			if len(containers) == 0 {
				n2 = 1.0
			} else {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			break
		}
	}
	return n1, n2
}

// Schlick computes the Schlick approximation to the Fresnel reflectance at
// a dielectric interface, given the prepared Info.
func Schlick(info Info) float64 {
	cos := info.Eyev.Dot(info.Normalv)

	if info.N1 > info.N2 {
		n := info.N1 / info.N2
		sin2t := n * n * (1.0 - cos*cos)
		if sin2t > 1.0 {
			return 1.0
		}
		cosT := math.Sqrt(1.0 - sin2t)
		cos = cosT
	}

	r0 := (info.N1 - info.N2) / (info.N1 + info.N2)
	r0 *= r0
	return r0 + (1-r0)*pow5(1-cos)
}

func pow5(x float64) float64 { return x * x * x * x * x }
