// Package shape implements the primitive families of spec.md §3/§4.3/§4.4
// in their canonical local frame: sphere, plane, cube, cylinder, triangle,
// smooth triangle. Each is a closed tagged variant in spec.md's original
// design; Go lacks closed sum types, so per spec.md §9 this is realized as
// interface dispatch instead of an enum match. This package has zero
// dependency on the object package (object composes a Shape, not the
// other way around) to keep the scene-graph import graph acyclic.
//
// Sphere and Triangle intersection are grounded directly on the teacher's
// internal/renderer/raycasting.go (RayIntersectSphere's quadratic root
// arithmetic, RayIntersectTriangle's Möller-Trumbore), adapted from a
// "closest single hit" result to "emit every hit, let the intersection
// engine filter" per spec.md §4.3, and from mgl32 to vecmath's float64
// tuples. Plane, cube, cylinder have no teacher analogue and are grounded
// on _examples/original_source/src/shapes/*.rs.
package shape

import (
	"math"
	"sort"

	"github.com/nicolasmd87/gophertrace/internal/raytracer/bounds"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/ray"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

// Hit is one local-space intersection: a parametric distance plus the
// barycentric (u, v) pair smooth triangles need at shading time.
type Hit struct {
	T    float64
	U, V float64
}

// Shape is the capability spec.md §9 calls "Hittable": intersect, normal,
// and bounds, realized per concrete primitive.
type Shape interface {
	LocalIntersect(r ray.Ray) []Hit
	LocalNormalAt(p vecmath.Tuple, hit *Hit) vecmath.Tuple
	Bounds() bounds.BoundingBox
}

func sortHitsByT(hits []Hit) {
	sort.Slice(hits, func(i, j int) bool { return hits[i].T < hits[j].T })
}
