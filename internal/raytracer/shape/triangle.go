package shape

import (
	"math"

	"github.com/nicolasmd87/gophertrace/internal/raytracer/bounds"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/ray"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

// Triangle holds three vertices and the precomputed edges/normal spec.md
// §3 specifies. Grounded on the teacher's RayIntersectTriangle
// (Möller-Trumbore), generalized to emit the barycentric (u, v) pair so
// SmoothTriangle can interpolate vertex normals from the same hit.
type Triangle struct {
	P1, P2, P3 vecmath.Tuple
	E1, E2     vecmath.Tuple
	Normal     vecmath.Tuple
}

func NewTriangle(p1, p2, p3 vecmath.Tuple) *Triangle {
	e1 := p2.Sub(p1)
	e2 := p3.Sub(p1)
	normal := e2.Cross(e1).Normalize()
	return &Triangle{P1: p1, P2: p2, P3: p3, E1: e1, E2: e2, Normal: normal}
}

func (t *Triangle) LocalIntersect(r ray.Ray) []Hit {
	hit, ok := triangleIntersect(t.P1, t.E1, t.E2, r)
	if !ok {
		return nil
	}
	return []Hit{hit}
}

// triangleIntersect is shared by Triangle and SmoothTriangle: both use the
// same edges, differing only in how the normal is resolved at shading time.
func triangleIntersect(p1, e1, e2 vecmath.Tuple, r ray.Ray) (Hit, bool) {
	dirCrossE2 := r.Direction.Cross(e2)
	det := e1.Dot(dirCrossE2)
	if math.Abs(det) < vecmath.Epsilon {
		return Hit{}, false
	}

	f := 1.0 / det
	p1ToOrigin := r.Origin.Sub(p1)
	u := f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return Hit{}, false
	}

	originCrossE1 := p1ToOrigin.Cross(e1)
	v := f * r.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return Hit{}, false
	}

	t := f * e2.Dot(originCrossE1)
	return Hit{T: t, U: u, V: v}, true
}

func (t *Triangle) LocalNormalAt(point vecmath.Tuple, hit *Hit) vecmath.Tuple {
	return t.Normal
}

func (t *Triangle) Bounds() bounds.BoundingBox {
	return bounds.Empty().AddPoint(t.P1).AddPoint(t.P2).AddPoint(t.P3)
}
