package shape

import (
	"github.com/nicolasmd87/gophertrace/internal/raytracer/bounds"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/ray"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

// SmoothTriangle augments Triangle with three per-vertex normals,
// interpolated by the barycentric (u, v) of the hit at shading time.
type SmoothTriangle struct {
	P1, P2, P3 vecmath.Tuple
	N1, N2, N3 vecmath.Tuple
	e1, e2     vecmath.Tuple
}

func NewSmoothTriangle(p1, p2, p3, n1, n2, n3 vecmath.Tuple) *SmoothTriangle {
	return &SmoothTriangle{
		P1: p1, P2: p2, P3: p3,
		N1: n1, N2: n2, N3: n3,
		e1: p2.Sub(p1),
		e2: p3.Sub(p1),
	}
}

func (t *SmoothTriangle) LocalIntersect(r ray.Ray) []Hit {
	hit, ok := triangleIntersect(t.P1, t.e1, t.e2, r)
	if !ok {
		return nil
	}
	return []Hit{hit}
}

// LocalNormalAt blends n2*u + n3*v + n1*(1-u-v), per spec.md §4.3/§4.4. The
// flat Triangle.LocalIntersect hit carries U=V=0 by default so a nil *Hit
// here would wrongly collapse to N1 alone; callers must always pass the
// hit that produced this intersection.
func (t *SmoothTriangle) LocalNormalAt(point vecmath.Tuple, hit *Hit) vecmath.Tuple {
	var u, v float64
	if hit != nil {
		u, v = hit.U, hit.V
	}
	return t.N2.Mul(u).Add(t.N3.Mul(v)).Add(t.N1.Mul(1 - u - v))
}

func (t *SmoothTriangle) Bounds() bounds.BoundingBox {
	return bounds.Empty().AddPoint(t.P1).AddPoint(t.P2).AddPoint(t.P3)
}
