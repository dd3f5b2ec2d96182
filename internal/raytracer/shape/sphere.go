package shape

import (
	"math"

	"github.com/nicolasmd87/gophertrace/internal/raytracer/bounds"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/ray"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

// Sphere is the implicit unit sphere at the origin, radius 1.
type Sphere struct{}

func NewSphere() *Sphere { return &Sphere{} }

// LocalIntersect solves (d.d)t^2 + 2(d.o)t + (o.o-1) = 0, grounded on the
// teacher's RayIntersectSphere quadratic, generalized to emit both roots
// (ascending, since the quadratic coefficient 2a is always positive)
// instead of only the closest positive one.
func (s *Sphere) LocalIntersect(r ray.Ray) []Hit {
	sphereToRay := r.Origin.Sub(vecmath.Point(0, 0, 0))

	a := r.Direction.Dot(r.Direction)
	b := 2 * r.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtDisc := math.Sqrt(discriminant)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)
	return []Hit{{T: t1}, {T: t2}}
}

func (s *Sphere) LocalNormalAt(p vecmath.Tuple, hit *Hit) vecmath.Tuple {
	return p.Sub(vecmath.Point(0, 0, 0))
}

func (s *Sphere) Bounds() bounds.BoundingBox {
	return bounds.New(vecmath.Point(-1, -1, -1), vecmath.Point(1, 1, 1))
}
