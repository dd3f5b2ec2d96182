package shape

import (
	"math"

	"github.com/nicolasmd87/gophertrace/internal/raytracer/bounds"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/ray"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

// Plane is the xz-plane y=0, infinite in x and z.
type Plane struct{}

func NewPlane() *Plane { return &Plane{} }

func (p *Plane) LocalIntersect(r ray.Ray) []Hit {
	if math.Abs(r.Direction.Y) < vecmath.Epsilon {
		return nil
	}
	t := -r.Origin.Y / r.Direction.Y
	return []Hit{{T: t}}
}

func (p *Plane) LocalNormalAt(point vecmath.Tuple, hit *Hit) vecmath.Tuple {
	return vecmath.Vector(0, 1, 0)
}

func (p *Plane) Bounds() bounds.BoundingBox {
	inf := math.Inf(1)
	return bounds.New(vecmath.Point(-inf, 0, -inf), vecmath.Point(inf, 0, inf))
}
