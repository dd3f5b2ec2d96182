package shape

import (
	"math"

	"github.com/nicolasmd87/gophertrace/internal/raytracer/bounds"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/ray"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

// Cylinder is the infinite unit cylinder around the y-axis, optionally
// truncated to y in [Minimum, Maximum] and optionally closed with end caps.
type Cylinder struct {
	Minimum, Maximum float64
	Closed           bool
}

// NewCylinder returns an untruncated, open cylinder (the shape's default).
func NewCylinder() *Cylinder {
	return &Cylinder{Minimum: math.Inf(-1), Maximum: math.Inf(1), Closed: false}
}

func (c *Cylinder) LocalIntersect(r ray.Ray) []Hit {
	var hits []Hit

	a := r.Direction.X*r.Direction.X + r.Direction.Z*r.Direction.Z
	if math.Abs(a) >= vecmath.Epsilon {
		b := 2*r.Origin.X*r.Direction.X + 2*r.Origin.Z*r.Direction.Z
		cc := r.Origin.X*r.Origin.X + r.Origin.Z*r.Origin.Z - 1

		disc := b*b - 4*a*cc
		if disc < 0 {
			return nil
		}

		sqrtDisc := math.Sqrt(disc)
		t0 := (-b - sqrtDisc) / (2 * a)
		t1 := (-b + sqrtDisc) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		y0 := r.Origin.Y + t0*r.Direction.Y
		if c.Minimum < y0 && y0 < c.Maximum {
			hits = append(hits, Hit{T: t0})
		}
		y1 := r.Origin.Y + t1*r.Direction.Y
		if c.Minimum < y1 && y1 < c.Maximum {
			hits = append(hits, Hit{T: t1})
		}
	}

	hits = append(hits, c.intersectCaps(r)...)
	sortHitsByT(hits)
	return hits
}

func checkCap(r ray.Ray, t float64) bool {
	x := r.Origin.X + t*r.Direction.X
	z := r.Origin.Z + t*r.Direction.Z
	return x*x+z*z <= 1
}

func (c *Cylinder) intersectCaps(r ray.Ray) []Hit {
	if !c.Closed || math.Abs(r.Direction.Y) < vecmath.Epsilon {
		return nil
	}

	var hits []Hit
	tMin := (c.Minimum - r.Origin.Y) / r.Direction.Y
	if checkCap(r, tMin) {
		hits = append(hits, Hit{T: tMin})
	}
	tMax := (c.Maximum - r.Origin.Y) / r.Direction.Y
	if checkCap(r, tMax) {
		hits = append(hits, Hit{T: tMax})
	}
	return hits
}

// LocalNormalAt returns (x,0,z) on the lateral wall, or (0,±1,0) within
// epsilon of a cap.
func (c *Cylinder) LocalNormalAt(point vecmath.Tuple, hit *Hit) vecmath.Tuple {
	dist := point.X*point.X + point.Z*point.Z
	if dist < 1 && point.Y >= c.Maximum-vecmath.Epsilon {
		return vecmath.Vector(0, 1, 0)
	}
	if dist < 1 && point.Y <= c.Minimum+vecmath.Epsilon {
		return vecmath.Vector(0, -1, 0)
	}
	return vecmath.Vector(point.X, 0, point.Z)
}

// Bounds uses Minimum/Maximum directly; an untruncated cylinder therefore
// has an infinite box, same as Plane — BVH grouping only pays off for
// truncated cylinders in practice.
func (c *Cylinder) Bounds() bounds.BoundingBox {
	return bounds.New(vecmath.Point(-1, c.Minimum, -1), vecmath.Point(1, c.Maximum, 1))
}
