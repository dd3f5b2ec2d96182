package shape

import (
	"math"

	"github.com/nicolasmd87/gophertrace/internal/raytracer/bounds"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/ray"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

// Cube is the axis-aligned [-1,1]^3 box.
type Cube struct{}

func NewCube() *Cube { return &Cube{} }

func checkAxis(origin, direction float64) (tmin, tmax float64) {
	tminNumerator := -1 - origin
	tmaxNumerator := 1 - origin

	if math.Abs(direction) >= vecmath.Epsilon {
		tmin = tminNumerator / direction
		tmax = tmaxNumerator / direction
	} else {
		tmin = tminNumerator * math.Inf(1)
		tmax = tmaxNumerator * math.Inf(1)
	}
	if tmin > tmax {
		tmin, tmax = tmax, tmin
	}
	return
}

func (c *Cube) LocalIntersect(r ray.Ray) []Hit {
	xtmin, xtmax := checkAxis(r.Origin.X, r.Direction.X)
	ytmin, ytmax := checkAxis(r.Origin.Y, r.Direction.Y)
	ztmin, ztmax := checkAxis(r.Origin.Z, r.Direction.Z)

	tmin := math.Max(xtmin, math.Max(ytmin, ztmin))
	tmax := math.Min(xtmax, math.Min(ytmax, ztmax))

	if tmin > tmax {
		return nil
	}
	return []Hit{{T: tmin}, {T: tmax}}
}

// LocalNormalAt picks the axis on which |component| is maximal, with its
// sign. When two axes tie, the first checked in x, y, z order wins — spec.md
// §9's open question on cube corner ties is resolved this way and is
// harmless because edge-exact hits are measure-zero.
func (c *Cube) LocalNormalAt(point vecmath.Tuple, hit *Hit) vecmath.Tuple {
	absX, absY, absZ := math.Abs(point.X), math.Abs(point.Y), math.Abs(point.Z)
	maxc := math.Max(absX, math.Max(absY, absZ))

	switch {
	case maxc == absX:
		return vecmath.Vector(point.X, 0, 0)
	case maxc == absY:
		return vecmath.Vector(0, point.Y, 0)
	default:
		return vecmath.Vector(0, 0, point.Z)
	}
}

func (c *Cube) Bounds() bounds.BoundingBox {
	return bounds.New(vecmath.Point(-1, -1, -1), vecmath.Point(1, 1, 1))
}
