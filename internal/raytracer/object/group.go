package object

import (
	"github.com/nicolasmd87/gophertrace/internal/raytracer/bounds"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/intersection"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/ray"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

// Group is the ordered sequence of child Objects of spec.md §3/§4.3/§4.5.
// Mesh is the specialization whose children are all triangles; it is
// represented by the same Group type with isMesh set, since the only
// behavioral difference spec.md names is the child shape kind, not the
// traversal/BVH algorithm.
type Group struct {
	Children []*Object
	isMesh   bool
}

func NewMesh() *Object {
	o := NewGroup()
	o.group.isMesh = true
	return o
}

func (g *Group) IsMesh() bool { return g.isMesh }

func (g *Group) Add(child *Object) {
	g.Children = append(g.Children, child)
}

func (g *Group) boundsUnion() bounds.BoundingBox {
	box := bounds.Empty()
	for _, c := range g.Children {
		box = box.Merge(c.WorldBounds())
	}
	return box
}

// applyTransform descends the new transform into every child, per spec.md
// §9: a Group has no standalone transform of its own. The new transform
// composes on top of whatever the child already had.
func (g *Group) applyTransform(t vecmath.Transform) {
	for _, c := range g.Children {
		combined := t.Matrix().Mul(c.transform.Matrix())
		c.SetTransform(vecmath.TransformFromMatrix(combined))
	}
}

// Intersect implements spec.md §4.3: if the group's own bounding box
// misses the ray, return empty; otherwise union the children's
// intersections, each applying its own transform internally.
func (g *Group) Intersect(r ray.Ray) intersection.Intersections {
	box := g.boundsUnion()
	if !box.Intersects(r) {
		return nil
	}

	var all intersection.Intersections
	for _, c := range g.Children {
		all = append(all, c.Intersect(r)...)
	}
	return all
}

// Divide implements the BVH construction of spec.md §4.5: when the child
// count is at least threshold, split the group's bounding box along its
// longest axis and bucket children into left/right/straddling groups,
// recursing into every child with the same threshold.
func Divide(o *Object, threshold int) {
	g := o.group
	if g == nil {
		return
	}
	if len(g.Children) >= threshold {
		left, right := g.boundsUnion().Split()
		var leftChildren, rightChildren, remaining []*Object

		for _, c := range g.Children {
			switch {
			case left.ContainsBox(c.WorldBounds()):
				leftChildren = append(leftChildren, c)
			case right.ContainsBox(c.WorldBounds()):
				rightChildren = append(rightChildren, c)
			default:
				remaining = append(remaining, c)
			}
		}

		g.Children = remaining
		if len(leftChildren) > 0 {
			sub := NewGroup()
			sub.group.Children = leftChildren
			sub.recomputeWorldBBox()
			g.Children = append(g.Children, sub)
		}
		if len(rightChildren) > 0 {
			sub := NewGroup()
			sub.group.Children = rightChildren
			sub.recomputeWorldBBox()
			g.Children = append(g.Children, sub)
		}
	}

	for _, c := range g.Children {
		if c.IsGroup() {
			Divide(c, threshold)
		}
	}
}
