// Package object implements the Object/Group/Mesh scene-graph nodes of
// spec.md §3/§4.5/§4.7/§9: shape + material + transform + cached
// world-space bounding box, plus the BVH-building Group/Mesh composite.
//
// Group/Mesh live here rather than in the shape package specifically to
// avoid a shape<->object import cycle: a Group's children are *Object
// (which itself wraps a shape.Shape), so Group cannot live in shape
// without shape importing object.
package object

import (
	"github.com/nicolasmd87/gophertrace/internal/raytracer/bounds"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/color"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/intersection"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/material"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/ray"
	"github.com/nicolasmd87/gophertrace/internal/raytracer/shape"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

// Hittable is the capability every node of the scene graph (primitive or
// composite) exposes through *Object: intersection of a world-space ray
// plus the cached world-space bounding box. A composite Object answers
// both from its Group's children, which carry their own transforms,
// instead of holding a shape.Shape.
type Hittable interface {
	Intersect(r ray.Ray) intersection.Intersections
	Bounds() bounds.BoundingBox
}

// Object is spec.md's composed renderable: a shape plus material,
// transform, shadow flag, and cached world bounding box.
type Object struct {
	shape       shape.Shape
	group       *Group // non-nil for composite objects; mutually exclusive with shape
	material    material.Material
	transform   vecmath.Transform
	castsShadow bool
	worldBBox   bounds.BoundingBox
}

func New(s shape.Shape) *Object {
	o := &Object{shape: s, material: material.Default(), transform: vecmath.NewTransform(), castsShadow: true}
	o.recomputeWorldBBox()
	return o
}

func NewGroup() *Object {
	g := &Group{}
	o := &Object{group: g, material: material.Default(), transform: vecmath.NewTransform(), castsShadow: true}
	o.recomputeWorldBBox()
	return o
}

func (o *Object) Material() material.Material     { return o.material }
func (o *Object) SetMaterial(m material.Material) { o.material = m }
func (o *Object) CastsShadow() bool               { return o.castsShadow }
func (o *Object) SetCastsShadow(v bool)           { o.castsShadow = v }
func (o *Object) Transform() vecmath.Transform    { return o.transform }
func (o *Object) WorldBounds() bounds.BoundingBox { return o.worldBBox }
func (o *Object) IsGroup() bool { return o.group != nil }
func (o *Object) Group() *Group { return o.group }

// AddChild appends child to a composite object's Group and recomputes the
// cached world bounding box. It panics if called on a non-composite.
func (o *Object) AddChild(child *Object) {
	o.group.Add(child)
	o.recomputeWorldBBox()
}

// SetTransform replaces the object's transform. Per spec.md §9, a
// Group/Mesh has no standalone transform of its own: applying one descends
// into every child, recomposing each child's transform and recomputing its
// cached world box, rather than being stored on the container itself.
func (o *Object) SetTransform(t vecmath.Transform) {
	if o.group != nil {
		o.group.applyTransform(t)
		o.recomputeWorldBBox()
		return
	}
	o.transform = t
	o.recomputeWorldBBox()
}

func (o *Object) recomputeWorldBBox() {
	if o.group != nil {
		o.worldBBox = o.group.boundsUnion()
		return
	}
	o.worldBBox = o.shape.Bounds().TransformBy(o.transform.Matrix())
}

// Intersect dispatches to the leaf shape's local frame, or recurses
// into a Group (whose children apply their own transforms internally).
func (o *Object) Intersect(r ray.Ray) intersection.Intersections {
	if o.group != nil {
		return o.group.Intersect(r)
	}

	localRay := r.Transform(o.transform.Inverse())
	hits := o.shape.LocalIntersect(localRay)
	if len(hits) == 0 {
		return nil
	}
	xs := make(intersection.Intersections, len(hits))
	for i, h := range hits {
		xs[i] = intersection.Intersection{T: h.T, Object: o, U: h.U, V: h.V}
	}
	return xs
}

func (o *Object) Bounds() bounds.BoundingBox { return o.worldBBox }

// NormalAt implements spec.md §4.4: world point to object space by M^-1,
// ask the shape for the local normal (passing (u,v) for SmoothTriangle),
// transform it to world space by (M^-1)^T, normalize.
func (o *Object) NormalAt(worldPoint vecmath.Tuple, u, v float64) vecmath.Tuple {
	localPoint := o.transform.Inverse().MulTuple(worldPoint)
	hit := &shape.Hit{U: u, V: v}
	localNormal := o.shape.LocalNormalAt(localPoint, hit)
	worldNormal := o.transform.InverseTranspose().MulTuple(localNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}

// ColorAt resolves the two-stage pattern mapping of spec.md §4.6: world
// point to object space (this object's inverse transform), then to pattern
// space (the pattern's own inverse transform).
func (o *Object) ColorAt(worldPoint vecmath.Tuple) color.Color {
	if o.material.Pattern == nil {
		return o.material.Color
	}
	return o.material.Pattern.ColorAtObject(o.transform.Inverse(), worldPoint)
}
