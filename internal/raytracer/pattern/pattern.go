// Package pattern implements the object-space procedural color functions
// of spec.md §3/§4.6: Plain, Stripe, Gradient, Ring, Checker, Test, plus a
// supplemental Perlin variant grounded on the teacher's
// internal/renderer/improved_perlin.go and backed for real by
// github.com/aquilax/go-perlin rather than a hand-rolled noise table.
package pattern

import (
	"math"

	"github.com/nicolasmd87/gophertrace/internal/raytracer/color"
	"github.com/nicolasmd87/gophertrace/internal/vecmath"
)

// Pattern returns a color at a point already expressed in pattern space.
type Pattern interface {
	ColorAt(p vecmath.Tuple) color.Color
}

// PatternObject couples a Pattern with its own Transform, per spec.md §3:
// a pattern can be independently scaled/rotated from the object it paints.
type PatternObject struct {
	Pattern   Pattern
	Transform vecmath.Transform
}

func NewPatternObject(p Pattern) *PatternObject {
	return &PatternObject{Pattern: p, Transform: vecmath.NewTransform()}
}

// ColorAtObject implements spec.md §4.6's two-stage mapping: object space
// first (the caller supplies objectInverse, the owning Object's inverse
// transform), then the pattern's own inverse transform.
func (po *PatternObject) ColorAtObject(objectInverse vecmath.Matrix, worldPoint vecmath.Tuple) color.Color {
	objectPoint := objectInverse.MulTuple(worldPoint)
	patternPoint := po.Transform.Inverse().MulTuple(objectPoint)
	return po.Pattern.ColorAt(patternPoint)
}

type plain struct{ c color.Color }

func Plain(c color.Color) Pattern { return plain{c} }
func (p plain) ColorAt(vecmath.Tuple) color.Color { return p.c }

type stripe struct{ a, b color.Color }

// Stripe alternates by floor(x) parity.
func Stripe(a, b color.Color) Pattern { return stripe{a, b} }
func (s stripe) ColorAt(p vecmath.Tuple) color.Color {
	if int(math.Floor(p.X))%2 == 0 {
		return s.a
	}
	return s.b
}

type gradient struct{ a, b color.Color }

// Gradient linearly interpolates between a and b by the fractional part
// of x.
func Gradient(a, b color.Color) Pattern { return gradient{a, b} }
func (g gradient) ColorAt(p vecmath.Tuple) color.Color {
	distance := g.b.Sub(g.a)
	fraction := p.X - math.Floor(p.X)
	return g.a.Add(distance.Scale(fraction))
}

type ring struct{ a, b color.Color }

// Ring alternates by floor(sqrt(x^2+z^2)) parity.
func Ring(a, b color.Color) Pattern { return ring{a, b} }
func (r ring) ColorAt(p vecmath.Tuple) color.Color {
	d := math.Sqrt(p.X*p.X + p.Z*p.Z)
	if int(math.Floor(d))%2 == 0 {
		return r.a
	}
	return r.b
}

type checker struct{ a, b color.Color }

// Checker alternates by (floor(x)+floor(y)+floor(z)) parity.
func Checker(a, b color.Color) Pattern { return checker{a, b} }
func (c checker) ColorAt(p vecmath.Tuple) color.Color {
	sum := math.Floor(p.X) + math.Floor(p.Y) + math.Floor(p.Z)
	if int(sum)%2 == 0 {
		return c.a
	}
	return c.b
}

type testPattern struct{}

// Test returns (x,y,z) as a color — verification only, never used in a
// rendered scene, grounded on spec.md's own description of this pattern.
func Test() Pattern { return testPattern{} }
func (testPattern) ColorAt(p vecmath.Tuple) color.Color { return color.New(p.X, p.Y, p.Z) }
